// file: internals/features/school/applications/route/application_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/school/applications/controller"
)

// ApplicationAdminRoutes: review pendaftaran di dashboard (group /api/a).
func ApplicationAdminRoutes(api fiber.Router, ctl *controller.ApplicationController) {
	app := api.Group("/applications")
	app.Get("/", ctl.ListApplications)
	app.Get("/:id", ctl.GetApplicationByID)
	app.Patch("/:id/status", ctl.UpdateApplicationStatus)
	app.Delete("/:id", ctl.DeleteApplication)
}

// ApplicationPublicRoutes: formulir pendaftaran publik (group /api/u).
func ApplicationPublicRoutes(api fiber.Router, ctl *controller.ApplicationController) {
	app := api.Group("/applications")
	app.Post("/", ctl.PublicSubmitApplication)
	app.Post("/:id/document", ctl.PublicUploadApplicationDocument)
}
