package route

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/school/events/controller"
)

// EventAdminRoutes: CRUD event di dashboard (group /api/a, sudah dibungkus auth).
func EventAdminRoutes(api fiber.Router, ctl *controller.EventController) {
	event := api.Group("/events")
	event.Post("/", ctl.CreateEvent)
	event.Get("/", ctl.ListEvents)
	event.Get("/:id", ctl.GetEventByID)
	event.Patch("/:id", ctl.UpdateEvent)
	event.Patch("/:id/image", ctl.UploadEventImage)
	event.Delete("/:id", ctl.DeleteEvent)
}

// EventPublicRoutes: halaman publik (group /api/u, tanpa cookie).
func EventPublicRoutes(api fiber.Router, ctl *controller.EventController) {
	event := api.Group("/events")
	event.Get("/", ctl.PublicListEvents)
	event.Get("/:slug", ctl.PublicGetEventBySlug)
}
