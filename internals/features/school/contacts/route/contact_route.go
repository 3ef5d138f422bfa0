// file: internals/features/school/contacts/route/contact_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/school/contacts/controller"
)

// ContactAdminRoutes: kotak masuk pesan (group /api/a, sudah dibungkus auth).
func ContactAdminRoutes(api fiber.Router, ctl *controller.ContactController) {
	contact := api.Group("/contacts")
	contact.Get("/", ctl.ListContactMessages)
	contact.Get("/:id", ctl.GetContactMessageByID)
	contact.Patch("/:id/unread", ctl.MarkContactMessageUnread)
	contact.Delete("/:id", ctl.DeleteContactMessage)
}

// ContactPublicRoutes: form hubungi-kami (group /api/u, tanpa cookie).
func ContactPublicRoutes(api fiber.Router, ctl *controller.ContactController) {
	contact := api.Group("/contacts")
	contact.Post("/", ctl.PublicSubmitContactMessage)
}
