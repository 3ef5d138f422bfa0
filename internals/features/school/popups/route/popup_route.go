// file: internals/features/school/popups/route/popup_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/school/popups/controller"
)

// PopupAdminRoutes: kelola popup (group /api/a, sudah dibungkus auth).
func PopupAdminRoutes(api fiber.Router, ctl *controller.PopupController) {
	popup := api.Group("/popups")
	popup.Post("/", ctl.CreatePopup)
	popup.Get("/", ctl.ListPopups)
	popup.Patch("/:id", ctl.UpdatePopup)
	popup.Patch("/:id/image", ctl.UploadPopupImage)
	popup.Delete("/:id", ctl.DeletePopup)
}

// PopupPublicRoutes: popup yang sedang tayang (group /api/u, tanpa cookie).
func PopupPublicRoutes(api fiber.Router, ctl *controller.PopupController) {
	popup := api.Group("/popups")
	popup.Get("/active", ctl.PublicListActivePopups)
}
