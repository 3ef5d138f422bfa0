// file: internals/features/school/gallery/route/gallery_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/school/gallery/controller"
)

// GalleryAdminRoutes: kelola galeri di dashboard (group /api/a, sudah dibungkus auth).
func GalleryAdminRoutes(api fiber.Router, ctl *controller.GalleryController) {
	gallery := api.Group("/gallery")
	gallery.Post("/", ctl.UploadGalleryImage)
	gallery.Get("/", ctl.ListGalleryImages)
	gallery.Patch("/:id", ctl.UpdateGalleryImage)
	gallery.Delete("/:id", ctl.DeleteGalleryImage)
}

// GalleryPublicRoutes: halaman galeri publik (group /api/u, tanpa cookie).
func GalleryPublicRoutes(api fiber.Router, ctl *controller.GalleryController) {
	gallery := api.Group("/gallery")
	gallery.Get("/", ctl.PublicListGalleryImages)
}
