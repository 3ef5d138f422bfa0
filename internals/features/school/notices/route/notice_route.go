// file: internals/features/school/notices/route/notice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/school/notices/controller"
)

// NoticeAdminRoutes: CRUD pengumuman di dashboard (group /api/a, sudah dibungkus auth).
func NoticeAdminRoutes(api fiber.Router, ctl *controller.NoticeController) {
	notice := api.Group("/notices")
	notice.Post("/", ctl.CreateNotice)
	notice.Get("/", ctl.ListNotices)
	notice.Patch("/:id", ctl.UpdateNotice)
	notice.Patch("/:id/attachment", ctl.UploadNoticeAttachment)
	notice.Delete("/:id", ctl.DeleteNotice)
}

// NoticePublicRoutes: read-only, hanya pengumuman yang sudah published.
func NoticePublicRoutes(api fiber.Router, ctl *controller.NoticeController) {
	notice := api.Group("/notices")
	notice.Get("/", ctl.PublicListNotices)
	notice.Get("/:slug", ctl.PublicGetNoticeBySlug)
}
