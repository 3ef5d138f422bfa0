// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationController "sekolahku_backend/internals/features/school/applications/controller"
	applicationRoute "sekolahku_backend/internals/features/school/applications/route"
	contactController "sekolahku_backend/internals/features/school/contacts/controller"
	contactRoute "sekolahku_backend/internals/features/school/contacts/route"
	eventController "sekolahku_backend/internals/features/school/events/controller"
	eventRoute "sekolahku_backend/internals/features/school/events/route"
	galleryController "sekolahku_backend/internals/features/school/gallery/controller"
	galleryRoute "sekolahku_backend/internals/features/school/gallery/route"
	noticeController "sekolahku_backend/internals/features/school/notices/controller"
	noticeRoute "sekolahku_backend/internals/features/school/notices/route"
	popupController "sekolahku_backend/internals/features/school/popups/controller"
	popupRoute "sekolahku_backend/internals/features/school/popups/route"
	authController "sekolahku_backend/internals/features/users/auth/controller"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	authService "sekolahku_backend/internals/features/users/auth/service"
	"sekolahku_backend/internals/middlewares"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	"sekolahku_backend/internals/storage"
	"sekolahku_backend/internals/tenant"
)

// SetupRoutes memasang seluruh route:
//   - /api/auth — login/logout/me/change-password
//   - /api/a    — dashboard admin (dibungkus AuthMiddleware)
//   - /api/u    — halaman publik (tanpa cookie)
func SetupRoutes(app *fiber.App, db *gorm.DB, resolver *tenant.Resolver, blob storage.BlobService, svc *authService.AuthService) {
	authMW := authMiddleware.AuthMiddleware(svc)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, authController.NewAuthController(svc, resolver), authMW)

	// ===================== GROUPS =====================
	admin := app.Group("/api/a", authMW)
	public := app.Group("/api/u")

	events := eventController.NewEventController(db, resolver, blob)
	notices := noticeController.NewNoticeController(db, resolver, blob)
	gallery := galleryController.NewGalleryController(db, resolver, blob)
	popups := popupController.NewPopupController(db, resolver, blob)
	applications := applicationController.NewApplicationController(db, resolver, blob)
	contacts := contactController.NewContactController(db, resolver)

	// ===================== ADMIN (/api/a) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	eventRoute.EventAdminRoutes(admin, events)
	noticeRoute.NoticeAdminRoutes(admin, notices)
	galleryRoute.GalleryAdminRoutes(admin, gallery)
	popupRoute.PopupAdminRoutes(admin, popups)
	applicationRoute.ApplicationAdminRoutes(admin, applications)
	contactRoute.ContactAdminRoutes(admin, contacts)

	// ===================== PUBLIC (/api/u) =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	eventRoute.EventPublicRoutes(public, events)
	noticeRoute.NoticePublicRoutes(public, notices)
	galleryRoute.GalleryPublicRoutes(public, gallery)
	popupRoute.PopupPublicRoutes(public, popups)

	// form publik dibatasi rate per-IP
	publicForms := app.Group("/api/u", middlewares.PublicFormRateLimiter())
	applicationRoute.ApplicationPublicRoutes(publicForms, applications)
	contactRoute.ContactPublicRoutes(publicForms, contacts)
}
