// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/users/auth/controller"
	"sekolahku_backend/internals/middlewares"
)

// AuthRoutes: login/logout di luar group ber-auth, sisanya di belakang middleware.
func AuthRoutes(app *fiber.App, ctl *controller.AuthController, authMW fiber.Handler) {
	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/logout", ctl.Logout) // idempotent, tidak butuh token valid

	protected := auth.Group("", authMW)
	protected.Get("/me", ctl.Me)
	protected.Post("/change-password", ctl.ChangePassword)
}
