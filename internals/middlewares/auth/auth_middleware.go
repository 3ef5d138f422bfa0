// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	authService "sekolahku_backend/internals/features/users/auth/service"
	helper "sekolahku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi cookie auth-token (atau bearer) lewat
// AuthService — termasuk cek school_id token vs tenant proses ini.
// SEMUA kegagalan dijawab 401 yang sama; penyebabnya tidak dibocorkan.
func AuthMiddleware(svc *authService.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.GetRawAuthToken(c)
		claims, err := svc.VerifyToken(c.UserContext(), raw)
		if err != nil {
			log.Printf("[WARNING] token ditolak: %s %s", c.Method(), c.OriginalURL())
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		c.Locals("role", claims.Role)
		c.Locals("school_id", claims.SchoolID.String())
		return c.Next()
	}
}
