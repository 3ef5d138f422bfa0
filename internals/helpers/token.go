// file: internals/helpers/token.go
package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/configs"
)

// Nama cookie auth — bagian dari kontrak dengan layer rendering.
const AuthCookieName = "auth-token"

// GetRawAuthToken mengembalikan token dari:
// 1) cookie "auth-token"
// 2) Authorization header "Bearer <token>"
func GetRawAuthToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(AuthCookieName)); v != "" {
		return v
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// SetAuthCookie memasang cookie auth sesuai kontrak:
// httpOnly, Secure saat production, SameSite=Strict, umur 24 jam, path root.
func SetAuthCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// ClearAuthCookie menghapus cookie auth (logout). Idempotent.
func ClearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
