// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"sekolahku_backend/internals/features/users/auth/service"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/tenant"
)

type AuthController struct {
	Service  *service.AuthService
	Resolver *tenant.Resolver
}

func NewAuthController(svc *service.AuthService, resolver *tenant.Resolver) *AuthController {
	return &AuthController{Service: svc, Resolver: resolver}
}

// 🟢 POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	schoolID, err := ctl.Resolver.SchoolID(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] resolve tenant: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Deployment belum terkonfigurasi")
	}

	if !ctl.Service.VerifyCredential(c.UserContext(), schoolID, req.Username, req.Password) {
		// seragam — jangan bedakan "username tidak ada" vs "password salah"
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, claims, err := ctl.Service.IssueToken(schoolID)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	helper.SetAuthCookie(c, token, claims.ExpiresAt)
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"token":      token,
		"expires_at": claims.ExpiresAt,
	})
}

// 🟢 POST /api/auth/logout — idempotent, aman dipanggil berkali-kali
// (session guard di client memanggil ini saat idle-timeout).
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	helper.ClearAuthCookie(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// 🟢 GET /api/a/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", fiber.Map{
		"role":      c.Locals("role"),
		"school_id": c.Locals("school_id"),
	})
}

// 🟡 POST /api/a/auth/change-password
func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		Username        string `json:"username" validate:"required"`
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	schoolID, err := ctl.Resolver.SchoolID(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Deployment belum terkonfigurasi")
	}

	err = ctl.Service.ChangePassword(c.UserContext(), schoolID, req.Username, req.CurrentPassword, req.NewPassword)
	switch {
	case err == nil:
		return helper.JsonUpdated(c, "Password berhasil diganti", nil)
	case errors.Is(err, service.ErrWrongPassword):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPasswordTooShort), errors.Is(err, service.ErrPasswordUnchanged):
		return helper.JsonValidationError(c, map[string][]string{
			"new_password": {err.Error()},
		})
	default:
		log.Printf("[ERROR] change password: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti password")
	}
}
