package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	schoolModel "sekolahku_backend/internals/features/schools/model"
	"sekolahku_backend/internals/features/users/auth/service"
	helper "sekolahku_backend/internals/helpers"
	authMiddleware "sekolahku_backend/internals/middlewares/auth"
	"sekolahku_backend/internals/tenant"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&schoolModel.SchoolModel{}, &schoolModel.SchoolAdminModel{}))

	school := &schoolModel.SchoolModel{SchoolSlug: "sd-harapan", SchoolName: "SD Harapan", SchoolIsActive: true}
	require.NoError(t, db.Create(school).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&schoolModel.SchoolAdminModel{
		SchoolAdminSchoolID:     school.SchoolID,
		SchoolAdminUsername:     "admin",
		SchoolAdminPasswordHash: string(hash),
	}).Error)

	resolver := tenant.NewResolver(db, "sd-harapan")
	svc := service.NewAuthService(db, service.NewJWTSigner("test-secret"), resolver)
	ctl := NewAuthController(svc, resolver)

	app := fiber.New()
	app.Post("/api/auth/login", ctl.Login)
	app.Post("/api/auth/logout", ctl.Logout)
	protected := app.Group("/api/a", authMiddleware.AuthMiddleware(svc))
	protected.Get("/auth/me", ctl.Me)
	protected.Post("/auth/change-password", ctl.ChangePassword)
	return app
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == helper.AuthCookieName {
			return ck
		}
	}
	return nil
}

func TestLoginSetsCookieContract(t *testing.T) {
	app := newAuthApp(t)

	resp, err := app.Test(postJSON("/api/auth/login", `{"username":"admin","password":"rahasia123"}`))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	ck := authCookie(t, resp)
	require.NotNil(t, ck, "cookie auth-token harus di-set")
	assert.NotEmpty(t, ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.Equal(t, "/", ck.Path)
	assert.False(t, ck.Secure, "di test APP_ENV bukan production")
	assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
	// umur ~24 jam
	assert.InDelta(t, 24*60*60, ck.MaxAge, 60)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, ck.Value, body.Data.Token)
}

func TestLoginUniformRejection(t *testing.T) {
	app := newAuthApp(t)

	read := func(body string) (int, string) {
		resp, err := app.Test(postJSON("/api/auth/login", body))
		require.NoError(t, err)
		var out struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return resp.StatusCode, out.Message
	}

	// password salah vs username tidak ada: respons identik
	codeWrong, msgWrong := read(`{"username":"admin","password":"salah"}`)
	codeGhost, msgGhost := read(`{"username":"hantu","password":"rahasia123"}`)
	assert.Equal(t, fiber.StatusUnauthorized, codeWrong)
	assert.Equal(t, codeWrong, codeGhost)
	assert.Equal(t, msgWrong, msgGhost)
}

func TestProtectedRoutesNeedValidToken(t *testing.T) {
	app := newAuthApp(t)

	// tanpa token
	resp, err := app.Test(httptest.NewRequest("GET", "/api/a/auth/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// token ngawur
	req := httptest.NewRequest("GET", "/api/a/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: helper.AuthCookieName, Value: "bukan.token.valid"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// login → cookie → me
	resp, err = app.Test(postJSON("/api/auth/login", `{"username":"admin","password":"rahasia123"}`))
	require.NoError(t, err)
	ck := authCookie(t, resp)
	require.NotNil(t, ck)

	req = httptest.NewRequest("GET", "/api/a/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: helper.AuthCookieName, Value: ck.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var me struct {
		Data struct {
			Role string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, "admin", me.Data.Role)

	// bearer juga diterima
	req = httptest.NewRequest("GET", "/api/a/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+ck.Value)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogoutIdempotent(t *testing.T) {
	app := newAuthApp(t)

	// logout tanpa pernah login: tetap 200
	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/auth/logout", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ck := authCookie(t, resp)
		require.NotNil(t, ck)
		assert.Empty(t, ck.Value)
		assert.True(t, ck.MaxAge <= 0)
	}
}

func TestChangePasswordEndpoint(t *testing.T) {
	app := newAuthApp(t)

	login := func(password string) *http.Cookie {
		resp, err := app.Test(postJSON("/api/auth/login", `{"username":"admin","password":"`+password+`"}`))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		ck := authCookie(t, resp)
		require.NotNil(t, ck)
		return ck
	}
	ck := login("rahasia123")

	change := func(body string) *http.Response {
		req := postJSON("/api/a/auth/change-password", body)
		req.AddCookie(&http.Cookie{Name: helper.AuthCookieName, Value: ck.Value})
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	// password lama salah → 400
	resp := change(`{"username":"admin","current_password":"salah","new_password":"passwordbaru"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// terlalu pendek → 422 dengan field error
	resp = change(`{"username":"admin","current_password":"rahasia123","new_password":"pendek"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// sukses
	resp = change(`{"username":"admin","current_password":"rahasia123","new_password":"passwordbaru"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// login dengan password baru jalan
	login("passwordbaru")
}
