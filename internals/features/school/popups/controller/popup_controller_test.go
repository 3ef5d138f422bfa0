package controller

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/popups/model"
	"sekolahku_backend/internals/storage"
	"sekolahku_backend/internals/tenant"
)

func newTestApp(t *testing.T, now time.Time) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.PopupModel{}))

	ctl := NewPopupController(db, tenant.NewResolver(db, "sd-harapan"), storage.DisabledBlobService{})
	ctl.Now = func() time.Time { return now }

	app := fiber.New()
	app.Get("/api/u/popups/active", ctl.PublicListActivePopups)
	return app, db
}

func seedPopup(t *testing.T, db *gorm.DB, title string, active bool, starts, ends *time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.PopupModel{
		PopupTitle:    title,
		PopupIsActive: active,
		PopupStartsAt: starts,
		PopupEndsAt:   ends,
	}).Error)
}

func activeTitles(t *testing.T, app *fiber.App) []string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/u/popups/active", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			PopupTitle string `json:"popup_title"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)

	titles := make([]string, 0, len(body.Data))
	for _, d := range body.Data {
		titles = append(titles, d.PopupTitle)
	}
	return titles
}

func TestPublicActivePopupsDateWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	app, db := newTestApp(t, now)

	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	seedPopup(t, db, "sedang tayang", true, &past, &future)
	seedPopup(t, db, "tanpa window", true, nil, nil)
	seedPopup(t, db, "belum mulai", true, &future, nil)
	seedPopup(t, db, "sudah lewat", true, nil, &past)
	seedPopup(t, db, "nonaktif", false, &past, &future)

	titles := activeTitles(t, app)
	assert.ElementsMatch(t, []string{"sedang tayang", "tanpa window"}, titles)
}

func TestPublicActivePopupsEmpty(t *testing.T) {
	app, _ := newTestApp(t, time.Now())
	assert.Empty(t, activeTitles(t, app))
}
