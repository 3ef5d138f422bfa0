// file: internals/features/school/events/controller/event_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/events/dto"
	"sekolahku_backend/internals/features/school/events/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/scope"
	"sekolahku_backend/internals/storage"
	"sekolahku_backend/internals/tenant"
)

type eventStore = scope.Store[model.EventModel, *model.EventModel]

type EventController struct {
	DB       *gorm.DB
	Resolver *tenant.Resolver
	Blob     storage.BlobService
}

func NewEventController(db *gorm.DB, resolver *tenant.Resolver, blob storage.BlobService) *EventController {
	return &EventController{DB: db, Resolver: resolver, Blob: blob}
}

// store dibangun per request dengan id tenant proses ini — tidak pernah
// di-cache lintas request.
func (ctl *EventController) store(c *fiber.Ctx) (*eventStore, error) {
	sid, err := ctl.Resolver.SchoolID(c.UserContext())
	if err != nil {
		return nil, err
	}
	return scope.New[model.EventModel](ctl.DB, sid), nil
}

// 🟢 POST /api/a/events
func (ctl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	newEvent := req.ToModel()
	slug, err := helper.EnsureUniqueSlug(ctl.DB,
		helper.GenerateSlug(req.EventTitle), "events", "event_slug",
		"event_school_id", st.SchoolID())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	newEvent.EventSlug = slug

	if err := st.Create(c.UserContext(), newEvent); err != nil {
		log.Printf("[ERROR] Gagal menyimpan event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan event")
	}

	return helper.JsonCreated(c, "Event berhasil ditambahkan", dto.ToEventResponse(newEvent))
}

// 🟢 GET /api/a/events + pagination
func (ctl *EventController) ListEvents(c *fiber.Ctx) error {
	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	p := helper.ResolvePaging(c, 10, 100)

	total, err := st.Count(c.UserContext(), nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung event")
	}
	rows, err := st.List(c.UserContext(), nil, "event_created_at DESC", p.Limit, p.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	return helper.JsonList(c, "", dto.ToEventResponseList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET /api/a/events/:id
func (ctl *EventController) GetEventByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	ev, err := st.GetByID(c.UserContext(), id)
	if err != nil {
		// milik sekolah lain = tidak ditemukan, tanpa beda bentuk
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.JsonOK(c, "Event berhasil ditemukan", dto.ToEventResponse(ev))
}

// 🟡 PATCH /api/a/events/:id
func (ctl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	updates := map[string]any{}
	if req.EventTitle != nil {
		updates["event_title"] = *req.EventTitle

		// slug hanya dihitung ulang kalau judul baru menghasilkan base yang
		// beda — kalau tidak, row update menabrak slug-nya sendiri dan dapat
		// suffix baru padahal tidak ada yang berubah
		existing, err := st.GetByID(c.UserContext(), id)
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		if base := helper.GenerateSlug(*req.EventTitle); base != existing.EventSlug {
			slug, err := helper.EnsureUniqueSlug(ctl.DB,
				base, "events", "event_slug",
				"event_school_id", st.SchoolID())
			if err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
			}
			updates["event_slug"] = slug
		}
	}
	if req.EventDescription != nil {
		updates["event_description"] = *req.EventDescription
	}
	if req.EventLocation != nil {
		updates["event_location"] = *req.EventLocation
	}
	if req.EventStartsAt != nil {
		updates["event_starts_at"] = *req.EventStartsAt
	}
	if req.EventEndsAt != nil {
		updates["event_ends_at"] = *req.EventEndsAt
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	ev, err := st.Update(c.UserContext(), id, updates)
	if err != nil {
		if errors.Is(err, scope.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui event")
	}

	return helper.JsonUpdated(c, "Event berhasil diperbarui", dto.ToEventResponse(ev))
}

// 🟡 PATCH /api/a/events/:id/image — upload/ganti gambar event (multipart)
func (ctl *EventController) UploadEventImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar tidak ditemukan")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	// kepemilikan dicek dulu — jangan upload blob untuk row milik sekolah lain
	existing, err := st.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	url, err := ctl.Blob.UploadImage(c.UserContext(), ctl.Resolver.Slug(), constants.FolderEvents, fh)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload gambar")
	}

	ev, err := st.Update(c.UserContext(), id, map[string]any{"event_image_url": url})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan URL gambar")
	}

	// cleanup gambar lama: best-effort, gagal hanya dicatat
	if existing.EventImageURL != nil && *existing.EventImageURL != url {
		if derr := ctl.Blob.DeleteByPublicURL(c.UserContext(), *existing.EventImageURL); derr != nil {
			log.Printf("[WARNING] gagal hapus gambar lama: %v", derr)
		}
	}

	return helper.JsonUpdated(c, "Gambar event berhasil diupload", dto.ToEventResponse(ev))
}

// 🔴 DELETE /api/a/events/:id
func (ctl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	deleted, err := st.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, scope.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}

	if deleted.EventImageURL != nil {
		if derr := ctl.Blob.DeleteByPublicURL(c.UserContext(), *deleted.EventImageURL); derr != nil {
			log.Printf("[WARNING] gagal hapus gambar event: %v", derr)
		}
	}

	return helper.JsonDeleted(c, "Event berhasil dihapus", nil)
}

/* ==========================
   Public (tanpa cookie)
========================== */

// 🟢 GET /api/u/events + pagination
func (ctl *EventController) PublicListEvents(c *fiber.Ctx) error {
	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	p := helper.ResolvePaging(c, 10, 100)
	total, err := st.Count(c.UserContext(), nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung event")
	}
	rows, err := st.List(c.UserContext(), nil, "event_starts_at ASC", p.Limit, p.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}

	return helper.JsonList(c, "", dto.ToEventResponseList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET /api/u/events/:slug
func (ctl *EventController) PublicGetEventBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug tidak boleh kosong")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	rows, err := st.List(c.UserContext(), scope.Filter{"event_slug": slug}, "", 1, 0)
	if err != nil || len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.JsonOK(c, "Event berhasil ditemukan", dto.ToEventResponse(&rows[0]))
}
