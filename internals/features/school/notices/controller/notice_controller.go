// file: internals/features/school/notices/controller/notice_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/notices/dto"
	"sekolahku_backend/internals/features/school/notices/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/scope"
	"sekolahku_backend/internals/storage"
	"sekolahku_backend/internals/tenant"
)

type noticeStore = scope.Store[model.NoticeModel, *model.NoticeModel]

type NoticeController struct {
	DB       *gorm.DB
	Resolver *tenant.Resolver
	Blob     storage.BlobService
}

func NewNoticeController(db *gorm.DB, resolver *tenant.Resolver, blob storage.BlobService) *NoticeController {
	return &NoticeController{DB: db, Resolver: resolver, Blob: blob}
}

func (ctl *NoticeController) store(c *fiber.Ctx) (*noticeStore, error) {
	sid, err := ctl.Resolver.SchoolID(c.UserContext())
	if err != nil {
		return nil, err
	}
	return scope.New[model.NoticeModel](ctl.DB, sid), nil
}

// 🟢 POST /api/a/notices
func (ctl *NoticeController) CreateNotice(c *fiber.Ctx) error {
	var req dto.NoticeRequest
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

	newNotice := req.ToModel()
	slug, err := helper.EnsureUniqueSlug(ctl.DB,
		helper.GenerateSlug(req.NoticeTitle), "notices", "notice_slug",
		"notice_school_id", st.SchoolID())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	newNotice.NoticeSlug = slug

	if err := st.Create(c.UserContext(), newNotice); err != nil {
		log.Printf("[ERROR] Gagal menyimpan pengumuman: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengumuman")
	}

	return helper.JsonCreated(c, "Pengumuman berhasil ditambahkan", dto.ToNoticeResponse(newNotice))
}

// 🟢 GET /api/a/notices + pagination
func (ctl *NoticeController) ListNotices(c *fiber.Ctx) error {
	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	p := helper.ResolvePaging(c, 10, 100)
	total, err := st.Count(c.UserContext(), nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengumuman")
	}
	rows, err := st.List(c.UserContext(), nil, "notice_created_at DESC", p.Limit, p.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	return helper.JsonList(c, "", dto.ToNoticeResponseList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟡 PATCH /api/a/notices/:id
func (ctl *NoticeController) UpdateNotice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Notice ID tidak valid")
	}

	var req dto.NoticeUpdateRequest
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
	if req.NoticeTitle != nil {
		updates["notice_title"] = *req.NoticeTitle

		// judul yang base slug-nya sama dengan slug lama tidak perlu slug
		// baru — regenerasi buta membuat row menabrak slug-nya sendiri
		existing, err := st.GetByID(c.UserContext(), id)
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		if base := helper.GenerateSlug(*req.NoticeTitle); base != existing.NoticeSlug {
			slug, err := helper.EnsureUniqueSlug(ctl.DB,
				base, "notices", "notice_slug",
				"notice_school_id", st.SchoolID())
			if err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
			}
			updates["notice_slug"] = slug
		}
	}
	if req.NoticeBody != nil {
		updates["notice_body"] = *req.NoticeBody
	}
	if req.NoticeIsPublished != nil {
		updates["notice_is_published"] = *req.NoticeIsPublished
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	notice, err := st.Update(c.UserContext(), id, updates)
	if err != nil {
		if errors.Is(err, scope.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengumuman")
	}

	return helper.JsonUpdated(c, "Pengumuman berhasil diperbarui", dto.ToNoticeResponse(notice))
}

// 🟡 PATCH /api/a/notices/:id/attachment — upload lampiran (pdf/scan)
func (ctl *NoticeController) UploadNoticeAttachment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Notice ID tidak valid")
	}

	fh, err := c.FormFile("attachment")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File lampiran tidak ditemukan")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	existing, err := st.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}

	url, err := ctl.Blob.UploadDocument(c.UserContext(), ctl.Resolver.Slug(), constants.FolderNotices, fh)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload lampiran")
	}

	notice, err := st.Update(c.UserContext(), id, map[string]any{"notice_attachment_url": url})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan URL lampiran")
	}

	if existing.NoticeAttachmentURL != nil && *existing.NoticeAttachmentURL != url {
		if derr := ctl.Blob.DeleteByPublicURL(c.UserContext(), *existing.NoticeAttachmentURL); derr != nil {
			log.Printf("[WARNING] gagal hapus lampiran lama: %v", derr)
		}
	}

	return helper.JsonUpdated(c, "Lampiran berhasil diupload", dto.ToNoticeResponse(notice))
}

// 🔴 DELETE /api/a/notices/:id
func (ctl *NoticeController) DeleteNotice(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Notice ID tidak valid")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	deleted, err := st.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, scope.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}

	if deleted.NoticeAttachmentURL != nil {
		if derr := ctl.Blob.DeleteByPublicURL(c.UserContext(), *deleted.NoticeAttachmentURL); derr != nil {
			log.Printf("[WARNING] gagal hapus lampiran: %v", derr)
		}
	}

	return helper.JsonDeleted(c, "Pengumuman berhasil dihapus", nil)
}

/* ==========================
   Public (tanpa cookie)
========================== */

// 🟢 GET /api/u/notices — hanya yang sudah published
func (ctl *NoticeController) PublicListNotices(c *fiber.Ctx) error {
	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	p := helper.ResolvePaging(c, 10, 100)
	filter := scope.Filter{"notice_is_published": true}
	total, err := st.Count(c.UserContext(), filter)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengumuman")
	}
	rows, err := st.List(c.UserContext(), filter, "notice_created_at DESC", p.Limit, p.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	return helper.JsonList(c, "", dto.ToNoticeResponseList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET /api/u/notices/:slug
func (ctl *NoticeController) PublicGetNoticeBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug tidak boleh kosong")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	rows, err := st.List(c.UserContext(),
		scope.Filter{"notice_slug": slug, "notice_is_published": true}, "", 1, 0)
	if err != nil || len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}
	return helper.JsonOK(c, "Pengumuman berhasil ditemukan", dto.ToNoticeResponse(&rows[0]))
}
