// file: internals/features/school/contacts/controller/contact_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/contacts/dto"
	"sekolahku_backend/internals/features/school/contacts/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/scope"
	"sekolahku_backend/internals/tenant"
)

type contactStore = scope.Store[model.ContactMessageModel, *model.ContactMessageModel]

type ContactController struct {
	DB       *gorm.DB
	Resolver *tenant.Resolver
}

func NewContactController(db *gorm.DB, resolver *tenant.Resolver) *ContactController {
	return &ContactController{DB: db, Resolver: resolver}
}

func (ctl *ContactController) store(c *fiber.Ctx) (*contactStore, error) {
	sid, err := ctl.Resolver.SchoolID(c.UserContext())
	if err != nil {
		return nil, err
	}
	return scope.New[model.ContactMessageModel](ctl.DB, sid), nil
}

/* ==========================
   Public (tanpa cookie)
========================== */

// 🟢 POST /api/u/contacts — form "hubungi kami".
func (ctl *ContactController) PublicSubmitContactMessage(c *fiber.Ctx) error {
	var req dto.ContactMessageRequest
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

	msg := req.ToModel()
	if err := st.Create(c.UserContext(), msg); err != nil {
		log.Printf("[ERROR] Gagal menyimpan pesan kontak: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim pesan")
	}

	return helper.JsonCreated(c, "Pesan berhasil dikirim", dto.ToContactMessageResponse(msg))
}

/* ==========================
   Admin (dashboard)
========================== */

// 🟢 GET /api/a/contacts + pagination, opsional ?unread=true
func (ctl *ContactController) ListContactMessages(c *fiber.Ctx) error {
	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	var filter scope.Filter
	if c.Query("unread") == "true" {
		filter = scope.Filter{"contact_message_is_read": false}
	}

	p := helper.ResolvePaging(c, 10, 100)
	total, err := st.Count(c.UserContext(), filter)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pesan")
	}
	rows, err := st.List(c.UserContext(), filter, "contact_message_created_at DESC", p.Limit, p.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	return helper.JsonList(c, "", dto.ToContactMessageResponseList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET /api/a/contacts/:id — baca detail sekaligus tandai sudah dibaca.
func (ctl *ContactController) GetContactMessageByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Message ID tidak valid")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	msg, err := st.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, scope.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pesan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pesan")
	}

	if !msg.ContactMessageIsRead {
		if msg, err = st.Update(c.UserContext(), id,
			map[string]any{"contact_message_is_read": true}); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai pesan")
		}
	}

	return helper.JsonOK(c, "Pesan berhasil ditemukan", dto.ToContactMessageResponse(msg))
}

// 🟡 PATCH /api/a/contacts/:id/unread — kembalikan ke belum dibaca.
func (ctl *ContactController) MarkContactMessageUnread(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Message ID tidak valid")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	msg, err := st.Update(c.UserContext(), id,
		map[string]any{"contact_message_is_read": false})
	if err != nil {
		if errors.Is(err, scope.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pesan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai pesan")
	}

	return helper.JsonUpdated(c, "Pesan ditandai belum dibaca", dto.ToContactMessageResponse(msg))
}

// 🔴 DELETE /api/a/contacts/:id
func (ctl *ContactController) DeleteContactMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Message ID tidak valid")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	if _, err := st.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, scope.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pesan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pesan")
	}

	return helper.JsonDeleted(c, "Pesan berhasil dihapus", nil)
}
