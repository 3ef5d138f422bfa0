// file: internals/features/school/applications/controller/application_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/applications/dto"
	"sekolahku_backend/internals/features/school/applications/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/scope"
	"sekolahku_backend/internals/storage"
	"sekolahku_backend/internals/tenant"
)

type applicationStore = scope.Store[model.ApplicationFormModel, *model.ApplicationFormModel]

type ApplicationController struct {
	DB       *gorm.DB
	Resolver *tenant.Resolver
	Blob     storage.BlobService
}

func NewApplicationController(db *gorm.DB, resolver *tenant.Resolver, blob storage.BlobService) *ApplicationController {
	return &ApplicationController{DB: db, Resolver: resolver, Blob: blob}
}

func (ctl *ApplicationController) store(c *fiber.Ctx) (*applicationStore, error) {
	sid, err := ctl.Resolver.SchoolID(c.UserContext())
	if err != nil {
		return nil, err
	}
	return scope.New[model.ApplicationFormModel](ctl.DB, sid), nil
}

/* ==========================
   Public (tanpa cookie)
========================== */

// 🟢 POST /api/u/applications — formulir pendaftaran dari halaman publik.
func (ctl *ApplicationController) PublicSubmitApplication(c *fiber.Ctx) error {
	var req dto.ApplicationFormRequest
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

	form := req.ToModel()
	if err := st.Create(c.UserContext(), form); err != nil {
		log.Printf("[ERROR] Gagal menyimpan pendaftaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pendaftaran")
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil dikirim", dto.ToApplicationFormResponse(form))
}

// 🟢 POST /api/u/applications/:id/document — lampiran dokumen (rapor/akta, pdf).
// Endpoint publik, jadi id acak (uuid) adalah satu-satunya kuncinya.
func (ctl *ApplicationController) PublicUploadApplicationDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Application ID tidak valid")
	}

	fh, err := c.FormFile("document")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File dokumen tidak ditemukan")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	existing, err := st.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
	}

	url, err := ctl.Blob.UploadDocument(c.UserContext(), ctl.Resolver.Slug(), constants.FolderApplications, fh)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload dokumen")
	}

	form, err := st.Update(c.UserContext(), id, map[string]any{"application_form_document_url": url})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan URL dokumen")
	}

	if existing.ApplicationFormDocumentURL != nil && *existing.ApplicationFormDocumentURL != url {
		if derr := ctl.Blob.DeleteByPublicURL(c.UserContext(), *existing.ApplicationFormDocumentURL); derr != nil {
			log.Printf("[WARNING] gagal hapus dokumen lama: %v", derr)
		}
	}

	return helper.JsonUpdated(c, "Dokumen berhasil diupload", dto.ToApplicationFormResponse(form))
}

/* ==========================
   Admin (dashboard)
========================== */

// 🟢 GET /api/a/applications + pagination, opsional ?status=
func (ctl *ApplicationController) ListApplications(c *fiber.Ctx) error {
	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	var filter scope.Filter
	if status := c.Query("status"); status != "" {
		filter = scope.Filter{"application_form_status": status}
	}

	p := helper.ResolvePaging(c, 10, 100)
	total, err := st.Count(c.UserContext(), filter)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pendaftaran")
	}
	rows, err := st.List(c.UserContext(), filter, "application_form_created_at DESC", p.Limit, p.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}

	return helper.JsonList(c, "", dto.ToApplicationFormResponseList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET /api/a/applications/:id
func (ctl *ApplicationController) GetApplicationByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Application ID tidak valid")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	form, err := st.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, scope.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pendaftaran")
	}

	return helper.JsonOK(c, "Pendaftaran berhasil ditemukan", dto.ToApplicationFormResponse(form))
}

// 🟡 PATCH /api/a/applications/:id/status
func (ctl *ApplicationController) UpdateApplicationStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Application ID tidak valid")
	}

	var req dto.ApplicationStatusUpdateRequest
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

	form, err := st.Update(c.UserContext(), id,
		map[string]any{"application_form_status": req.ApplicationFormStatus})
	if err != nil {
		if errors.Is(err, scope.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status")
	}

	return helper.JsonUpdated(c, "Status pendaftaran diperbarui", dto.ToApplicationFormResponse(form))
}

// 🔴 DELETE /api/a/applications/:id
func (ctl *ApplicationController) DeleteApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Application ID tidak valid")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	deleted, err := st.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, scope.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pendaftaran")
	}

	if deleted.ApplicationFormDocumentURL != nil {
		if derr := ctl.Blob.DeleteByPublicURL(c.UserContext(), *deleted.ApplicationFormDocumentURL); derr != nil {
			log.Printf("[WARNING] gagal hapus dokumen pendaftaran: %v", derr)
		}
	}

	return helper.JsonDeleted(c, "Pendaftaran berhasil dihapus", nil)
}
