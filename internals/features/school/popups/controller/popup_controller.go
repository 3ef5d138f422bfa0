// file: internals/features/school/popups/controller/popup_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/popups/dto"
	"sekolahku_backend/internals/features/school/popups/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/storage"
	"sekolahku_backend/internals/tenant"
)

// PopupController TIDAK pakai scope.Store: popup berlaku global lintas
// sekolah, jadi query-nya langsung ke GORM tanpa filter tenant.
type PopupController struct {
	DB       *gorm.DB
	Resolver *tenant.Resolver
	Blob     storage.BlobService
	Now      func() time.Time // injectable untuk test window tanggal
}

func NewPopupController(db *gorm.DB, resolver *tenant.Resolver, blob storage.BlobService) *PopupController {
	return &PopupController{DB: db, Resolver: resolver, Blob: blob, Now: time.Now}
}

// 🟢 POST /api/a/popups
func (ctl *PopupController) CreatePopup(c *fiber.Ctx) error {
	var req dto.PopupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	newPopup := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(newPopup).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan popup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan popup")
	}

	return helper.JsonCreated(c, "Popup berhasil ditambahkan", dto.ToPopupResponse(newPopup))
}

// 🟢 GET /api/a/popups + pagination
func (ctl *PopupController) ListPopups(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	var total int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.PopupModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung popup")
	}

	var rows []model.PopupModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("popup_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil popup")
	}

	return helper.JsonList(c, "", dto.ToPopupResponseList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟡 PATCH /api/a/popups/:id
func (ctl *PopupController) UpdatePopup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Popup ID tidak valid")
	}

	var req dto.PopupUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := helper.ValidateStruct(c, &req); err != nil {
		return err
	}

	var popup model.PopupModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&popup, "popup_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Popup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil popup")
	}

	updates := map[string]any{}
	if req.PopupTitle != nil {
		updates["popup_title"] = *req.PopupTitle
	}
	if req.PopupLinkURL != nil {
		updates["popup_link_url"] = *req.PopupLinkURL
	}
	if req.PopupStartsAt != nil {
		updates["popup_starts_at"] = *req.PopupStartsAt
	}
	if req.PopupEndsAt != nil {
		updates["popup_ends_at"] = *req.PopupEndsAt
	}
	if req.PopupIsActive != nil {
		updates["popup_is_active"] = *req.PopupIsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&popup).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui popup")
	}

	return helper.JsonUpdated(c, "Popup berhasil diperbarui", dto.ToPopupResponse(&popup))
}

// 🟡 PATCH /api/a/popups/:id/image
func (ctl *PopupController) UploadPopupImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Popup ID tidak valid")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar tidak ditemukan")
	}

	var popup model.PopupModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&popup, "popup_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Popup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil popup")
	}

	url, err := ctl.Blob.UploadImage(c.UserContext(), ctl.Resolver.Slug(), constants.FolderPopups, fh)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload gambar")
	}

	oldURL := popup.PopupImageURL
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&popup).Update("popup_image_url", url).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan URL gambar")
	}

	if oldURL != nil && *oldURL != url {
		if derr := ctl.Blob.DeleteByPublicURL(c.UserContext(), *oldURL); derr != nil {
			log.Printf("[WARNING] gagal hapus gambar popup lama: %v", derr)
		}
	}

	return helper.JsonUpdated(c, "Gambar popup berhasil diupload", dto.ToPopupResponse(&popup))
}

// 🔴 DELETE /api/a/popups/:id
func (ctl *PopupController) DeletePopup(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Popup ID tidak valid")
	}

	var popup model.PopupModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&popup, "popup_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Popup tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil popup")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&popup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus popup")
	}

	if popup.PopupImageURL != nil {
		if derr := ctl.Blob.DeleteByPublicURL(c.UserContext(), *popup.PopupImageURL); derr != nil {
			log.Printf("[WARNING] gagal hapus gambar popup: %v", derr)
		}
	}

	return helper.JsonDeleted(c, "Popup berhasil dihapus", nil)
}

/* ==========================
   Public (tanpa cookie)
========================== */

// 🟢 GET /api/u/popups/active — aktif + masuk window tanggal saat ini.
// starts_at/ends_at NULL berarti sisi itu terbuka.
func (ctl *PopupController) PublicListActivePopups(c *fiber.Ctx) error {
	now := ctl.Now()

	var rows []model.PopupModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("popup_is_active = ?", true).
		Where("(popup_starts_at IS NULL OR popup_starts_at <= ?)", now).
		Where("(popup_ends_at IS NULL OR popup_ends_at >= ?)", now).
		Order("popup_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil popup")
	}

	return helper.JsonOK(c, "", dto.ToPopupResponseList(rows))
}
