// file: internals/features/school/gallery/controller/gallery_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	"sekolahku_backend/internals/features/school/gallery/dto"
	"sekolahku_backend/internals/features/school/gallery/model"
	helper "sekolahku_backend/internals/helpers"
	"sekolahku_backend/internals/scope"
	"sekolahku_backend/internals/storage"
	"sekolahku_backend/internals/tenant"
)

type galleryStore = scope.Store[model.GalleryImageModel, *model.GalleryImageModel]

type GalleryController struct {
	DB       *gorm.DB
	Resolver *tenant.Resolver
	Blob     storage.BlobService
}

func NewGalleryController(db *gorm.DB, resolver *tenant.Resolver, blob storage.BlobService) *GalleryController {
	return &GalleryController{DB: db, Resolver: resolver, Blob: blob}
}

func (ctl *GalleryController) store(c *fiber.Ctx) (*galleryStore, error) {
	sid, err := ctl.Resolver.SchoolID(c.UserContext())
	if err != nil {
		return nil, err
	}
	return scope.New[model.GalleryImageModel](ctl.DB, sid), nil
}

// 🟢 POST /api/a/gallery — multipart: file "image" + form field "caption"/"sort_order".
// Upload dan insert dalam satu request: foto tanpa row tidak pernah tampil,
// jadi tidak ada state setengah jadi di sisi klien.
func (ctl *GalleryController) UploadGalleryImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar tidak ditemukan")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	url, thumbURL, err := ctl.Blob.UploadImageWithThumb(
		c.UserContext(), ctl.Resolver.Slug(), constants.FolderGallery, fh)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload gambar")
	}

	sortOrder, _ := strconv.Atoi(strings.TrimSpace(c.FormValue("sort_order", "0")))
	if sortOrder < 0 {
		sortOrder = 0
	}

	img := &model.GalleryImageModel{
		GalleryImageCaption:   strings.TrimSpace(c.FormValue("caption")),
		GalleryImageURL:       url,
		GalleryImageSortOrder: sortOrder,
	}
	if thumbURL != "" {
		img.GalleryImageThumbURL = &thumbURL
	}

	if err := st.Create(c.UserContext(), img); err != nil {
		log.Printf("[ERROR] Gagal menyimpan foto galeri: %v", err)
		// blob sudah terlanjur naik, bersihkan supaya tidak jadi sampah
		if derr := ctl.Blob.DeleteByPublicURL(c.UserContext(), url); derr != nil {
			log.Printf("[WARNING] gagal hapus blob yatim: %v", derr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan foto galeri")
	}

	return helper.JsonCreated(c, "Foto berhasil ditambahkan", dto.ToGalleryImageResponse(img))
}

// 🟢 GET /api/a/gallery + pagination
func (ctl *GalleryController) ListGalleryImages(c *fiber.Ctx) error {
	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	p := helper.ResolvePaging(c, 24, 100)
	total, err := st.Count(c.UserContext(), nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung foto")
	}
	rows, err := st.List(c.UserContext(), nil,
		"gallery_image_sort_order ASC, gallery_image_created_at DESC", p.Limit, p.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil foto galeri")
	}

	return helper.JsonList(c, "", dto.ToGalleryImageResponseList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟡 PATCH /api/a/gallery/:id — caption & urutan saja; ganti gambar = hapus lalu upload baru.
func (ctl *GalleryController) UpdateGalleryImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gallery ID tidak valid")
	}

	var req dto.GalleryImageUpdateRequest
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
	if req.GalleryImageCaption != nil {
		updates["gallery_image_caption"] = *req.GalleryImageCaption
	}
	if req.GalleryImageSortOrder != nil {
		updates["gallery_image_sort_order"] = *req.GalleryImageSortOrder
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	img, err := st.Update(c.UserContext(), id, updates)
	if err != nil {
		if errors.Is(err, scope.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui foto")
	}

	return helper.JsonUpdated(c, "Foto berhasil diperbarui", dto.ToGalleryImageResponse(img))
}

// 🔴 DELETE /api/a/gallery/:id — row dulu, baru blob (blob yatim lebih murah
// daripada row yang menunjuk blob mati).
func (ctl *GalleryController) DeleteGalleryImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gallery ID tidak valid")
	}

	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	deleted, err := st.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, scope.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus foto")
	}

	if derr := ctl.Blob.DeleteByPublicURL(c.UserContext(), deleted.GalleryImageURL); derr != nil {
		log.Printf("[WARNING] gagal hapus blob galeri: %v", derr)
	}
	if deleted.GalleryImageThumbURL != nil {
		if derr := ctl.Blob.DeleteByPublicURL(c.UserContext(), *deleted.GalleryImageThumbURL); derr != nil {
			log.Printf("[WARNING] gagal hapus thumbnail galeri: %v", derr)
		}
	}

	return helper.JsonDeleted(c, "Foto berhasil dihapus", nil)
}

/* ==========================
   Public (tanpa cookie)
========================== */

// 🟢 GET /api/u/gallery
func (ctl *GalleryController) PublicListGalleryImages(c *fiber.Ctx) error {
	st, err := ctl.store(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Tenant tidak terkonfigurasi")
	}

	p := helper.ResolvePaging(c, 24, 100)
	total, err := st.Count(c.UserContext(), nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung foto")
	}
	rows, err := st.List(c.UserContext(), nil,
		"gallery_image_sort_order ASC, gallery_image_created_at DESC", p.Limit, p.Offset)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil foto galeri")
	}

	return helper.JsonList(c, "", dto.ToGalleryImageResponseList(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
