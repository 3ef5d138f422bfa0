// file: internals/storage/blob_service.go
package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller.
Object key selalu <school_slug>/<folder>/<uuid>.<ext> — slug tenant jadi
prefix supaya file antar sekolah tidak pernah bercampur satu direktori.
*/
type BlobService interface {
	// UploadImage: validasi (≤5MB, jpg/png/webp) → re-encode WebP → upload.
	UploadImage(ctx context.Context, schoolSlug, folder string, fh *multipart.FileHeader) (publicURL string, err error)
	// UploadImageWithThumb: seperti UploadImage tapi juga menghasilkan thumbnail (galeri).
	UploadImageWithThumb(ctx context.Context, schoolSlug, folder string, fh *multipart.FileHeader) (publicURL, thumbURL string, err error)
	// UploadDocument: validasi (≤10MB, pdf/gambar) → upload apa adanya.
	UploadDocument(ctx context.Context, schoolSlug, folder string, fh *multipart.FileHeader) (publicURL string, err error)

	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

/* --------------------------------------------------
   Implementasi berbasis Aliyun OSS
-------------------------------------------------- */

type OSSBlobService struct {
	svc *OSSService
}

func NewOSSBlobServiceFromEnv() (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv()
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func buildObjectKey(schoolSlug, folder, ext string) string {
	return fmt.Sprintf("%s/%s/%s%s", strings.Trim(schoolSlug, "/"), folder, uuid.New().String(), ext)
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

func checkFolder(folder string) error {
	if !constants.IsValidStorageFolder(folder) {
		return fiber.NewError(fiber.StatusBadRequest, "Folder storage tidak dikenal: "+folder)
	}
	return nil
}

func (b *OSSBlobService) UploadImage(ctx context.Context, schoolSlug, folder string, fh *multipart.FileHeader) (string, error) {
	if err := checkFolder(folder); err != nil {
		return "", err
	}
	if err := ValidateImage(fh); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	all, err := readAll(fh)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Gagal membaca file")
	}
	data, err := reencodeToWebP(all)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	key := buildObjectKey(schoolSlug, folder, ".webp")
	if err := b.svc.UploadBytes(ctx, key, data, "image/webp"); err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) UploadImageWithThumb(ctx context.Context, schoolSlug, folder string, fh *multipart.FileHeader) (string, string, error) {
	if err := checkFolder(folder); err != nil {
		return "", "", err
	}
	if err := ValidateImage(fh); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	all, err := readAll(fh)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Gagal membaca file")
	}
	data, err := reencodeToWebP(all)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	thumb, err := makeThumbnailWebP(all)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	key := buildObjectKey(schoolSlug, folder, ".webp")
	thumbKey := strings.TrimSuffix(key, ".webp") + "_thumb.webp"
	if err := b.svc.UploadBytes(ctx, key, data, "image/webp"); err != nil {
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	if err := b.svc.UploadBytes(ctx, thumbKey, thumb, "image/webp"); err != nil {
		// thumbnail gagal → pakai gambar utama saja, jangan gagalkan upload
		return b.svc.PublicURL(key), b.svc.PublicURL(key), nil
	}
	return b.svc.PublicURL(key), b.svc.PublicURL(thumbKey), nil
}

func (b *OSSBlobService) UploadDocument(ctx context.Context, schoolSlug, folder string, fh *multipart.FileHeader) (string, error) {
	if err := checkFolder(folder); err != nil {
		return "", err
	}
	if err := ValidateDocument(fh); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	src, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Gagal membaca file")
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	key := buildObjectKey(schoolSlug, folder, ext)
	if err := b.svc.UploadStream(ctx, key, src, ct); err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return nil
	}
	key, err := ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return b.svc.DeleteObject(ctx, key)
}

/* --------------------------------------------------
   Disabled: dipakai saat ENV OSS tidak diisi (dev lokal).
   Upload ditolak jelas, delete jadi no-op.
-------------------------------------------------- */

type DisabledBlobService struct{}

var errStorageDisabled = fiber.NewError(fiber.StatusServiceUnavailable, "Storage belum dikonfigurasi")

func (DisabledBlobService) UploadImage(context.Context, string, string, *multipart.FileHeader) (string, error) {
	return "", errStorageDisabled
}

func (DisabledBlobService) UploadImageWithThumb(context.Context, string, string, *multipart.FileHeader) (string, string, error) {
	return "", "", errStorageDisabled
}

func (DisabledBlobService) UploadDocument(context.Context, string, string, *multipart.FileHeader) (string, error) {
	return "", errStorageDisabled
}

func (DisabledBlobService) DeleteByPublicURL(context.Context, string) error {
	return nil
}
