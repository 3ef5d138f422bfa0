// file: internals/storage/validate.go
package storage

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const (
	// Batas ukuran upload — divalidasi SEBELUM file diserahkan ke adapter.
	MaxImageSize    = 5 * 1024 * 1024  // 5MB
	MaxDocumentSize = 10 * 1024 * 1024 // 10MB
)

var imageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".webp": {},
}

var documentExts = map[string]struct{}{
	".pdf": {}, ".jpg": {}, ".jpeg": {}, ".png": {}, ".webp": {},
}

// ValidateImage: tolak sebelum upload kalau terlalu besar / bukan tipe gambar.
func ValidateImage(fh *multipart.FileHeader) error {
	if fh == nil {
		return fmt.Errorf("file tidak ditemukan")
	}
	if fh.Size > MaxImageSize {
		return fmt.Errorf("ukuran gambar maksimal 5MB")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := imageExts[ext]; !ok {
		return fmt.Errorf("format gambar harus jpg/png/webp")
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return fmt.Errorf("content-type bukan gambar: %s", ct)
	}
	return nil
}

// ValidateDocument: untuk lampiran formulir (pdf atau scan gambar).
func ValidateDocument(fh *multipart.FileHeader) error {
	if fh == nil {
		return fmt.Errorf("file tidak ditemukan")
	}
	if fh.Size > MaxDocumentSize {
		return fmt.Errorf("ukuran dokumen maksimal 10MB")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := documentExts[ext]; !ok {
		return fmt.Errorf("format dokumen harus pdf/jpg/png/webp")
	}
	return nil
}
