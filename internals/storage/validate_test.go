package storage

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(name string, size int64, contentType string) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: name, Size: size, Header: h}
}

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage(fileHeader("foto.jpg", 1024, "image/jpeg")))
	assert.NoError(t, ValidateImage(fileHeader("FOTO.PNG", 1024, "image/png")))
	assert.NoError(t, ValidateImage(fileHeader("foto.webp", MaxImageSize, "image/webp")))
	// content-type kosong: lolos validasi awal, sniffing terjadi saat re-encode
	assert.NoError(t, ValidateImage(fileHeader("foto.jpeg", 1024, "")))

	assert.Error(t, ValidateImage(nil))
	assert.Error(t, ValidateImage(fileHeader("foto.jpg", MaxImageSize+1, "image/jpeg")), "lewat 5MB")
	assert.Error(t, ValidateImage(fileHeader("virus.exe", 1024, "application/octet-stream")))
	assert.Error(t, ValidateImage(fileHeader("dokumen.pdf", 1024, "application/pdf")))
	assert.Error(t, ValidateImage(fileHeader("foto.jpg", 1024, "text/html")), "ekstensi gambar tapi content-type bukan")
}

func TestValidateDocument(t *testing.T) {
	assert.NoError(t, ValidateDocument(fileHeader("rapor.pdf", 1024, "application/pdf")))
	assert.NoError(t, ValidateDocument(fileHeader("scan.jpg", 1024, "image/jpeg")))
	assert.NoError(t, ValidateDocument(fileHeader("rapor.pdf", MaxDocumentSize, "application/pdf")))

	assert.Error(t, ValidateDocument(nil))
	assert.Error(t, ValidateDocument(fileHeader("rapor.pdf", MaxDocumentSize+1, "application/pdf")), "lewat 10MB")
	assert.Error(t, ValidateDocument(fileHeader("arsip.zip", 1024, "application/zip")))
}

func TestPublicURLAndExtractKeyRoundTrip(t *testing.T) {
	svc := &OSSService{Endpoint: "oss-ap-southeast-5.aliyuncs.com", BucketName: "sekolahku"}

	url := svc.PublicURL("sd-harapan/events/abc.webp")
	assert.Equal(t, "https://sekolahku.oss-ap-southeast-5.aliyuncs.com/sd-harapan/events/abc.webp", url)

	key, err := ExtractKeyFromPublicURL(url)
	assert.NoError(t, err)
	assert.Equal(t, "sd-harapan/events/abc.webp", key)

	_, err = ExtractKeyFromPublicURL("")
	assert.Error(t, err)
	_, err = ExtractKeyFromPublicURL("https://host-tanpa-path")
	assert.Error(t, err)
}
