package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/gallery/model"
)

// Upload galeri pakai multipart, jadi metadata ikut sebagai form field.
type GalleryImageUpdateRequest struct {
	GalleryImageCaption   *string `json:"gallery_image_caption" validate:"omitempty,max=255"`
	GalleryImageSortOrder *int    `json:"gallery_image_sort_order" validate:"omitempty,gte=0"`
}

type GalleryImageResponse struct {
	GalleryImageID        uuid.UUID `json:"gallery_image_id"`
	GalleryImageCaption   string    `json:"gallery_image_caption"`
	GalleryImageURL       string    `json:"gallery_image_url"`
	GalleryImageThumbURL  *string   `json:"gallery_image_thumb_url,omitempty"`
	GalleryImageSortOrder int       `json:"gallery_image_sort_order"`
	GalleryImageCreatedAt string    `json:"gallery_image_created_at"`
}

func ToGalleryImageResponse(m *model.GalleryImageModel) *GalleryImageResponse {
	return &GalleryImageResponse{
		GalleryImageID:        m.GalleryImageID,
		GalleryImageCaption:   m.GalleryImageCaption,
		GalleryImageURL:       m.GalleryImageURL,
		GalleryImageThumbURL:  m.GalleryImageThumbURL,
		GalleryImageSortOrder: m.GalleryImageSortOrder,
		GalleryImageCreatedAt: m.GalleryImageCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToGalleryImageResponseList(models []model.GalleryImageModel) []GalleryImageResponse {
	result := make([]GalleryImageResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToGalleryImageResponse(&models[i]))
	}
	return result
}
