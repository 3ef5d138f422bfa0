package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryImageModel struct {
	GalleryImageID       uuid.UUID `gorm:"column:gallery_image_id;type:uuid;primaryKey" json:"gallery_image_id"`
	GalleryImageSchoolID uuid.UUID `gorm:"column:gallery_image_school_id;type:uuid;not null;index:idx_gallery_images_school_id" json:"gallery_image_school_id"`
	GalleryImageCaption  string    `gorm:"column:gallery_image_caption;type:varchar(255)" json:"gallery_image_caption"`

	GalleryImageURL      string  `gorm:"column:gallery_image_url;type:text;not null" json:"gallery_image_url"`
	GalleryImageThumbURL *string `gorm:"column:gallery_image_thumb_url;type:text"    json:"gallery_image_thumb_url,omitempty"`

	GalleryImageSortOrder int `gorm:"column:gallery_image_sort_order;not null;default:0" json:"gallery_image_sort_order"`

	GalleryImageCreatedAt time.Time      `gorm:"column:gallery_image_created_at;autoCreateTime" json:"gallery_image_created_at"`
	GalleryImageUpdatedAt time.Time      `gorm:"column:gallery_image_updated_at;autoUpdateTime" json:"gallery_image_updated_at"`
	GalleryImageDeletedAt gorm.DeletedAt `gorm:"column:gallery_image_deleted_at;index"          json:"gallery_image_deleted_at,omitempty"`
}

func (GalleryImageModel) TableName() string {
	return "gallery_images"
}

func (m *GalleryImageModel) BeforeCreate(tx *gorm.DB) error {
	if m.GalleryImageID == uuid.Nil {
		m.GalleryImageID = uuid.New()
	}
	return nil
}

/* ======== kontrak scope.Tenantable ======== */

func (GalleryImageModel) PrimaryColumn() string { return "gallery_image_id" }
func (GalleryImageModel) TenantColumn() string  { return "gallery_image_school_id" }

func (m *GalleryImageModel) GetSchoolID() uuid.UUID   { return m.GalleryImageSchoolID }
func (m *GalleryImageModel) SetSchoolID(id uuid.UUID) { m.GalleryImageSchoolID = id }
