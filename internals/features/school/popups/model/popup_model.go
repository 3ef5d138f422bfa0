package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PopupModel adalah entity GLOBAL — tampil di semua sekolah, tidak punya
// kolom school_id, dan sengaja TIDAK lewat scope.Store.
type PopupModel struct {
	PopupID       uuid.UUID `gorm:"column:popup_id;type:uuid;primaryKey" json:"popup_id"`
	PopupTitle    string    `gorm:"column:popup_title;type:varchar(255);not null" json:"popup_title"`
	PopupImageURL *string   `gorm:"column:popup_image_url;type:text" json:"popup_image_url,omitempty"`
	PopupLinkURL  *string   `gorm:"column:popup_link_url;type:text"  json:"popup_link_url,omitempty"`

	PopupStartsAt *time.Time `gorm:"column:popup_starts_at" json:"popup_starts_at,omitempty"`
	PopupEndsAt   *time.Time `gorm:"column:popup_ends_at"   json:"popup_ends_at,omitempty"`
	PopupIsActive bool       `gorm:"column:popup_is_active;not null;default:false" json:"popup_is_active"`

	PopupCreatedAt time.Time      `gorm:"column:popup_created_at;autoCreateTime" json:"popup_created_at"`
	PopupUpdatedAt time.Time      `gorm:"column:popup_updated_at;autoUpdateTime" json:"popup_updated_at"`
	PopupDeletedAt gorm.DeletedAt `gorm:"column:popup_deleted_at;index"          json:"popup_deleted_at,omitempty"`
}

func (PopupModel) TableName() string {
	return "popups"
}

func (m *PopupModel) BeforeCreate(tx *gorm.DB) error {
	if m.PopupID == uuid.Nil {
		m.PopupID = uuid.New()
	}
	return nil
}
