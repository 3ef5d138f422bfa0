package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoticeModel struct {
	NoticeID          uuid.UUID `gorm:"column:notice_id;type:uuid;primaryKey" json:"notice_id"`
	NoticeSchoolID    uuid.UUID `gorm:"column:notice_school_id;type:uuid;not null;index:idx_notices_school_id" json:"notice_school_id"`
	NoticeTitle       string    `gorm:"column:notice_title;type:varchar(255);not null" json:"notice_title"`
	NoticeSlug        string    `gorm:"column:notice_slug;type:varchar(100);not null"  json:"notice_slug"`
	NoticeBody        string    `gorm:"column:notice_body;type:text"                   json:"notice_body"`
	NoticeIsPublished bool      `gorm:"column:notice_is_published;not null;default:false" json:"notice_is_published"`

	NoticeAttachmentURL *string `gorm:"column:notice_attachment_url;type:text" json:"notice_attachment_url,omitempty"`

	NoticeCreatedAt time.Time      `gorm:"column:notice_created_at;autoCreateTime" json:"notice_created_at"`
	NoticeUpdatedAt time.Time      `gorm:"column:notice_updated_at;autoUpdateTime" json:"notice_updated_at"`
	NoticeDeletedAt gorm.DeletedAt `gorm:"column:notice_deleted_at;index"          json:"notice_deleted_at,omitempty"`
}

func (NoticeModel) TableName() string {
	return "notices"
}

func (m *NoticeModel) BeforeCreate(tx *gorm.DB) error {
	if m.NoticeID == uuid.Nil {
		m.NoticeID = uuid.New()
	}
	return nil
}

/* ======== kontrak scope.Tenantable ======== */

func (NoticeModel) PrimaryColumn() string { return "notice_id" }
func (NoticeModel) TenantColumn() string  { return "notice_school_id" }

func (m *NoticeModel) GetSchoolID() uuid.UUID   { return m.NoticeSchoolID }
func (m *NoticeModel) SetSchoolID(id uuid.UUID) { m.NoticeSchoolID = id }
