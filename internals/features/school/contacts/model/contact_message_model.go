package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessageModel struct {
	ContactMessageID       uuid.UUID `gorm:"column:contact_message_id;type:uuid;primaryKey" json:"contact_message_id"`
	ContactMessageSchoolID uuid.UUID `gorm:"column:contact_message_school_id;type:uuid;not null;index:idx_contact_messages_school_id" json:"contact_message_school_id"`

	ContactMessageName    string `gorm:"column:contact_message_name;type:varchar(255);not null" json:"contact_message_name"`
	ContactMessageEmail   string `gorm:"column:contact_message_email;type:varchar(255);not null" json:"contact_message_email"`
	ContactMessagePhone   string `gorm:"column:contact_message_phone;type:varchar(30)"           json:"contact_message_phone"`
	ContactMessageSubject string `gorm:"column:contact_message_subject;type:varchar(255)"        json:"contact_message_subject"`
	ContactMessageBody    string `gorm:"column:contact_message_body;type:text;not null"          json:"contact_message_body"`

	ContactMessageIsRead bool `gorm:"column:contact_message_is_read;not null;default:false" json:"contact_message_is_read"`

	ContactMessageCreatedAt time.Time      `gorm:"column:contact_message_created_at;autoCreateTime" json:"contact_message_created_at"`
	ContactMessageUpdatedAt time.Time      `gorm:"column:contact_message_updated_at;autoUpdateTime" json:"contact_message_updated_at"`
	ContactMessageDeletedAt gorm.DeletedAt `gorm:"column:contact_message_deleted_at;index"          json:"contact_message_deleted_at,omitempty"`
}

func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

func (m *ContactMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ContactMessageID == uuid.Nil {
		m.ContactMessageID = uuid.New()
	}
	return nil
}

/* ======== kontrak scope.Tenantable ======== */

func (ContactMessageModel) PrimaryColumn() string { return "contact_message_id" }
func (ContactMessageModel) TenantColumn() string  { return "contact_message_school_id" }

func (m *ContactMessageModel) GetSchoolID() uuid.UUID   { return m.ContactMessageSchoolID }
func (m *ContactMessageModel) SetSchoolID(id uuid.UUID) { m.ContactMessageSchoolID = id }
