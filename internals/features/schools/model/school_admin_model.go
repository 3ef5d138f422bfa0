package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolAdminModel adalah kredensial dashboard admin. Satu (atau sedikit) baris
// per sekolah, dibuat oleh provisioning CLI, tidak pernah dihapus lewat API.
type SchoolAdminModel struct {
	SchoolAdminID           uuid.UUID `gorm:"column:school_admin_id;type:uuid;primaryKey" json:"school_admin_id"`
	SchoolAdminSchoolID     uuid.UUID `gorm:"column:school_admin_school_id;type:uuid;not null;index:idx_school_admins_school_id;uniqueIndex:ux_school_admins_school_username" json:"school_admin_school_id"`
	SchoolAdminUsername     string    `gorm:"column:school_admin_username;type:varchar(100);not null;uniqueIndex:ux_school_admins_school_username" json:"school_admin_username"`
	SchoolAdminPasswordHash string    `gorm:"column:school_admin_password_hash;type:varchar(255);not null" json:"-"`

	SchoolAdminCreatedAt time.Time `gorm:"column:school_admin_created_at;autoCreateTime" json:"school_admin_created_at"`
	SchoolAdminUpdatedAt time.Time `gorm:"column:school_admin_updated_at;autoUpdateTime" json:"school_admin_updated_at"`
}

func (SchoolAdminModel) TableName() string {
	return "school_admins"
}

func (m *SchoolAdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolAdminID == uuid.Nil {
		m.SchoolAdminID = uuid.New()
	}
	return nil
}
