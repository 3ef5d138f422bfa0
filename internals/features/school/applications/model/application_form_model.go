package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status pendaftaran yang dikenal admin.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

type ApplicationFormModel struct {
	ApplicationFormID       uuid.UUID `gorm:"column:application_form_id;type:uuid;primaryKey" json:"application_form_id"`
	ApplicationFormSchoolID uuid.UUID `gorm:"column:application_form_school_id;type:uuid;not null;index:idx_application_forms_school_id" json:"application_form_school_id"`

	ApplicationFormApplicantName string `gorm:"column:application_form_applicant_name;type:varchar(255);not null" json:"application_form_applicant_name"`
	ApplicationFormEmail         string `gorm:"column:application_form_email;type:varchar(255);not null"          json:"application_form_email"`
	ApplicationFormPhone         string `gorm:"column:application_form_phone;type:varchar(30)"                    json:"application_form_phone"`
	ApplicationFormDesiredGrade  string `gorm:"column:application_form_desired_grade;type:varchar(50)"            json:"application_form_desired_grade"`
	ApplicationFormMessage       string `gorm:"column:application_form_message;type:text"                         json:"application_form_message"`

	ApplicationFormDocumentURL *string        `gorm:"column:application_form_document_url;type:text" json:"application_form_document_url,omitempty"`
	ApplicationFormExtras      datatypes.JSON `gorm:"column:application_form_extras;type:jsonb"      json:"application_form_extras,omitempty"`

	ApplicationFormStatus string `gorm:"column:application_form_status;type:varchar(20);not null;default:'pending'" json:"application_form_status"`

	ApplicationFormCreatedAt time.Time      `gorm:"column:application_form_created_at;autoCreateTime" json:"application_form_created_at"`
	ApplicationFormUpdatedAt time.Time      `gorm:"column:application_form_updated_at;autoUpdateTime" json:"application_form_updated_at"`
	ApplicationFormDeletedAt gorm.DeletedAt `gorm:"column:application_form_deleted_at;index"          json:"application_form_deleted_at,omitempty"`
}

func (ApplicationFormModel) TableName() string {
	return "application_forms"
}

func (m *ApplicationFormModel) BeforeCreate(tx *gorm.DB) error {
	if m.ApplicationFormID == uuid.Nil {
		m.ApplicationFormID = uuid.New()
	}
	if m.ApplicationFormStatus == "" {
		m.ApplicationFormStatus = ApplicationStatusPending
	}
	return nil
}

/* ======== kontrak scope.Tenantable ======== */

func (ApplicationFormModel) PrimaryColumn() string { return "application_form_id" }
func (ApplicationFormModel) TenantColumn() string  { return "application_form_school_id" }

func (m *ApplicationFormModel) GetSchoolID() uuid.UUID   { return m.ApplicationFormSchoolID }
func (m *ApplicationFormModel) SetSchoolID(id uuid.UUID) { m.ApplicationFormSchoolID = id }
