package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sekolahku_backend/internals/features/school/applications/model"
)

// Diisi calon wali murid dari halaman publik.
type ApplicationFormRequest struct {
	ApplicationFormApplicantName string `json:"application_form_applicant_name" validate:"required,max=255"`
	ApplicationFormEmail         string `json:"application_form_email" validate:"required,email,max=255"`
	ApplicationFormPhone         string `json:"application_form_phone" validate:"omitempty,max=30"`
	ApplicationFormDesiredGrade  string `json:"application_form_desired_grade" validate:"omitempty,max=50"`
	ApplicationFormMessage       string `json:"application_form_message" validate:"omitempty,max=5000"`

	// field tambahan bebas per sekolah (asal sekolah, prestasi, dst)
	ApplicationFormExtras datatypes.JSON `json:"application_form_extras,omitempty"`
}

type ApplicationStatusUpdateRequest struct {
	ApplicationFormStatus string `json:"application_form_status" validate:"required,oneof=pending reviewed accepted rejected"`
}

type ApplicationFormResponse struct {
	ApplicationFormID            uuid.UUID      `json:"application_form_id"`
	ApplicationFormApplicantName string         `json:"application_form_applicant_name"`
	ApplicationFormEmail         string         `json:"application_form_email"`
	ApplicationFormPhone         string         `json:"application_form_phone"`
	ApplicationFormDesiredGrade  string         `json:"application_form_desired_grade"`
	ApplicationFormMessage       string         `json:"application_form_message"`
	ApplicationFormDocumentURL   *string        `json:"application_form_document_url,omitempty"`
	ApplicationFormExtras        datatypes.JSON `json:"application_form_extras,omitempty"`
	ApplicationFormStatus        string         `json:"application_form_status"`
	ApplicationFormCreatedAt     string         `json:"application_form_created_at"`
}

func (r *ApplicationFormRequest) ToModel() *model.ApplicationFormModel {
	return &model.ApplicationFormModel{
		ApplicationFormApplicantName: r.ApplicationFormApplicantName,
		ApplicationFormEmail:         r.ApplicationFormEmail,
		ApplicationFormPhone:         r.ApplicationFormPhone,
		ApplicationFormDesiredGrade:  r.ApplicationFormDesiredGrade,
		ApplicationFormMessage:       r.ApplicationFormMessage,
		ApplicationFormExtras:        r.ApplicationFormExtras,
		ApplicationFormStatus:        model.ApplicationStatusPending,
	}
}

func ToApplicationFormResponse(m *model.ApplicationFormModel) *ApplicationFormResponse {
	return &ApplicationFormResponse{
		ApplicationFormID:            m.ApplicationFormID,
		ApplicationFormApplicantName: m.ApplicationFormApplicantName,
		ApplicationFormEmail:         m.ApplicationFormEmail,
		ApplicationFormPhone:         m.ApplicationFormPhone,
		ApplicationFormDesiredGrade:  m.ApplicationFormDesiredGrade,
		ApplicationFormMessage:       m.ApplicationFormMessage,
		ApplicationFormDocumentURL:   m.ApplicationFormDocumentURL,
		ApplicationFormExtras:        m.ApplicationFormExtras,
		ApplicationFormStatus:        m.ApplicationFormStatus,
		ApplicationFormCreatedAt:     m.ApplicationFormCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToApplicationFormResponseList(models []model.ApplicationFormModel) []ApplicationFormResponse {
	result := make([]ApplicationFormResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToApplicationFormResponse(&models[i]))
	}
	return result
}
