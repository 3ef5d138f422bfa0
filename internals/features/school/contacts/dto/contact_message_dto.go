package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/contacts/model"
)

type ContactMessageRequest struct {
	ContactMessageName    string `json:"contact_message_name" validate:"required,max=255"`
	ContactMessageEmail   string `json:"contact_message_email" validate:"required,email,max=255"`
	ContactMessagePhone   string `json:"contact_message_phone" validate:"omitempty,max=30"`
	ContactMessageSubject string `json:"contact_message_subject" validate:"omitempty,max=255"`
	ContactMessageBody    string `json:"contact_message_body" validate:"required,max=5000"`
}

type ContactMessageResponse struct {
	ContactMessageID        uuid.UUID `json:"contact_message_id"`
	ContactMessageName      string    `json:"contact_message_name"`
	ContactMessageEmail     string    `json:"contact_message_email"`
	ContactMessagePhone     string    `json:"contact_message_phone"`
	ContactMessageSubject   string    `json:"contact_message_subject"`
	ContactMessageBody      string    `json:"contact_message_body"`
	ContactMessageIsRead    bool      `json:"contact_message_is_read"`
	ContactMessageCreatedAt string    `json:"contact_message_created_at"`
}

func (r *ContactMessageRequest) ToModel() *model.ContactMessageModel {
	return &model.ContactMessageModel{
		ContactMessageName:    r.ContactMessageName,
		ContactMessageEmail:   r.ContactMessageEmail,
		ContactMessagePhone:   r.ContactMessagePhone,
		ContactMessageSubject: r.ContactMessageSubject,
		ContactMessageBody:    r.ContactMessageBody,
	}
}

func ToContactMessageResponse(m *model.ContactMessageModel) *ContactMessageResponse {
	return &ContactMessageResponse{
		ContactMessageID:        m.ContactMessageID,
		ContactMessageName:      m.ContactMessageName,
		ContactMessageEmail:     m.ContactMessageEmail,
		ContactMessagePhone:     m.ContactMessagePhone,
		ContactMessageSubject:   m.ContactMessageSubject,
		ContactMessageBody:      m.ContactMessageBody,
		ContactMessageIsRead:    m.ContactMessageIsRead,
		ContactMessageCreatedAt: m.ContactMessageCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToContactMessageResponseList(models []model.ContactMessageModel) []ContactMessageResponse {
	result := make([]ContactMessageResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToContactMessageResponse(&models[i]))
	}
	return result
}
