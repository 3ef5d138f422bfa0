package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/popups/model"
)

type PopupRequest struct {
	PopupTitle    string     `json:"popup_title" validate:"required,max=255"`
	PopupLinkURL  *string    `json:"popup_link_url" validate:"omitempty,url"`
	PopupStartsAt *time.Time `json:"popup_starts_at"`
	PopupEndsAt   *time.Time `json:"popup_ends_at"`
	PopupIsActive bool       `json:"popup_is_active"`
}

type PopupUpdateRequest struct {
	PopupTitle    *string    `json:"popup_title" validate:"omitempty,max=255"`
	PopupLinkURL  *string    `json:"popup_link_url" validate:"omitempty,url"`
	PopupStartsAt *time.Time `json:"popup_starts_at"`
	PopupEndsAt   *time.Time `json:"popup_ends_at"`
	PopupIsActive *bool      `json:"popup_is_active"`
}

type PopupResponse struct {
	PopupID       uuid.UUID  `json:"popup_id"`
	PopupTitle    string     `json:"popup_title"`
	PopupImageURL *string    `json:"popup_image_url,omitempty"`
	PopupLinkURL  *string    `json:"popup_link_url,omitempty"`
	PopupStartsAt *time.Time `json:"popup_starts_at,omitempty"`
	PopupEndsAt   *time.Time `json:"popup_ends_at,omitempty"`
	PopupIsActive bool       `json:"popup_is_active"`
	PopupCreatedAt string    `json:"popup_created_at"`
}

func (r *PopupRequest) ToModel() *model.PopupModel {
	return &model.PopupModel{
		PopupTitle:    r.PopupTitle,
		PopupLinkURL:  r.PopupLinkURL,
		PopupStartsAt: r.PopupStartsAt,
		PopupEndsAt:   r.PopupEndsAt,
		PopupIsActive: r.PopupIsActive,
	}
}

func ToPopupResponse(m *model.PopupModel) *PopupResponse {
	return &PopupResponse{
		PopupID:        m.PopupID,
		PopupTitle:     m.PopupTitle,
		PopupImageURL:  m.PopupImageURL,
		PopupLinkURL:   m.PopupLinkURL,
		PopupStartsAt:  m.PopupStartsAt,
		PopupEndsAt:    m.PopupEndsAt,
		PopupIsActive:  m.PopupIsActive,
		PopupCreatedAt: m.PopupCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToPopupResponseList(models []model.PopupModel) []PopupResponse {
	result := make([]PopupResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToPopupResponse(&models[i]))
	}
	return result
}
