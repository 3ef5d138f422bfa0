package dto

import (
	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/notices/model"
)

type NoticeRequest struct {
	NoticeTitle       string `json:"notice_title" validate:"required,max=255"`
	NoticeBody        string `json:"notice_body"`
	NoticeIsPublished bool   `json:"notice_is_published"`
}

type NoticeUpdateRequest struct {
	NoticeTitle       *string `json:"notice_title" validate:"omitempty,max=255"`
	NoticeBody        *string `json:"notice_body"`
	NoticeIsPublished *bool   `json:"notice_is_published"`
}

type NoticeResponse struct {
	NoticeID            uuid.UUID `json:"notice_id"`
	NoticeTitle         string    `json:"notice_title"`
	NoticeSlug          string    `json:"notice_slug"`
	NoticeBody          string    `json:"notice_body"`
	NoticeIsPublished   bool      `json:"notice_is_published"`
	NoticeAttachmentURL *string   `json:"notice_attachment_url,omitempty"`
	NoticeCreatedAt     string    `json:"notice_created_at"`
}

func (r *NoticeRequest) ToModel() *model.NoticeModel {
	return &model.NoticeModel{
		NoticeTitle:       r.NoticeTitle,
		NoticeBody:        r.NoticeBody,
		NoticeIsPublished: r.NoticeIsPublished,
	}
}

func ToNoticeResponse(m *model.NoticeModel) *NoticeResponse {
	return &NoticeResponse{
		NoticeID:            m.NoticeID,
		NoticeTitle:         m.NoticeTitle,
		NoticeSlug:          m.NoticeSlug,
		NoticeBody:          m.NoticeBody,
		NoticeIsPublished:   m.NoticeIsPublished,
		NoticeAttachmentURL: m.NoticeAttachmentURL,
		NoticeCreatedAt:     m.NoticeCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToNoticeResponseList(models []model.NoticeModel) []NoticeResponse {
	result := make([]NoticeResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToNoticeResponse(&models[i]))
	}
	return result
}
