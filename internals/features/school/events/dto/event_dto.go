package dto

import (
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/events/model"
)

// 🔹 Request untuk membuat event. Perhatikan: TIDAK ada field school_id —
// server yang menstempel tenant, bukan caller.
type EventRequest struct {
	EventTitle       string     `json:"event_title" validate:"required,max=255"`
	EventDescription string     `json:"event_description"`
	EventLocation    string     `json:"event_location" validate:"max=255"`
	EventStartsAt    *time.Time `json:"event_starts_at"`
	EventEndsAt      *time.Time `json:"event_ends_at"`
}

// 🔹 Partial update (pointer = field opsional)
type EventUpdateRequest struct {
	EventTitle       *string    `json:"event_title" validate:"omitempty,max=255"`
	EventDescription *string    `json:"event_description"`
	EventLocation    *string    `json:"event_location" validate:"omitempty,max=255"`
	EventStartsAt    *time.Time `json:"event_starts_at"`
	EventEndsAt      *time.Time `json:"event_ends_at"`
}

type EventResponse struct {
	EventID          uuid.UUID  `json:"event_id"`
	EventTitle       string     `json:"event_title"`
	EventSlug        string     `json:"event_slug"`
	EventDescription string     `json:"event_description"`
	EventLocation    string     `json:"event_location"`
	EventStartsAt    *time.Time `json:"event_starts_at,omitempty"`
	EventEndsAt      *time.Time `json:"event_ends_at,omitempty"`
	EventImageURL    *string    `json:"event_image_url,omitempty"`
	EventCreatedAt   string     `json:"event_created_at"`
}

func (r *EventRequest) ToModel() *model.EventModel {
	return &model.EventModel{
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		EventLocation:    r.EventLocation,
		EventStartsAt:    r.EventStartsAt,
		EventEndsAt:      r.EventEndsAt,
	}
}

func ToEventResponse(m *model.EventModel) *EventResponse {
	return &EventResponse{
		EventID:          m.EventID,
		EventTitle:       m.EventTitle,
		EventSlug:        m.EventSlug,
		EventDescription: m.EventDescription,
		EventLocation:    m.EventLocation,
		EventStartsAt:    m.EventStartsAt,
		EventEndsAt:      m.EventEndsAt,
		EventImageURL:    m.EventImageURL,
		EventCreatedAt:   m.EventCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToEventResponseList(models []model.EventModel) []EventResponse {
	result := make([]EventResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToEventResponse(&models[i]))
	}
	return result
}
