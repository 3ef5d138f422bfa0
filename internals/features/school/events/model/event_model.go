package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	EventSchoolID    uuid.UUID `gorm:"column:event_school_id;type:uuid;not null;index:idx_events_school_id" json:"event_school_id"`
	EventTitle       string    `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventSlug        string    `gorm:"column:event_slug;type:varchar(100);not null"  json:"event_slug"`
	EventDescription string    `gorm:"column:event_description;type:text"            json:"event_description"`
	EventLocation    string    `gorm:"column:event_location;type:varchar(255)"       json:"event_location"`

	EventStartsAt *time.Time `gorm:"column:event_starts_at" json:"event_starts_at,omitempty"`
	EventEndsAt   *time.Time `gorm:"column:event_ends_at"   json:"event_ends_at,omitempty"`
	EventImageURL *string    `gorm:"column:event_image_url;type:text"        json:"event_image_url,omitempty"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index"          json:"event_deleted_at,omitempty"`

	// NOTE: unik slug per sekolah dibuat lewat migration:
	//   CREATE UNIQUE INDEX ux_events_slug_per_school ON events (event_school_id, LOWER(event_slug));
}

func (EventModel) TableName() string {
	return "events"
}

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}

/* ======== kontrak scope.Tenantable ======== */

func (EventModel) PrimaryColumn() string { return "event_id" }
func (EventModel) TenantColumn() string  { return "event_school_id" }

func (m *EventModel) GetSchoolID() uuid.UUID      { return m.EventSchoolID }
func (m *EventModel) SetSchoolID(id uuid.UUID)    { m.EventSchoolID = id }
