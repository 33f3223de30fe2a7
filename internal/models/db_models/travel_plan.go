package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// TravelPlan is one generated itinerary bound to a destination and date range.
// Preferences[0] is always the travel type and Preferences[1:] the interests in
// the trim-state supplied at creation; that encoding is the sole matching key
// for deduplication, there is no separate normalized column.
type TravelPlan struct {
	BaseModel
	Destination string         `gorm:"index;not null"` // "city, country"
	StartDate   string         `gorm:"column:start_date;size:10;not null"`
	EndDate     string         `gorm:"column:end_date;size:10;not null"`
	Preferences pq.StringArray `gorm:"type:text[]"`
	Itinerary   datatypes.JSON `gorm:"type:jsonb"`
	ImageURL    *string        `gorm:"column:image_url"`
	SearchID    *uuid.UUID     `gorm:"column:search_id;type:uuid;index"`
	UserID      *string        `gorm:"column:user_id"`
}
