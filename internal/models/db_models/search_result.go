package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// SearchResult is one destination search submission and its recommendations.
// Immutable once written; plans may point back at it via search_id but no
// cascade runs in either direction.
type SearchResult struct {
	BaseModel
	StartDate  string         `gorm:"column:start_date;size:10;not null"`
	EndDate    string         `gorm:"column:end_date;size:10;not null"`
	TravelType string         `gorm:"column:travel_type;not null"`
	Interests  pq.StringArray `gorm:"type:text[]"`
	Results    datatypes.JSON `gorm:"type:jsonb"`
	ImageURL   *string        `gorm:"column:image_url"`
	UserID     *string        `gorm:"column:user_id"`
}
