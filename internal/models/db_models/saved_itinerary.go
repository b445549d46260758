package db_models

import "github.com/lib/pq"

// SavedItinerary stores a finished itinerary as opaque JSON, keyed by the
// requesting user and a caller-chosen plan identifier.
type SavedItinerary struct {
	BaseModel
	UserID      string `gorm:"index:idx_saved_user_plan,unique"`
	PlanID      string `gorm:"index:idx_saved_user_plan,unique"`
	Destination string
	Interests   pq.StringArray `gorm:"type:text[]"`
	Payload     []byte         `gorm:"type:jsonb"`
}
