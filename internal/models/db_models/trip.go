package db_models

import (
	"github.com/lib/pq"
)

// Trip is one saved itinerary. AccountID is the opaque subject from
// the external auth provider; this service never interprets it.
type Trip struct {
	BaseModel
	AccountID   string `gorm:"index;not null"`
	Destination string `gorm:"not null"`
	Country     string
	Emoji       string
	Itinerary   string         `gorm:"type:text"`
	Highlights  pq.StringArray `gorm:"type:text[]"`
}
