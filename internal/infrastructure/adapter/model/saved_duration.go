package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedDuration is the database model for named durations.
// Unit holds the unit name, e.g. "day".
type SavedDuration struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;size:100;uniqueIndex:idx_saved_durations_name"`
	Quantity  int64     `gorm:"not null"`
	Unit      string    `gorm:"not null;size:16"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for SavedDuration
func (SavedDuration) TableName() string {
	return "saved_durations"
}
