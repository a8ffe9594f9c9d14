package domain

import (
	"time"

	"github.com/google/uuid"
)

// MoodEntry is a self-reported check-in. Entries are written by the
// mood capture surface; the pipeline only reads them inside a day window.
type MoodEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_mood_entries_user_created" json:"user_id"`
	Mood      int       `gorm:"type:smallint;not null" json:"mood"`
	Energy    int       `gorm:"type:smallint;not null" json:"energy"`
	Stress    int       `gorm:"type:smallint;not null" json:"stress"`
	Anxiety   int       `gorm:"type:smallint;not null" json:"anxiety"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_mood_entries_user_created,sort:desc" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}
