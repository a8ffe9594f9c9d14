package domain

import (
	"time"

	"github.com/google/uuid"
)

// MetricType identifies the behavioral signal a sample belongs to.
// @Description Behavioral metric type recorded by the ingestion workers.
type MetricType string

const (
	MetricSleepHours    MetricType = "sleep_hours"
	MetricSleepQuality  MetricType = "sleep_quality"
	MetricSteps         MetricType = "steps"
	MetricActivityLevel MetricType = "activity_level"
	MetricScreenUnlocks MetricType = "screen_unlocks"
	MetricScreenMinutes MetricType = "screen_minutes"
)

// BaselineGroup is the baseline profile column family a metric feeds into.
type BaselineGroup string

const (
	BaselineGroupSleep   BaselineGroup = "sleep"
	BaselineGroupSteps   BaselineGroup = "steps"
	BaselineGroupUnlocks BaselineGroup = "unlocks"
	BaselineGroupNone    BaselineGroup = ""
)

// Group maps a metric type to its baseline profile column family.
func (m MetricType) Group() BaselineGroup {
	switch m {
	case MetricSleepHours, MetricSleepQuality:
		return BaselineGroupSleep
	case MetricSteps, MetricActivityLevel:
		return BaselineGroupSteps
	case MetricScreenUnlocks, MetricScreenMinutes:
		return BaselineGroupUnlocks
	default:
		return BaselineGroupNone
	}
}

// Countlike reports whether the metric is a non-negative count
// (negative readings are rejected at ingestion).
func (m MetricType) Countlike() bool {
	switch m {
	case MetricSteps, MetricScreenUnlocks, MetricScreenMinutes:
		return true
	default:
		return false
	}
}

// Sample is one time-stamped metric reading for a user. Samples are
// keyed by (user_id, metric_type, timestamp); a repeated write with the
// same key overwrites the value rather than creating a second row.
type Sample struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_samples_user_metric_ts" json:"user_id"`
	MetricType  MetricType `gorm:"type:varchar(32);not null;uniqueIndex:idx_samples_user_metric_ts" json:"metric_type"`
	MetricValue float64    `gorm:"not null" json:"metric_value"`
	Timestamp   time.Time  `gorm:"not null;uniqueIndex:idx_samples_user_metric_ts" json:"timestamp"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Sample) TableName() string {
	return "samples"
}
