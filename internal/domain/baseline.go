package domain

import (
	"time"

	"github.com/google/uuid"
)

// BaselineProfile holds a user's personal mean/standard-deviation per
// metric family, computed from a trailing window of daily averages.
// Each mean/sd pair is either both set or both nil: they are always
// computed together from the same days, and an sd is never negative.
type BaselineProfile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	SleepMean   *float64  `json:"sleep_mean,omitempty"`
	SleepSD     *float64  `json:"sleep_sd,omitempty"`
	StepsMean   *float64  `json:"steps_mean,omitempty"`
	StepsSD     *float64  `json:"steps_sd,omitempty"`
	UnlocksMean *float64  `json:"unlocks_mean,omitempty"`
	UnlocksSD   *float64  `json:"unlocks_sd,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (BaselineProfile) TableName() string {
	return "baseline_profiles"
}

// BaselineResponse is the response body for baseline endpoints.
// @Description A user's learned per-metric baseline (mean and standard deviation).
type BaselineResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	SleepMean   *float64  `json:"sleep_mean,omitempty"`
	SleepSD     *float64  `json:"sleep_sd,omitempty"`
	StepsMean   *float64  `json:"steps_mean,omitempty"`
	StepsSD     *float64  `json:"steps_sd,omitempty"`
	UnlocksMean *float64  `json:"unlocks_mean,omitempty"`
	UnlocksSD   *float64  `json:"unlocks_sd,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (b *BaselineProfile) ToResponse() BaselineResponse {
	return BaselineResponse{
		UserID:      b.UserID,
		SleepMean:   b.SleepMean,
		SleepSD:     b.SleepSD,
		StepsMean:   b.StepsMean,
		StepsSD:     b.StepsSD,
		UnlocksMean: b.UnlocksMean,
		UnlocksSD:   b.UnlocksSD,
		UpdatedAt:   b.UpdatedAt,
	}
}
