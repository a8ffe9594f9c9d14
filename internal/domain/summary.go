package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel classifies a day's deviation from the user's baseline.
// @Description Risk classification: green (within baseline), amber (elevated), red (high).
type RiskLevel string

const (
	RiskGreen RiskLevel = "green"
	RiskAmber RiskLevel = "amber"
	RiskRed   RiskLevel = "red"
)

// DailySummary is the one-row-per-(user, date) rollup of a calendar day.
// The aggregator replaces the whole row on every run, so re-running a
// date is safe and produces identical output for identical input.
type DailySummary struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_daily_summaries_user_date" json:"user_id"`
	Date          time.Time  `gorm:"type:date;not null;uniqueIndex:idx_daily_summaries_user_date" json:"date"`
	SleepHours    *float64   `json:"sleep_hours,omitempty"`
	Steps         *float64   `json:"steps,omitempty"`
	ScreenUnlocks *float64   `json:"screen_unlocks,omitempty"`
	TypingScore   *float64   `json:"typing_score,omitempty"`
	MoodAvg       *float64   `json:"mood_avg,omitempty"`
	EnergyAvg     *float64   `json:"energy_avg,omitempty"`
	StressAvg     *float64   `json:"stress_avg,omitempty"`
	AnxietyAvg    *float64   `json:"anxiety_avg,omitempty"`
	RiskLevel     *RiskLevel `gorm:"type:varchar(10)" json:"risk_level,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DailySummary) TableName() string {
	return "daily_summaries"
}

// SummaryResponse is the response body for daily summary endpoints.
// @Description One day's aggregated metrics and risk classification.
type SummaryResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	Date          string     `json:"date" example:"2024-01-15"`
	SleepHours    *float64   `json:"sleep_hours,omitempty"`
	Steps         *float64   `json:"steps,omitempty"`
	ScreenUnlocks *float64   `json:"screen_unlocks,omitempty"`
	TypingScore   *float64   `json:"typing_score,omitempty"`
	MoodAvg       *float64   `json:"mood_avg,omitempty"`
	EnergyAvg     *float64   `json:"energy_avg,omitempty"`
	StressAvg     *float64   `json:"stress_avg,omitempty"`
	AnxietyAvg    *float64   `json:"anxiety_avg,omitempty"`
	RiskLevel     *RiskLevel `json:"risk_level,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (s *DailySummary) ToResponse() SummaryResponse {
	return SummaryResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		Date:          s.Date.UTC().Format("2006-01-02"),
		SleepHours:    s.SleepHours,
		Steps:         s.Steps,
		ScreenUnlocks: s.ScreenUnlocks,
		TypingScore:   s.TypingScore,
		MoodAvg:       s.MoodAvg,
		EnergyAvg:     s.EnergyAvg,
		StressAvg:     s.StressAvg,
		AnxietyAvg:    s.AnxietyAvg,
		RiskLevel:     s.RiskLevel,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// SummaryListResponse is the response body for listing daily summaries.
// @Description Paginated list of daily summaries, newest first.
type SummaryListResponse struct {
	Data       []SummaryResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SummaryFilter contains filter parameters for listing daily summaries
type SummaryFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
