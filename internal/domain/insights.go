package domain

// InsightsContext is the serializable input handed to the LLM when
// generating a wellbeing narrative for a user.
type InsightsContext struct {
	Baseline  *BaselineResponse `json:"baseline,omitempty"`
	Summaries []SummaryResponse `json:"summaries"`
	// WindowDays is how many trailing days the summaries cover.
	WindowDays int `json:"window_days"`
}

// LLMInsightsOutput is the structured narrative returned by the LLM.
// @Description LLM-generated non-medical narrative of recent behavioral patterns.
type LLMInsightsOutput struct {
	// Short prose summary of the recent period
	Summary string `json:"summary"`
	// Bullet observations about patterns and deviations
	Observations []string `json:"observations"`
	// Concrete, non-medical behavioral suggestions
	Guidance []string `json:"guidance"`
}

// InsightsResponse is the response body for the insights endpoint.
// @Description Narrative insights over the user's recent daily summaries.
type InsightsResponse struct {
	Insights LLMInsightsOutput `json:"insights"`
	Context  InsightsContext   `json:"context"`
}
