package suggestion

// Suggestion is one canned research recommendation. The suggestions page
// is intentionally static mock data.
type Suggestion struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Summary      string  `json:"summary"`
	ResearchArea string  `json:"research_area"`
	Score        float64 `json:"score"`
}
