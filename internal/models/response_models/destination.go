package response_models

// DestinationCandidate is one AI-recommended place with rationale and metadata.
type DestinationCandidate struct {
	ID               string   `json:"id"`
	City             string   `json:"city"`
	Country          string   `json:"country"`
	Summary          string   `json:"summary"`
	Description      string   `json:"description"`
	Rating           float64  `json:"rating"`
	Tags             []string `json:"tags"`
	WhyRecommended   string   `json:"whyRecommended"`
	BestTimeToVisit  string   `json:"bestTimeToVisit"`
	EstimatedBudget  string   `json:"estimatedBudget"`
	ImageURL         string   `json:"imageUrl"`
}

// DestinationSet preserves the model's output order; immutable once persisted.
type DestinationSet struct {
	Destinations []DestinationCandidate `json:"destinations"`
}
