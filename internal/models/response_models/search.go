package response_models

type SearchResultResponse struct {
	ID         string         `json:"id"`
	StartDate  string         `json:"startDate"`
	EndDate    string         `json:"endDate"`
	TravelType string         `json:"travelType"`
	Interests  []string       `json:"interests"`
	Results    DestinationSet `json:"results"`
	ImageURL   string         `json:"imageUrl,omitempty"`
	CreatedAt  int64          `json:"createdAt"`
	UpdatedAt  int64          `json:"updatedAt"`
}
