package request_models

type SearchDestinationsRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	TravelType string `json:"travel_type"`
	Interests  string `json:"interests"` // comma-separated free text
}
