package request_models

type CreatePlanRequest struct {
	Destination string `json:"destination"`
	Country     string `json:"country"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TravelType  string `json:"travel_type"`
	Interests   string `json:"interests"` // comma-separated free text
	ImageURL    string `json:"image_url"`
	SearchID    string `json:"search_id"`
}

type PlanFeedbackRequest struct {
	Feedback string `json:"feedback"`
}
