package response_models

type TravelPlanResponse struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Preferences []string  `json:"preferences"`
	Itinerary   Itinerary `json:"itinerary"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	SearchID    string    `json:"searchId,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	CreatedAt   int64     `json:"createdAt"`
	UpdatedAt   int64     `json:"updatedAt"`
}

// CreatePlanResponse reports the outcome of find-or-create: Reused is true
// when an equivalent plan already existed and no generation ran.
type CreatePlanResponse struct {
	PlanID string `json:"planId"`
	Reused bool   `json:"reused"`
}

type RevisePlanResponse struct {
	PlanID string `json:"planId"`
	Forked bool   `json:"forked"`
}
