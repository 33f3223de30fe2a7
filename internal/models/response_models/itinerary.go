package response_models

type Activity struct {
	Time          string `json:"time"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	EstimatedCost string `json:"estimatedCost,omitempty"`
	Tips          string `json:"tips,omitempty"`
}

type Day struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// Itinerary is a validated day-by-day schedule for one destination and date
// range. A feedback revision always produces a new Itinerary value.
type Itinerary struct {
	Destination string `json:"destination"`
	Country     string `json:"country"`
	TotalDays   int    `json:"totalDays"`
	TravelType  string `json:"travelType"`
	Overview    string `json:"overview"`
	Days        []Day  `json:"days"`
}
