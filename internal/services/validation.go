package services

import (
	"fmt"
	"strings"

	"roamly/internal/models/response_models"
	"roamly/pkg/utils"
)

// Structural validation at the trust boundary. Parsed model output passes
// through here before it reaches persistence or the API; failures carry the
// field path and the violated constraint and are never downgraded.

const (
	maxSummaryLen        = 60
	maxDescriptionLen    = 200
	maxWhyRecommendedLen = 150
)

func ValidateDestinationSet(set *response_models.DestinationSet) error {
	if set == nil || len(set.Destinations) == 0 {
		return utils.NewValidationError("destinations", "must contain at least one destination")
	}

	for i, d := range set.Destinations {
		path := fmt.Sprintf("destinations[%d]", i)

		if err := requireString(path+".id", d.ID); err != nil {
			return err
		}
		if err := requireString(path+".city", d.City); err != nil {
			return err
		}
		if err := requireString(path+".country", d.Country); err != nil {
			return err
		}
		if err := requireBoundedString(path+".summary", d.Summary, maxSummaryLen); err != nil {
			return err
		}
		if err := requireBoundedString(path+".description", d.Description, maxDescriptionLen); err != nil {
			return err
		}
		if d.Rating < 1.0 || d.Rating > 5.0 {
			return utils.NewValidationError(path+".rating", "must be between 1 and 5")
		}
		if len(d.Tags) == 0 {
			return utils.NewValidationError(path+".tags", "must contain at least one tag")
		}
		for j, tag := range d.Tags {
			if strings.TrimSpace(tag) == "" {
				return utils.NewValidationError(fmt.Sprintf("%s.tags[%d]", path, j), "must not be empty")
			}
		}
		if err := requireBoundedString(path+".whyRecommended", d.WhyRecommended, maxWhyRecommendedLen); err != nil {
			return err
		}
		if err := requireString(path+".bestTimeToVisit", d.BestTimeToVisit); err != nil {
			return err
		}
		if err := requireString(path+".estimatedBudget", d.EstimatedBudget); err != nil {
			return err
		}
		if err := requireString(path+".imageUrl", d.ImageURL); err != nil {
			return err
		}
	}

	return nil
}

// ValidateItinerary checks an itinerary against the day count computed by the
// caller. The model echoes totalDays back; it is asserted here, never
// recomputed from the output.
func ValidateItinerary(it *response_models.Itinerary, expectedDays int) error {
	if it == nil {
		return utils.NewValidationError("itinerary", "must be present")
	}

	if err := requireString("destination", it.Destination); err != nil {
		return err
	}
	if err := requireString("country", it.Country); err != nil {
		return err
	}
	if err := requireString("travelType", it.TravelType); err != nil {
		return err
	}
	if err := requireString("overview", it.Overview); err != nil {
		return err
	}
	if it.TotalDays < 1 {
		return utils.NewValidationError("totalDays", "must be at least 1")
	}
	if it.TotalDays != expectedDays {
		return utils.NewValidationError("totalDays", fmt.Sprintf("must equal %d", expectedDays))
	}
	if len(it.Days) != expectedDays {
		return utils.NewValidationError("days", fmt.Sprintf("must contain exactly %d entries", expectedDays))
	}

	for i, day := range it.Days {
		path := fmt.Sprintf("days[%d]", i)

		if day.Day != i+1 {
			return utils.NewValidationError(path+".day", fmt.Sprintf("must equal %d", i+1))
		}
		if err := requireString(path+".date", day.Date); err != nil {
			return err
		}
		if err := requireString(path+".title", day.Title); err != nil {
			return err
		}
		if len(day.Activities) == 0 {
			return utils.NewValidationError(path+".activities", "must contain at least one activity")
		}

		for j, act := range day.Activities {
			actPath := fmt.Sprintf("%s.activities[%d]", path, j)

			if err := requireString(actPath+".time", act.Time); err != nil {
				return err
			}
			if err := requireString(actPath+".title", act.Title); err != nil {
				return err
			}
			if err := requireString(actPath+".description", act.Description); err != nil {
				return err
			}
			if err := requireString(actPath+".location", act.Location); err != nil {
				return err
			}
		}
	}

	return nil
}

func requireString(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return utils.NewValidationError(field, "must not be empty")
	}
	return nil
}

func requireBoundedString(field, value string, max int) error {
	if err := requireString(field, value); err != nil {
		return err
	}
	if len([]rune(value)) > max {
		return utils.NewValidationError(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}
