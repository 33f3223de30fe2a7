package services

import (
	"fmt"
	"strings"
)

// Prompt construction. Every field name the validator checks is stated as a
// literal requirement here: the extractor cannot repair a missing field, so
// the model has to be told about all of them up front.

func BuildDestinationPrompt(startDate, endDate, travelType, interests string) string {
	var prompt strings.Builder

	prompt.WriteString("Recommend 4-6 travel destinations matching these trip conditions.\n\n")
	prompt.WriteString("Trip conditions:\n")
	prompt.WriteString(fmt.Sprintf("- Travel dates: %s to %s\n", startDate, endDate))
	prompt.WriteString(fmt.Sprintf("- Travel type: %s\n", travelType))
	prompt.WriteString(fmt.Sprintf("- Interests: %s\n\n", interests))

	prompt.WriteString("CRITICAL REQUIREMENTS:\n")
	prompt.WriteString("1. Return ONLY a valid JSON object, no extra text\n")
	prompt.WriteString("2. Do NOT wrap the JSON in markdown code fences\n")
	prompt.WriteString("3. Write all field values in English\n")
	prompt.WriteString("4. Every destination must include every field listed below, none may be empty\n")
	prompt.WriteString("5. summary: at most 60 characters; description: 2-3 sentences, at most 200 characters; whyRecommended: at most 150 characters, no repetition\n")
	prompt.WriteString("6. rating: a number between 1 and 5\n")
	prompt.WriteString("7. tags: 3-4 short words\n")
	prompt.WriteString("8. estimatedBudget: per person, with currency\n")
	prompt.WriteString("9. Cover a range of regions and budgets\n\n")

	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(`{
  "destinations": [
    {
      "id": "1",
      "city": "City name",
      "country": "Country name",
      "summary": "One-line summary",
      "description": "Short description",
      "rating": 4.5,
      "tags": ["tag1", "tag2", "tag3"],
      "whyRecommended": "Why this fits the trip conditions",
      "bestTimeToVisit": "Best months to visit",
      "estimatedBudget": "1,200 USD"
    }
  ]
}`)

	return prompt.String()
}

func BuildItineraryPrompt(destination, country, startDate, endDate string, totalDays int, travelType, interests string) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Create a detailed %d-day travel itinerary for %s, %s.\n\n", totalDays, destination, country))
	prompt.WriteString("Trip conditions:\n")
	prompt.WriteString(fmt.Sprintf("- Destination: %s, %s\n", destination, country))
	prompt.WriteString(fmt.Sprintf("- Travel dates: %s to %s (%d days)\n", startDate, endDate, totalDays))
	prompt.WriteString(fmt.Sprintf("- Travel type: %s\n", travelType))
	prompt.WriteString(fmt.Sprintf("- Interests: %s\n\n", interests))

	prompt.WriteString("Plan with these in mind:\n")
	prompt.WriteString(fmt.Sprintf("- Activities and places suited to a %s trip\n", travelType))
	prompt.WriteString("- Realistic time allocation and travel routes between places\n")
	prompt.WriteString("- Meal and rest breaks, local transport and transfer times\n")
	prompt.WriteString("- Estimated costs and practical tips where useful\n\n")

	prompt.WriteString("CRITICAL REQUIREMENTS:\n")
	prompt.WriteString("1. Return ONLY a valid JSON object, no extra text\n")
	prompt.WriteString("2. Do NOT wrap the JSON in markdown code fences\n")
	prompt.WriteString("3. Write all field values in English\n")
	prompt.WriteString(fmt.Sprintf("4. totalDays must be exactly %d and days must contain exactly %d entries\n", totalDays, totalDays))
	prompt.WriteString(fmt.Sprintf("5. day numbers run 1..%d with no gaps\n", totalDays))
	prompt.WriteString("6. Required fields: destination, country, totalDays, travelType, overview, days; each day needs day, date, title, activities; each activity needs time, title, description, location (estimatedCost and tips are optional)\n\n")

	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(fmt.Sprintf(`{
  "destination": "%s",
  "country": "%s",
  "totalDays": %d,
  "travelType": "%s",
  "overview": "Trip overview",
  "days": [
    {
      "day": 1,
      "date": "%s",
      "title": "Day title",
      "activities": [
        {
          "time": "09:00",
          "title": "Activity title",
          "description": "What to do",
          "location": "Where",
          "estimatedCost": "20 USD",
          "tips": "Practical tip"
        }
      ]
    }
  ]
}`, destination, country, totalDays, travelType, startDate))

	return prompt.String()
}

func BuildFeedbackPrompt(currentItineraryJSON []byte, feedback string) string {
	var prompt strings.Builder

	prompt.WriteString("Here is the current travel itinerary:\n")
	prompt.Write(currentItineraryJSON)
	prompt.WriteString("\n\nUser feedback:\n")
	prompt.WriteString(feedback)
	prompt.WriteString("\n\nRevise the itinerary to apply the feedback while preserving its structure.\n\n")

	prompt.WriteString("CRITICAL REQUIREMENTS:\n")
	prompt.WriteString("1. Return ONLY a valid JSON object, no extra text\n")
	prompt.WriteString("2. Do NOT wrap the JSON in markdown code fences\n")
	prompt.WriteString("3. Keep the same JSON shape and field names: destination, country, totalDays, travelType, overview, days (day, date, title, activities with time, title, description, location, optional estimatedCost and tips)\n")
	prompt.WriteString("4. Keep totalDays and the number of days unchanged\n")

	return prompt.String()
}
