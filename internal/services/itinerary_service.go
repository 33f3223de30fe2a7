package services

import (
	"context"
	"encoding/json"
	"log"

	"roamly/internal/models/response_models"
	"roamly/pkg/utils"
)

type ItineraryRequest struct {
	Destination string
	Country     string
	StartDate   string
	EndDate     string
	TravelType  string
	Interests   string
}

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req ItineraryRequest) (*response_models.Itinerary, error)
	UpdateItineraryWithFeedback(ctx context.Context, current *response_models.Itinerary, feedback string) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	aiClient utils.TextGeneratorInterface
	opts     utils.GenerationOptions
}

func NewItineraryService(aiClient utils.TextGeneratorInterface) ItineraryServiceInterface {
	return &ItineraryService{
		aiClient: aiClient,
		opts:     utils.GenerationOptions{MaxOutputTokens: 5000},
	}
}

// GenerateItinerary builds a day-by-day schedule for one destination. The day
// count is computed here from the date range, inclusive of both endpoints, and
// the model's echo of it is asserted on the way out. Any failure is fatal to
// the request; there is no fallback itinerary.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req ItineraryRequest) (*response_models.Itinerary, error) {
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	totalDays := utils.TotalDays(start, end)
	if totalDays < 1 {
		return nil, utils.ErrInvalidInput
	}

	prompt := BuildItineraryPrompt(req.Destination, req.Country, req.StartDate, req.EndDate, totalDays, req.TravelType, req.Interests)
	return s.generate(ctx, prompt, totalDays)
}

// UpdateItineraryWithFeedback sends the serialized current itinerary plus the
// free-text feedback to the model and runs the identical extraction and
// validation pipeline. The result is a brand-new Itinerary value; whether it
// is persisted as an update or a forked plan is the plan service's decision.
func (s *ItineraryService) UpdateItineraryWithFeedback(ctx context.Context, current *response_models.Itinerary, feedback string) (*response_models.Itinerary, error) {
	if current == nil {
		return nil, utils.ErrInvalidInput
	}

	serialized, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	prompt := BuildFeedbackPrompt(serialized, feedback)
	return s.generate(ctx, prompt, current.TotalDays)
}

func (s *ItineraryService) generate(ctx context.Context, prompt string, expectedDays int) (*response_models.Itinerary, error) {
	raw, err := s.aiClient.GenerateText(ctx, prompt, s.opts)
	if err != nil {
		log.Printf("Itinerary generation failed: %v", err)
		return nil, utils.ErrGenerationFailed
	}

	block := utils.ExtractJSONBlock(raw)

	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(block), &itinerary); err != nil {
		return nil, utils.NewExtractionError("itinerary response is not valid JSON", err)
	}

	if err := ValidateItinerary(&itinerary, expectedDays); err != nil {
		return nil, err
	}
	return &itinerary, nil
}
