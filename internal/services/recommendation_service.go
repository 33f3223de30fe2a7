package services

import (
	"context"
	"encoding/json"
	"log"

	"roamly/internal/models/response_models"
	"roamly/pkg/utils"
)

type DestinationQuery struct {
	StartDate  string
	EndDate    string
	TravelType string
	Interests  string
}

type RecommendationServiceInterface interface {
	GetDestinationRecommendations(ctx context.Context, query DestinationQuery) (*response_models.DestinationSet, error)
}

type RecommendationService struct {
	aiClient  utils.TextGeneratorInterface
	images    ImageServiceInterface
	primary   utils.GenerationOptions
	secondary utils.GenerationOptions
}

func NewRecommendationService(aiClient utils.TextGeneratorInterface, images ImageServiceInterface) RecommendationServiceInterface {
	return &RecommendationService{
		aiClient: aiClient,
		images:   images,
		primary: utils.GenerationOptions{
			Temperature:     0.7,
			MaxOutputTokens: 2000,
		},
		secondary: utils.GenerationOptions{
			Model:           "gemini-1.5-pro-latest",
			Temperature:     0.5,
			MaxOutputTokens: 1500,
		},
	}
}

// GetDestinationRecommendations runs prompt -> model -> extract -> normalize ->
// attach images -> validate. Failure policy: one retry with the secondary
// model configuration, then the static fallback set. This method never
// returns an error; a degraded but valid destination set always comes back.
func (r *RecommendationService) GetDestinationRecommendations(ctx context.Context, query DestinationQuery) (*response_models.DestinationSet, error) {
	prompt := BuildDestinationPrompt(query.StartDate, query.EndDate, query.TravelType, query.Interests)

	set, err := r.generateOnce(ctx, prompt, r.primary)
	if err == nil {
		return set, nil
	}
	log.Printf("Destination generation failed, retrying with secondary model: %v", err)

	set, err = r.generateOnce(ctx, prompt, r.secondary)
	if err == nil {
		return set, nil
	}
	log.Printf("Destination generation retry failed, returning fallback set: %v", err)

	return r.fallbackSet(), nil
}

func (r *RecommendationService) generateOnce(ctx context.Context, prompt string, opts utils.GenerationOptions) (*response_models.DestinationSet, error) {
	raw, err := r.aiClient.GenerateText(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	block := utils.ExtractJSONBlock(raw)
	arr, err := utils.NormalizeDestinationPayload([]byte(block))
	if err != nil {
		return nil, err
	}

	var destinations []response_models.DestinationCandidate
	if err := json.Unmarshal(arr, &destinations); err != nil {
		return nil, utils.NewExtractionError("destinations array has unexpected shape", err)
	}

	set := &response_models.DestinationSet{Destinations: destinations}
	r.attachImages(set)

	if err := ValidateDestinationSet(set); err != nil {
		return nil, err
	}
	return set, nil
}

func (r *RecommendationService) attachImages(set *response_models.DestinationSet) {
	for i := range set.Destinations {
		d := &set.Destinations[i]
		d.ImageURL = r.images.CityImage(d.City, d.Country).URL
	}
}

// fallbackSet is the hardcoded, always-valid destination set served when both
// generation attempts fail.
func (r *RecommendationService) fallbackSet() *response_models.DestinationSet {
	set := &response_models.DestinationSet{
		Destinations: []response_models.DestinationCandidate{
			{
				ID:              "1",
				City:            "Jeju Island",
				Country:         "South Korea",
				Summary:         "Volcanic island escape with beaches and trails",
				Description:     "Jeju is a volcanic island with a landscape and culture of its own. Hallasan hikes, olle coastal trails and beaches leave plenty to do for every pace.",
				Rating:          4.7,
				Tags:            []string{"nature", "relaxation", "culture", "food"},
				WhyRecommended:  "An easy domestic-style getaway mixing nature and culture, with activities the whole family can join.",
				BestTimeToVisit: "April-June, September-October",
				EstimatedBudget: "500 USD",
			},
			{
				ID:              "2",
				City:            "Tokyo",
				Country:         "Japan",
				Summary:         "A capital where tradition and neon coexist",
				Description:     "Tokyo blends cutting-edge city life with old neighborhoods and shrines. Shopping, food and entertainment options run deep in every district.",
				Rating:          4.6,
				Tags:            []string{"city", "culture", "food", "shopping"},
				WhyRecommended:  "A short-haul trip that packs a lot into a few days, with family-friendly parks and endless food streets.",
				BestTimeToVisit: "March-May, October-November",
				EstimatedBudget: "1,200 USD",
			},
		},
	}
	r.attachImages(set)
	return set
}
