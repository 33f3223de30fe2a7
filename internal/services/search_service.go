package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/uuid"

	"roamly/internal/models/db_models"
	"roamly/internal/models/response_models"
	"roamly/internal/repositories"
	"roamly/pkg/utils"
)

type SearchRequest struct {
	StartDate  string
	EndDate    string
	TravelType string
	Interests  string
	UserID     string
}

type SearchServiceInterface interface {
	SearchDestinations(ctx context.Context, req SearchRequest) (*response_models.SearchResultResponse, error)
	GetSearchResult(ctx context.Context, searchID string) (*response_models.SearchResultResponse, error)
}

type SearchService struct {
	recommendations RecommendationServiceInterface
	searchRepo      repositories.ISearchRepository
}

func NewSearchService(recommendations RecommendationServiceInterface, searchRepo repositories.ISearchRepository) SearchServiceInterface {
	return &SearchService{
		recommendations: recommendations,
		searchRepo:      searchRepo,
	}
}

// SearchDestinations validates the submission, generates recommendations and
// persists them as an immutable SearchResult. Missing fields fail before any
// model call; a failed insert fails loudly so the caller knows nothing was
// stored.
func (s *SearchService) SearchDestinations(ctx context.Context, req SearchRequest) (*response_models.SearchResultResponse, error) {
	if strings.TrimSpace(req.StartDate) == "" || strings.TrimSpace(req.EndDate) == "" ||
		strings.TrimSpace(req.TravelType) == "" || strings.TrimSpace(req.Interests) == "" {
		return nil, utils.ErrInvalidInput
	}
	if _, err := utils.ParseDate(req.StartDate); err != nil {
		return nil, utils.ErrInvalidInput
	}
	if _, err := utils.ParseDate(req.EndDate); err != nil {
		return nil, utils.ErrInvalidInput
	}

	set, err := s.recommendations.GetDestinationRecommendations(ctx, DestinationQuery{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TravelType: req.TravelType,
		Interests:  req.Interests,
	})
	if err != nil {
		return nil, err
	}

	resultsJSON, err := json.Marshal(set)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	record := &db_models.SearchResult{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TravelType: req.TravelType,
		Interests:  SplitInterests(req.Interests),
		Results:    resultsJSON,
	}
	record.ID = uuid.New()
	if len(set.Destinations) > 0 {
		firstImage := set.Destinations[0].ImageURL
		record.ImageURL = &firstImage
	}
	if req.UserID != "" {
		record.UserID = &req.UserID
	}

	if err := s.searchRepo.InsertSearchResult(ctx, record); err != nil {
		log.Printf("Failed to save search result: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return searchResultToResponse(record, set), nil
}

func (s *SearchService) GetSearchResult(ctx context.Context, searchID string) (*response_models.SearchResultResponse, error) {
	record, err := s.searchRepo.GetSearchResultById(ctx, searchID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrSearchNotFound
	}

	var set response_models.DestinationSet
	if err := json.Unmarshal(record.Results, &set); err != nil {
		log.Printf("Stored search results are unreadable for %s: %v", searchID, err)
		return nil, utils.ErrDatabaseError
	}

	return searchResultToResponse(record, &set), nil
}

func searchResultToResponse(record *db_models.SearchResult, set *response_models.DestinationSet) *response_models.SearchResultResponse {
	resp := &response_models.SearchResultResponse{
		ID:         record.ID.String(),
		StartDate:  record.StartDate,
		EndDate:    record.EndDate,
		TravelType: record.TravelType,
		Interests:  record.Interests,
		Results:    *set,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
	if record.ImageURL != nil {
		resp.ImageURL = *record.ImageURL
	}
	return resp
}

// SplitInterests splits the comma-separated free-text interests field,
// trimming each entry and dropping empties. Order is preserved.
func SplitInterests(interests string) []string {
	parts := strings.Split(interests, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
