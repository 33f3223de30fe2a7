package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"

	"roamly/internal/models/db_models"
	"roamly/internal/models/response_models"
	"roamly/internal/repositories"
	"roamly/pkg/utils"
)

type CreatePlanInput struct {
	Destination string
	Country     string
	StartDate   string
	EndDate     string
	TravelType  string
	Interests   string
	ImageURL    string
	SearchID    string
	UserID      string
}

type MatchCriteria struct {
	Destination string
	Country     string
	StartDate   string
	EndDate     string
	TravelType  string
	Interests   string
	SearchID    string
}

type PlanServiceInterface interface {
	CreatePlan(ctx context.Context, input CreatePlanInput) (*response_models.CreatePlanResponse, error)
	FindExistingPlan(ctx context.Context, criteria MatchCriteria) (string, bool)
	GetPlan(ctx context.Context, planID string) (*response_models.TravelPlanResponse, error)
	RecentPlans(ctx context.Context, limit int) ([]response_models.TravelPlanResponse, error)
	RevisePlanWithFeedback(ctx context.Context, planID, feedback string) (*response_models.RevisePlanResponse, error)
}

type PlanService struct {
	itineraries    ItineraryServiceInterface
	planRepo       repositories.IPlanRepository
	forkOnFeedback bool
}

// NewPlanService wires the plan workflow. forkOnFeedback selects whether a
// feedback revision is persisted as a new plan record (history preserved) or
// written back onto the existing one.
func NewPlanService(itineraries ItineraryServiceInterface, planRepo repositories.IPlanRepository, forkOnFeedback bool) PlanServiceInterface {
	return &PlanService{
		itineraries:    itineraries,
		planRepo:       planRepo,
		forkOnFeedback: forkOnFeedback,
	}
}

// CreatePlan is find-or-create: an existing plan for the same trip and
// preferences is returned without any model call; otherwise a new itinerary
// is generated and persisted. The insert fails loudly.
func (p *PlanService) CreatePlan(ctx context.Context, input CreatePlanInput) (*response_models.CreatePlanResponse, error) {
	if strings.TrimSpace(input.Destination) == "" || strings.TrimSpace(input.Country) == "" ||
		strings.TrimSpace(input.StartDate) == "" || strings.TrimSpace(input.EndDate) == "" ||
		strings.TrimSpace(input.TravelType) == "" || strings.TrimSpace(input.Interests) == "" {
		return nil, utils.ErrInvalidInput
	}

	if existingID, found := p.FindExistingPlan(ctx, MatchCriteria{
		Destination: input.Destination,
		Country:     input.Country,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TravelType:  input.TravelType,
		Interests:   input.Interests,
		SearchID:    input.SearchID,
	}); found {
		log.Printf("Reusing existing plan %s instead of regenerating", existingID)
		return &response_models.CreatePlanResponse{PlanID: existingID, Reused: true}, nil
	}

	itinerary, err := p.itineraries.GenerateItinerary(ctx, ItineraryRequest{
		Destination: input.Destination,
		Country:     input.Country,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TravelType:  input.TravelType,
		Interests:   input.Interests,
	})
	if err != nil {
		return nil, err
	}

	itineraryJSON, err := json.Marshal(itinerary)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	plan := &db_models.TravelPlan{
		Destination: compositeDestination(input.Destination, input.Country),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Preferences: append([]string{input.TravelType}, SplitInterests(input.Interests)...),
		Itinerary:   itineraryJSON,
	}
	plan.ID = uuid.New()
	if input.ImageURL != "" {
		plan.ImageURL = &input.ImageURL
	}
	if input.UserID != "" {
		plan.UserID = &input.UserID
	}
	if sid := parseSearchID(input.SearchID); sid != nil {
		plan.SearchID = sid
	}

	if err := p.planRepo.InsertPlan(ctx, plan); err != nil {
		log.Printf("Failed to save travel plan: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreatePlanResponse{PlanID: plan.ID.String()}, nil
}

// FindExistingPlan detects a previously generated plan matching the criteria.
// Destination and dates match exactly in the query; travel type and interests
// are compared trimmed, with interests order-independent. A query failure is
// logged and treated as not-found so a lookup outage never blocks creation.
func (p *PlanService) FindExistingPlan(ctx context.Context, criteria MatchCriteria) (string, bool) {
	candidates, err := p.planRepo.FindPlansByTrip(ctx,
		compositeDestination(criteria.Destination, criteria.Country),
		criteria.StartDate, criteria.EndDate,
		parseSearchID(criteria.SearchID))
	if err != nil {
		log.Printf("Plan lookup failed, treating as not found: %v", err)
		return "", false
	}

	normalizedType := strings.TrimSpace(criteria.TravelType)
	normalizedInterests := normalizeInterests(SplitInterests(criteria.Interests))

	for _, candidate := range candidates {
		if len(candidate.Preferences) == 0 {
			continue
		}
		if strings.TrimSpace(candidate.Preferences[0]) != normalizedType {
			continue
		}
		if stringSlicesEqual(normalizeInterests(candidate.Preferences[1:]), normalizedInterests) {
			return candidate.ID.String(), true
		}
	}
	return "", false
}

func (p *PlanService) GetPlan(ctx context.Context, planID string) (*response_models.TravelPlanResponse, error) {
	plan, err := p.planRepo.GetPlanById(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return planToResponse(plan)
}

// RecentPlans is a best-effort convenience listing; a query failure degrades
// to an empty list instead of an error.
func (p *PlanService) RecentPlans(ctx context.Context, limit int) ([]response_models.TravelPlanResponse, error) {
	if limit < 1 {
		limit = 5
	}

	plans, err := p.planRepo.ListRecentPlans(ctx, limit)
	if err != nil {
		log.Printf("Recent plans query failed, returning empty list: %v", err)
		return []response_models.TravelPlanResponse{}, nil
	}

	out := make([]response_models.TravelPlanResponse, 0, len(plans))
	for i := range plans {
		resp, err := planToResponse(&plans[i])
		if err != nil {
			log.Printf("Skipping unreadable plan %s: %v", plans[i].ID, err)
			continue
		}
		out = append(out, *resp)
	}
	return out, nil
}

// RevisePlanWithFeedback regenerates the plan's itinerary with the user's
// feedback applied. Depending on configuration the revision is persisted as a
// forked plan record or written back onto the existing one; either way the
// itinerary value itself is brand new.
func (p *PlanService) RevisePlanWithFeedback(ctx context.Context, planID, feedback string) (*response_models.RevisePlanResponse, error) {
	if strings.TrimSpace(feedback) == "" {
		return nil, utils.ErrInvalidInput
	}

	plan, err := p.planRepo.GetPlanById(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	var current response_models.Itinerary
	if err := json.Unmarshal(plan.Itinerary, &current); err != nil {
		log.Printf("Stored itinerary is unreadable for %s: %v", planID, err)
		return nil, utils.ErrDatabaseError
	}

	revised, err := p.itineraries.UpdateItineraryWithFeedback(ctx, &current, feedback)
	if err != nil {
		return nil, err
	}

	revisedJSON, err := json.Marshal(revised)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if !p.forkOnFeedback {
		if err := p.planRepo.UpdatePlanItinerary(ctx, planID, revisedJSON); err != nil {
			log.Printf("Failed to update plan %s: %v", planID, err)
			return nil, utils.ErrDatabaseError
		}
		return &response_models.RevisePlanResponse{PlanID: planID}, nil
	}

	fork := &db_models.TravelPlan{
		Destination: plan.Destination,
		StartDate:   plan.StartDate,
		EndDate:     plan.EndDate,
		Preferences: plan.Preferences,
		Itinerary:   revisedJSON,
		ImageURL:    plan.ImageURL,
		SearchID:    plan.SearchID,
		UserID:      plan.UserID,
	}
	fork.ID = uuid.New()

	if err := p.planRepo.InsertPlan(ctx, fork); err != nil {
		log.Printf("Failed to save forked plan: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return &response_models.RevisePlanResponse{PlanID: fork.ID.String(), Forked: true}, nil
}

func planToResponse(plan *db_models.TravelPlan) (*response_models.TravelPlanResponse, error) {
	var itinerary response_models.Itinerary
	if err := json.Unmarshal(plan.Itinerary, &itinerary); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}

	resp := &response_models.TravelPlanResponse{
		ID:          plan.ID.String(),
		Destination: plan.Destination,
		StartDate:   plan.StartDate,
		EndDate:     plan.EndDate,
		Preferences: plan.Preferences,
		Itinerary:   itinerary,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
	if plan.ImageURL != nil {
		resp.ImageURL = *plan.ImageURL
	}
	if plan.SearchID != nil {
		resp.SearchID = plan.SearchID.String()
	}
	if plan.UserID != nil {
		resp.UserID = *plan.UserID
	}
	return resp, nil
}

func compositeDestination(city, country string) string {
	return fmt.Sprintf("%s, %s", city, country)
}

func parseSearchID(searchID string) *uuid.UUID {
	if strings.TrimSpace(searchID) == "" {
		return nil
	}
	id, err := uuid.Parse(searchID)
	if err != nil {
		log.Printf("Ignoring malformed search id %q: %v", searchID, err)
		return nil
	}
	return &id
}

func normalizeInterests(interests []string) []string {
	out := make([]string, len(interests))
	for i, v := range interests {
		out[i] = strings.TrimSpace(v)
	}
	sort.Strings(out)
	return out
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
