package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"roamly/internal/models/db_models"
	"roamly/internal/models/response_models"
	"roamly/internal/repositories"
	"roamly/pkg/utils"
)

// mockPlanRepo is a test double for repositories.IPlanRepository.
// Set only the method fields your test needs.
type mockPlanRepo struct {
	insert        func(ctx context.Context, plan *db_models.TravelPlan) error
	getByID       func(ctx context.Context, planID string) (*db_models.TravelPlan, error)
	listRecent    func(ctx context.Context, limit int) ([]db_models.TravelPlan, error)
	updateItin    func(ctx context.Context, planID string, itinerary datatypes.JSON) error
	findByTrip    func(ctx context.Context, destination, startDate, endDate string, searchID *uuid.UUID) ([]db_models.TravelPlan, error)
}

func (m *mockPlanRepo) InsertPlan(ctx context.Context, plan *db_models.TravelPlan) error {
	return m.insert(ctx, plan)
}
func (m *mockPlanRepo) GetPlanById(ctx context.Context, planID string) (*db_models.TravelPlan, error) {
	return m.getByID(ctx, planID)
}
func (m *mockPlanRepo) ListRecentPlans(ctx context.Context, limit int) ([]db_models.TravelPlan, error) {
	return m.listRecent(ctx, limit)
}
func (m *mockPlanRepo) UpdatePlanItinerary(ctx context.Context, planID string, itinerary datatypes.JSON) error {
	return m.updateItin(ctx, planID, itinerary)
}
func (m *mockPlanRepo) FindPlansByTrip(ctx context.Context, destination, startDate, endDate string, searchID *uuid.UUID) ([]db_models.TravelPlan, error) {
	return m.findByTrip(ctx, destination, startDate, endDate, searchID)
}

var _ repositories.IPlanRepository = (*mockPlanRepo)(nil)

// mockItineraryService is a test double for ItineraryServiceInterface.
type mockItineraryService struct {
	generate func(ctx context.Context, req ItineraryRequest) (*response_models.Itinerary, error)
	update   func(ctx context.Context, current *response_models.Itinerary, feedback string) (*response_models.Itinerary, error)
}

func (m *mockItineraryService) GenerateItinerary(ctx context.Context, req ItineraryRequest) (*response_models.Itinerary, error) {
	return m.generate(ctx, req)
}
func (m *mockItineraryService) UpdateItineraryWithFeedback(ctx context.Context, current *response_models.Itinerary, feedback string) (*response_models.Itinerary, error) {
	return m.update(ctx, current, feedback)
}

var _ ItineraryServiceInterface = (*mockItineraryService)(nil)

func storedPlan(prefs []string) db_models.TravelPlan {
	plan := db_models.TravelPlan{
		Destination: "Tokyo, Japan",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-07",
		Preferences: prefs,
	}
	plan.ID = uuid.New()
	return plan
}

func TestFindExistingPlanMatchesRegardlessOfInterestOrderAndWhitespace(t *testing.T) {
	stored := storedPlan([]string{"family", "food", "beach"})
	repo := &mockPlanRepo{
		findByTrip: func(ctx context.Context, destination, startDate, endDate string, searchID *uuid.UUID) ([]db_models.TravelPlan, error) {
			assert.Equal(t, "Tokyo, Japan", destination)
			assert.Nil(t, searchID)
			return []db_models.TravelPlan{stored}, nil
		},
	}
	svc := NewPlanService(nil, repo, true)

	id, found := svc.FindExistingPlan(context.Background(), MatchCriteria{
		Destination: "Tokyo",
		Country:     "Japan",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-07",
		TravelType:  " family ",
		Interests:   "beach, food",
	})

	require.True(t, found)
	assert.Equal(t, stored.ID.String(), id)
}

func TestFindExistingPlanRejectsSubsetAndDifferentType(t *testing.T) {
	tests := []struct {
		name  string
		prefs []string
	}{
		{"missing interest", []string{"family", "food"}},
		{"extra interest", []string{"family", "food", "beach", "museums"}},
		{"different travel type", []string{"solo", "food", "beach"}},
		{"empty preferences", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored := storedPlan(tt.prefs)
			repo := &mockPlanRepo{
				findByTrip: func(ctx context.Context, destination, startDate, endDate string, searchID *uuid.UUID) ([]db_models.TravelPlan, error) {
					return []db_models.TravelPlan{stored}, nil
				},
			}
			svc := NewPlanService(nil, repo, true)

			_, found := svc.FindExistingPlan(context.Background(), MatchCriteria{
				Destination: "Tokyo",
				Country:     "Japan",
				StartDate:   "2024-06-01",
				EndDate:     "2024-06-07",
				TravelType:  "family",
				Interests:   "beach, food",
			})
			assert.False(t, found)
		})
	}
}

func TestFindExistingPlanReturnsFirstMatchInQueryOrder(t *testing.T) {
	first := storedPlan([]string{"family", "beach", "food"})
	second := storedPlan([]string{"family", "food", "beach"})
	repo := &mockPlanRepo{
		findByTrip: func(ctx context.Context, destination, startDate, endDate string, searchID *uuid.UUID) ([]db_models.TravelPlan, error) {
			return []db_models.TravelPlan{first, second}, nil
		},
	}
	svc := NewPlanService(nil, repo, true)

	id, found := svc.FindExistingPlan(context.Background(), MatchCriteria{
		Destination: "Tokyo",
		Country:     "Japan",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-07",
		TravelType:  "family",
		Interests:   "beach, food",
	})

	require.True(t, found)
	assert.Equal(t, first.ID.String(), id)
}

func TestFindExistingPlanSoftFailsOnQueryError(t *testing.T) {
	repo := &mockPlanRepo{
		findByTrip: func(ctx context.Context, destination, startDate, endDate string, searchID *uuid.UUID) ([]db_models.TravelPlan, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewPlanService(nil, repo, true)

	id, found := svc.FindExistingPlan(context.Background(), MatchCriteria{
		Destination: "Tokyo",
		Country:     "Japan",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-07",
		TravelType:  "family",
		Interests:   "beach, food",
	})

	assert.False(t, found)
	assert.Empty(t, id)
}

func TestFindExistingPlanPassesSearchIDFilter(t *testing.T) {
	searchID := uuid.New()
	repo := &mockPlanRepo{
		findByTrip: func(ctx context.Context, destination, startDate, endDate string, gotSearchID *uuid.UUID) ([]db_models.TravelPlan, error) {
			require.NotNil(t, gotSearchID)
			assert.Equal(t, searchID, *gotSearchID)
			return nil, nil
		},
	}
	svc := NewPlanService(nil, repo, true)

	_, found := svc.FindExistingPlan(context.Background(), MatchCriteria{
		Destination: "Tokyo",
		Country:     "Japan",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-07",
		TravelType:  "family",
		Interests:   "beach",
		SearchID:    searchID.String(),
	})
	assert.False(t, found)
}

func TestCreatePlanReusesExistingPlanWithoutGenerating(t *testing.T) {
	stored := storedPlan([]string{"family", "food", "beach"})
	repo := &mockPlanRepo{
		findByTrip: func(ctx context.Context, destination, startDate, endDate string, searchID *uuid.UUID) ([]db_models.TravelPlan, error) {
			return []db_models.TravelPlan{stored}, nil
		},
	}
	itineraries := &mockItineraryService{
		generate: func(ctx context.Context, req ItineraryRequest) (*response_models.Itinerary, error) {
			t.Fatal("generation must not run when an existing plan matches")
			return nil, nil
		},
	}
	svc := NewPlanService(itineraries, repo, true)

	resp, err := svc.CreatePlan(context.Background(), CreatePlanInput{
		Destination: "Tokyo",
		Country:     "Japan",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-07",
		TravelType:  "family",
		Interests:   "beach, food",
	})

	require.NoError(t, err)
	assert.True(t, resp.Reused)
	assert.Equal(t, stored.ID.String(), resp.PlanID)
}

func TestCreatePlanGeneratesAndPersists(t *testing.T) {
	var inserted *db_models.TravelPlan
	repo := &mockPlanRepo{
		findByTrip: func(ctx context.Context, destination, startDate, endDate string, searchID *uuid.UUID) ([]db_models.TravelPlan, error) {
			return nil, nil
		},
		insert: func(ctx context.Context, plan *db_models.TravelPlan) error {
			inserted = plan
			return nil
		},
	}
	itinerary := validItinerary(7)
	itineraries := &mockItineraryService{
		generate: func(ctx context.Context, req ItineraryRequest) (*response_models.Itinerary, error) {
			assert.Equal(t, "Tokyo", req.Destination)
			return &itinerary, nil
		},
	}
	svc := NewPlanService(itineraries, repo, true)

	resp, err := svc.CreatePlan(context.Background(), CreatePlanInput{
		Destination: "Tokyo",
		Country:     "Japan",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-07",
		TravelType:  "family",
		Interests:   "beach, food",
	})

	require.NoError(t, err)
	assert.False(t, resp.Reused)
	require.NotNil(t, inserted)
	assert.Equal(t, "Tokyo, Japan", inserted.Destination)
	assert.Equal(t, []string{"family", "beach", "food"}, []string(inserted.Preferences))

	var persisted response_models.Itinerary
	require.NoError(t, json.Unmarshal(inserted.Itinerary, &persisted))
	assert.Equal(t, 7, persisted.TotalDays)
}

func TestCreatePlanRejectsMissingFields(t *testing.T) {
	svc := NewPlanService(nil, &mockPlanRepo{}, true)

	_, err := svc.CreatePlan(context.Background(), CreatePlanInput{
		Destination: "Tokyo",
		Country:     "Japan",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCreatePlanInsertFailureIsLoud(t *testing.T) {
	repo := &mockPlanRepo{
		findByTrip: func(ctx context.Context, destination, startDate, endDate string, searchID *uuid.UUID) ([]db_models.TravelPlan, error) {
			return nil, nil
		},
		insert: func(ctx context.Context, plan *db_models.TravelPlan) error {
			return errors.New("insert failed")
		},
	}
	itinerary := validItinerary(2)
	itineraries := &mockItineraryService{
		generate: func(ctx context.Context, req ItineraryRequest) (*response_models.Itinerary, error) {
			return &itinerary, nil
		},
	}
	svc := NewPlanService(itineraries, repo, true)

	_, err := svc.CreatePlan(context.Background(), CreatePlanInput{
		Destination: "Tokyo",
		Country:     "Japan",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-02",
		TravelType:  "family",
		Interests:   "beach",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestRevisePlanForksNewRecord(t *testing.T) {
	original := storedPlan([]string{"family", "beach"})
	itinerary := validItinerary(3)
	itineraryJSON, err := json.Marshal(itinerary)
	require.NoError(t, err)
	original.Itinerary = itineraryJSON

	var inserted *db_models.TravelPlan
	repo := &mockPlanRepo{
		getByID: func(ctx context.Context, planID string) (*db_models.TravelPlan, error) {
			return &original, nil
		},
		insert: func(ctx context.Context, plan *db_models.TravelPlan) error {
			inserted = plan
			return nil
		},
	}
	revised := validItinerary(3)
	revised.Overview = "Now with more beach time."
	itineraries := &mockItineraryService{
		update: func(ctx context.Context, current *response_models.Itinerary, feedback string) (*response_models.Itinerary, error) {
			assert.Equal(t, 3, current.TotalDays)
			assert.Equal(t, "more beach", feedback)
			return &revised, nil
		},
	}
	svc := NewPlanService(itineraries, repo, true)

	resp, err := svc.RevisePlanWithFeedback(context.Background(), original.ID.String(), "more beach")
	require.NoError(t, err)

	assert.True(t, resp.Forked)
	require.NotNil(t, inserted)
	assert.NotEqual(t, original.ID, inserted.ID)
	assert.Equal(t, original.Destination, inserted.Destination)
	assert.Equal(t, original.StartDate, inserted.StartDate)
	assert.Equal(t, resp.PlanID, inserted.ID.String())
}

func TestRevisePlanUpdatesInPlaceWhenConfigured(t *testing.T) {
	original := storedPlan([]string{"family", "beach"})
	itinerary := validItinerary(2)
	itineraryJSON, err := json.Marshal(itinerary)
	require.NoError(t, err)
	original.Itinerary = itineraryJSON

	updated := false
	repo := &mockPlanRepo{
		getByID: func(ctx context.Context, planID string) (*db_models.TravelPlan, error) {
			return &original, nil
		},
		updateItin: func(ctx context.Context, planID string, raw datatypes.JSON) error {
			updated = true
			assert.Equal(t, original.ID.String(), planID)
			return nil
		},
	}
	revised := validItinerary(2)
	itineraries := &mockItineraryService{
		update: func(ctx context.Context, current *response_models.Itinerary, feedback string) (*response_models.Itinerary, error) {
			return &revised, nil
		},
	}
	svc := NewPlanService(itineraries, repo, false)

	resp, err := svc.RevisePlanWithFeedback(context.Background(), original.ID.String(), "shorter days")
	require.NoError(t, err)

	assert.False(t, resp.Forked)
	assert.Equal(t, original.ID.String(), resp.PlanID)
	assert.True(t, updated)
}

func TestRevisePlanNotFound(t *testing.T) {
	repo := &mockPlanRepo{
		getByID: func(ctx context.Context, planID string) (*db_models.TravelPlan, error) {
			return nil, nil
		},
	}
	svc := NewPlanService(nil, repo, true)

	_, err := svc.RevisePlanWithFeedback(context.Background(), uuid.New().String(), "feedback")
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestRecentPlansSoftFailsToEmptyList(t *testing.T) {
	repo := &mockPlanRepo{
		listRecent: func(ctx context.Context, limit int) ([]db_models.TravelPlan, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewPlanService(nil, repo, true)

	plans, err := svc.RecentPlans(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, plans)
}
