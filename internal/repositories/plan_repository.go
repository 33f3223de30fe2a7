package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"roamly/internal/models/db_models"
)

type IPlanRepository interface {
	InsertPlan(ctx context.Context, plan *db_models.TravelPlan) error
	GetPlanById(ctx context.Context, planID string) (*db_models.TravelPlan, error)
	ListRecentPlans(ctx context.Context, limit int) ([]db_models.TravelPlan, error)
	UpdatePlanItinerary(ctx context.Context, planID string, itinerary datatypes.JSON) error

	// FindPlansByTrip returns the candidate rows for deduplication: exact
	// match on destination and both dates, and on search_id when given or
	// IS NULL when absent. Only id and preferences are selected.
	FindPlansByTrip(ctx context.Context, destination, startDate, endDate string, searchID *uuid.UUID) ([]db_models.TravelPlan, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p *PlanRepository) InsertPlan(ctx context.Context, plan *db_models.TravelPlan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p *PlanRepository) GetPlanById(ctx context.Context, planID string) (*db_models.TravelPlan, error) {
	var plan db_models.TravelPlan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", planID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (p *PlanRepository) ListRecentPlans(ctx context.Context, limit int) ([]db_models.TravelPlan, error) {
	var plans []db_models.TravelPlan
	err := p.db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(limit).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (p *PlanRepository) UpdatePlanItinerary(ctx context.Context, planID string, itinerary datatypes.JSON) error {
	return p.db.WithContext(ctx).
		Model(&db_models.TravelPlan{}).
		Where("id = ?", planID).
		Update("itinerary", itinerary).Error
}

func (p *PlanRepository) FindPlansByTrip(ctx context.Context, destination, startDate, endDate string, searchID *uuid.UUID) ([]db_models.TravelPlan, error) {
	query := p.db.WithContext(ctx).
		Model(&db_models.TravelPlan{}).
		Select("id", "preferences").
		Where("destination = ? AND start_date = ? AND end_date = ?", destination, startDate, endDate)

	if searchID != nil {
		query = query.Where("search_id = ?", *searchID)
	} else {
		query = query.Where("search_id IS NULL")
	}

	var plans []db_models.TravelPlan
	if err := query.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
