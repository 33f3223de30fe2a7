package plan_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamly/internal/repositories"
	"roamly/internal/services"
)

var Module = fx.Provide(providePlanRepo, providePlanService)

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(itineraries services.ItineraryServiceInterface, planRepo repositories.IPlanRepository) services.PlanServiceInterface {
	forkOnFeedback := os.Getenv("PLAN_FORK_ON_FEEDBACK") != "false"
	return services.NewPlanService(itineraries, planRepo, forkOnFeedback)
}
