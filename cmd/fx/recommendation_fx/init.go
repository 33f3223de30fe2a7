package recommendation_fx

import (
	"go.uber.org/fx"

	"roamly/internal/services"
	"roamly/pkg/utils"
)

var Module = fx.Provide(provideRecommendationService)

func provideRecommendationService(aiClient utils.TextGeneratorInterface, images services.ImageServiceInterface) services.RecommendationServiceInterface {
	return services.NewRecommendationService(aiClient, images)
}
