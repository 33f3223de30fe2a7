package itinerary_fx

import (
	"go.uber.org/fx"

	"roamly/internal/services"
	"roamly/pkg/utils"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(aiClient utils.TextGeneratorInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(aiClient)
}
