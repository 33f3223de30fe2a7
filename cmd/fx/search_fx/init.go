package search_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"roamly/internal/repositories"
	"roamly/internal/services"
)

var Module = fx.Provide(provideSearchRepo, provideSearchService)

func provideSearchRepo(db *gorm.DB) repositories.ISearchRepository {
	return repositories.NewSearchRepository(db)
}

func provideSearchService(recommendations services.RecommendationServiceInterface, searchRepo repositories.ISearchRepository) services.SearchServiceInterface {
	return services.NewSearchService(recommendations, searchRepo)
}
