package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roamly/internal/models/db_models"
)

type ISearchRepository interface {
	InsertSearchResult(ctx context.Context, result *db_models.SearchResult) error
	GetSearchResultById(ctx context.Context, searchID string) (*db_models.SearchResult, error)
}

type SearchRepository struct {
	db *gorm.DB
}

func NewSearchRepository(db *gorm.DB) ISearchRepository {
	return &SearchRepository{db: db}
}

func (s *SearchRepository) InsertSearchResult(ctx context.Context, result *db_models.SearchResult) error {
	return s.db.WithContext(ctx).Create(result).Error
}

func (s *SearchRepository) GetSearchResultById(ctx context.Context, searchID string) (*db_models.SearchResult, error) {
	var result db_models.SearchResult
	err := s.db.WithContext(ctx).First(&result, "id = ?", searchID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
