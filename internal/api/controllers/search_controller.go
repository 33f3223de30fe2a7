package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamly/internal/models/request_models"
	"roamly/internal/services"
	"roamly/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// SearchDestinations godoc
// @Summary Search travel destinations
// @Description Generate AI destination recommendations for a date range, travel type and interests, and persist the result
// @Tags Search
// @Accept json
// @Produce json
// @Param request body request_models.SearchDestinationsRequest true "Search criteria"
// @Success 200 {object} response_models.SearchResultResponse
// @Failure 400 {object} utils.APIResponse
// @Router /search [post]
func (s *SearchController) SearchDestinations(c *gin.Context) {
	var req request_models.SearchDestinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.searchService.SearchDestinations(c.Request.Context(), services.SearchRequest{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TravelType: req.TravelType,
		Interests:  req.Interests,
		UserID:     c.GetString("user_id"),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Destinations generated successfully")
}

// GetSearchResult godoc
// @Summary Get a stored search result
// @Tags Search
// @Produce json
// @Param searchId path string true "Search result ID"
// @Success 200 {object} response_models.SearchResultResponse
// @Failure 404 {object} utils.APIResponse
// @Router /search/{searchId} [get]
func (s *SearchController) GetSearchResult(c *gin.Context) {
	searchID := c.Param("searchId")
	if searchID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Search ID is required")
		return
	}

	result, err := s.searchService.GetSearchResult(c.Request.Context(), searchID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Search result fetched successfully")
}
