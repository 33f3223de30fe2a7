package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamly/internal/models/request_models"
	"roamly/internal/services"
	"roamly/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// CreatePlan godoc
// @Summary Create a travel plan
// @Description Generate and persist an itinerary for a destination and date range. An existing plan with the same trip and preferences is reused instead of regenerating.
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.CreatePlanRequest true "Plan criteria"
// @Success 200 {object} response_models.CreatePlanResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /plans [post]
func (p *PlanController) CreatePlan(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := p.planService.CreatePlan(c.Request.Context(), services.CreatePlanInput{
		Destination: req.Destination,
		Country:     req.Country,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TravelType:  req.TravelType,
		Interests:   req.Interests,
		ImageURL:    req.ImageURL,
		SearchID:    req.SearchID,
		UserID:      c.GetString("user_id"),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Travel plan ready")
}

// GetPlan godoc
// @Summary Get a travel plan by ID
// @Tags Plan
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} response_models.TravelPlanResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{planId} [get]
func (p *PlanController) GetPlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	plan, err := p.planService.GetPlan(c.Request.Context(), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan fetched successfully")
}

// RecentPlans godoc
// @Summary List recently updated travel plans
// @Tags Plan
// @Produce json
// @Param limit query int false "Maximum plans to return" default(5)
// @Success 200 {array} response_models.TravelPlanResponse
// @Router /plans/recent [get]
func (p *PlanController) RecentPlans(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "5")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}

	plans, err := p.planService.RecentPlans(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Recent plans fetched successfully")
}

// RevisePlan godoc
// @Summary Revise a plan with feedback
// @Description Apply free-text feedback to a plan's itinerary. Depending on configuration the revision is stored as a forked plan or updates the existing record.
// @Tags Plan
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Param request body request_models.PlanFeedbackRequest true "Feedback"
// @Success 200 {object} response_models.RevisePlanResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /plans/{planId}/feedback [post]
func (p *PlanController) RevisePlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	var req request_models.PlanFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Feedback == "" {
		utils.RespondError(c, http.StatusBadRequest, "Feedback is required")
		return
	}

	result, err := p.planService.RevisePlanWithFeedback(c.Request.Context(), planID, req.Feedback)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Travel plan revised successfully")
}
