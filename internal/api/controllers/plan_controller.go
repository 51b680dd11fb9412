package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripgen/internal/models/request_models"
	"tripgen/internal/services"
	"tripgen/pkg/utils"
)

// defaultAdjustCity is used when the caller does not say which city the plan
// covers.
// TODO: derive the city from the stored demand's scene instead.
const defaultAdjustCity = "Beijing"

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// ReceiveDemand stores a travel demand without generating a plan.
func (p *PlanController) ReceiveDemand(c *gin.Context) {
	var req request_models.DemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	demand, err := p.planService.ReceiveDemand(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, demand, "Demand received successfully")
}

// GeneratePlan stores the demand, generates an itinerary and stores it.
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.DemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	plan, err := p.planService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan generated successfully")
}

// AdjustPlan regenerates a stored plan under a weather or crowd signal and
// stores the result as a new plan.
func (p *PlanController) AdjustPlan(c *gin.Context) {
	var req request_models.AdjustPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if req.City == "" {
		req.City = defaultAdjustCity
	}

	adjusted, err := p.planService.AdjustPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, adjusted, "Travel plan adjusted successfully")
}
