package request_models

// DemandRequest carries the five fields of a travel demand. Budget and Demand
// are pointers so that zero values (budget 0, empty demand text) still pass
// the required check.
type DemandRequest struct {
	Scene    string   `json:"scene" binding:"required"`
	Days     int      `json:"days" binding:"required,gt=0"`
	Budget   *float64 `json:"budget" binding:"required,gte=0"`
	Interest string   `json:"interest" binding:"required"`
	Demand   *string  `json:"demand" binding:"required"`
}

type AdjustPlanRequest struct {
	PlanID     uint   `json:"plan_id" binding:"required"`
	AdjustType string `json:"adjust_type" binding:"required,oneof=weather crowd"`
	City       string `json:"city"`
}
