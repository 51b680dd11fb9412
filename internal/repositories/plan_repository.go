package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripgen/internal/infra"
	"tripgen/internal/models/db_models"
)

// PlanWithDemand is the denormalized read model of a plan joined with the
// demand that produced it.
type PlanWithDemand struct {
	PlanID      uint
	DemandID    uint
	PlanContent string
	Scene       string
	Days        int
	Budget      float64
	Interest    string
	Demand      string
}

type IPlanRepository interface {
	InsertPlan(ctx context.Context, demandID uint, planContent string) (uint, error)
	GetPlanWithDemand(ctx context.Context, planID uint) (*PlanWithDemand, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

// InsertPlan appends a plan row for the given demand. The content is opaque
// serialized text here; callers decide what it holds.
func (r *PlanRepository) InsertPlan(ctx context.Context, demandID uint, planContent string) (uint, error) {
	row := db_models.TravelPlan{
		DemandID:    demandID,
		PlanContent: planContent,
	}

	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return 0, tx.Error
	}

	err := tx.Create(&row).Error
	if err := infra.ReleaseTransaction(tx, err); err != nil {
		return 0, err
	}

	return row.ID, nil
}

// GetPlanWithDemand returns nil without an error when no plan matches.
func (r *PlanRepository) GetPlanWithDemand(ctx context.Context, planID uint) (*PlanWithDemand, error) {
	var row PlanWithDemand
	err := r.db.WithContext(ctx).
		Table("travel_plan").
		Select("travel_plan.id AS plan_id, travel_plan.demand_id, travel_plan.plan_content, "+
			"user_demand.scene, user_demand.days, user_demand.budget, user_demand.interest, user_demand.demand").
		Joins("JOIN user_demand ON user_demand.id = travel_plan.demand_id").
		Where("travel_plan.id = ?", planID).
		Take(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}
