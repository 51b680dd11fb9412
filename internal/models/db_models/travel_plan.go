package db_models

import (
	"time"
)

// TravelPlan stores one generated or adjusted itinerary. PlanContent is the
// serialized itinerary document (or its raw-text degraded form); adjustments
// insert a new row against the same demand rather than touching old rows.
type TravelPlan struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	DemandID    uint      `gorm:"index;not null"`
	PlanContent string    `gorm:"type:text;not null"`
	CreateTime  time.Time `gorm:"autoCreateTime"`
}

func (TravelPlan) TableName() string {
	return "travel_plan"
}
