package db_models

import (
	"time"
)

// UserDemand is a structured travel request. Rows are append-only: a demand
// is never updated after insert, and removing one cascades to its plans.
type UserDemand struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	Scene      string    `gorm:"size:255;not null"`
	Days       int       `gorm:"not null"`
	Budget     float64   `gorm:"type:decimal(10,2);not null"`
	Interest   string    `gorm:"size:255;not null"`
	Demand     string    `gorm:"type:text;not null"`
	CreateTime time.Time `gorm:"autoCreateTime"`

	Plans []TravelPlan `gorm:"foreignKey:DemandID;constraint:OnDelete:CASCADE"`
}

func (UserDemand) TableName() string {
	return "user_demand"
}
