package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripgen/internal/infra"
	"tripgen/internal/models/db_models"
)

type IDemandRepository interface {
	InsertDemand(ctx context.Context, scene string, days int, budget float64, interest, demand string) (uint, error)
	GetDemandById(ctx context.Context, demandID uint) (*db_models.UserDemand, error)
}

type DemandRepository struct {
	db *gorm.DB
}

func NewDemandRepository(db *gorm.DB) IDemandRepository {
	return &DemandRepository{db: db}
}

func (r *DemandRepository) InsertDemand(ctx context.Context, scene string, days int, budget float64, interest, demand string) (uint, error) {
	row := db_models.UserDemand{
		Scene:    scene,
		Days:     days,
		Budget:   budget,
		Interest: interest,
		Demand:   demand,
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

func (r *DemandRepository) GetDemandById(ctx context.Context, demandID uint) (*db_models.UserDemand, error) {
	var row db_models.UserDemand
	err := r.db.WithContext(ctx).First(&row, "id = ?", demandID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}
