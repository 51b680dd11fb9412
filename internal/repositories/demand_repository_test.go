package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tripgen/internal/infra"
	"tripgen/internal/models/db_models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, infra.Migrate(db))
	return db
}

func TestDemandRepository_InsertAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDemandRepository(db)
	ctx := context.Background()

	t.Run("round trip returns inserted values", func(t *testing.T) {
		id, err := repo.InsertDemand(ctx, "solo student trip", 3, 1500, "food", "student discount")
		require.NoError(t, err)
		assert.NotZero(t, id)

		found, err := repo.GetDemandById(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "solo student trip", found.Scene)
		assert.Equal(t, 3, found.Days)
		assert.Equal(t, 1500.0, found.Budget)
		assert.Equal(t, "food", found.Interest)
		assert.Equal(t, "student discount", found.Demand)
		assert.False(t, found.CreateTime.IsZero())
	})

	t.Run("empty demand text is allowed", func(t *testing.T) {
		id, err := repo.InsertDemand(ctx, "family weekend", 2, 800, "nature", "")
		require.NoError(t, err)

		found, err := repo.GetDemandById(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "", found.Demand)
	})

	t.Run("missing demand returns nil without error", func(t *testing.T) {
		found, err := repo.GetDemandById(ctx, 99999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("ids are assigned in insert order", func(t *testing.T) {
		first, err := repo.InsertDemand(ctx, "city break", 1, 300, "art", "none")
		require.NoError(t, err)
		second, err := repo.InsertDemand(ctx, "city break", 1, 300, "art", "none")
		require.NoError(t, err)
		assert.Greater(t, second, first)
	})
}

func TestDemandRepository_CascadeDelete(t *testing.T) {
	db := setupTestDB(t)
	demandRepo := NewDemandRepository(db)
	planRepo := NewPlanRepository(db)
	ctx := context.Background()

	demandID, err := demandRepo.InsertDemand(ctx, "solo student trip", 3, 1500, "food", "student discount")
	require.NoError(t, err)

	_, err = planRepo.InsertPlan(ctx, demandID, `{"raw_content":"plan one"}`)
	require.NoError(t, err)
	_, err = planRepo.InsertPlan(ctx, demandID, `{"raw_content":"plan two"}`)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&db_models.UserDemand{}, demandID).Error)

	var remaining int64
	require.NoError(t, db.Model(&db_models.TravelPlan{}).Where("demand_id = ?", demandID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}
