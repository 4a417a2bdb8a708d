package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// WorkforceRepositoryGORM implements workforce need persistence using GORM
type WorkforceRepositoryGORM struct {
	db *gorm.DB
}

// NewWorkforceRepository creates a new GORM-based workforce repository
func NewWorkforceRepository(db *gorm.DB) *WorkforceRepositoryGORM {
	return &WorkforceRepositoryGORM{db: db}
}

// FindNeeds retrieves the consumables of one workforce tier, ordered by item
func (r *WorkforceRepositoryGORM) FindNeeds(ctx context.Context, workforceType production.WorkforceType) ([]production.WorkforceNeed, error) {
	var models []WorkforceNeedModel
	err := r.db.WithContext(ctx).
		Where("workforce_type = ?", string(workforceType)).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find workforce needs: %w", err)
	}

	needs := make([]production.WorkforceNeed, len(models))
	for i, m := range models {
		needs[i] = production.WorkforceNeed{
			WorkforceType:      workforceType,
			ItemSymbol:         m.ItemSymbol,
			AmountPer100PerDay: m.Amount,
		}
	}
	return needs, nil
}

// ReplaceNeeds replaces every consumable of one workforce tier
func (r *WorkforceRepositoryGORM) ReplaceNeeds(
	ctx context.Context,
	workforceType production.WorkforceType,
	needs []production.WorkforceNeed,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workforce_type = ?", string(workforceType)).Delete(&WorkforceNeedModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete workforce needs: %w", err)
		}
		for _, need := range needs {
			model := WorkforceNeedModel{
				WorkforceType: string(workforceType),
				ItemSymbol:    need.ItemSymbol,
				Amount:        need.AmountPer100PerDay,
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to insert workforce need: %w", err)
			}
		}
		return nil
	})
}
