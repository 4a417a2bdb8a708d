package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// PlanetRepositoryGORM implements planet persistence using GORM
type PlanetRepositoryGORM struct {
	db *gorm.DB
}

// NewPlanetRepository creates a new GORM-based planet repository
func NewPlanetRepository(db *gorm.DB) *PlanetRepositoryGORM {
	return &PlanetRepositoryGORM{db: db}
}

// FindPlanet retrieves a planet by natural id or name, case-insensitively.
// Returns nil if absent.
func (r *PlanetRepositoryGORM) FindPlanet(ctx context.Context, identifier string) (*production.Planet, error) {
	var model PlanetModel
	err := r.db.WithContext(ctx).
		Preload("Resources", func(db *gorm.DB) *gorm.DB { return db.Order("item_symbol ASC") }).
		Where("UPPER(natural_id) = UPPER(?) OR UPPER(name) = UPPER(?)", identifier, identifier).
		Order("natural_id ASC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find planet: %w", err)
	}

	resources := make([]production.PlanetResource, len(model.Resources))
	for i, res := range model.Resources {
		resources[i] = production.PlanetResource{
			PlanetNaturalID: model.NaturalID,
			ItemSymbol:      res.ItemSymbol,
			ResourceType:    production.ResourceType(res.ResourceType),
			Factor:          res.Factor,
		}
	}

	return &production.Planet{
		NaturalID:   model.NaturalID,
		Name:        model.Name,
		Gravity:     model.Gravity,
		Pressure:    model.Pressure,
		Temperature: model.Temperature,
		Surface:     model.Surface,
		Fertility:   model.Fertility,
		Resources:   resources,
	}, nil
}

// SavePlanet inserts or replaces a planet and its resources
func (r *PlanetRepositoryGORM) SavePlanet(ctx context.Context, planet *production.Planet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("planet_natural_id = ?", planet.NaturalID).Delete(&PlanetResourceModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete planet resources: %w", err)
		}

		model := PlanetModel{
			NaturalID:   planet.NaturalID,
			Name:        planet.Name,
			Gravity:     planet.Gravity,
			Pressure:    planet.Pressure,
			Temperature: planet.Temperature,
			Surface:     planet.Surface,
			Fertility:   planet.Fertility,
		}
		if err := tx.Omit(clause.Associations).Save(&model).Error; err != nil {
			return fmt.Errorf("failed to save planet: %w", err)
		}

		for _, res := range planet.Resources {
			resModel := PlanetResourceModel{
				PlanetNaturalID: planet.NaturalID,
				ItemSymbol:      res.ItemSymbol,
				ResourceType:    string(res.ResourceType),
				Factor:          res.Factor,
			}
			if err := tx.Create(&resModel).Error; err != nil {
				return fmt.Errorf("failed to insert planet resource: %w", err)
			}
		}
		return nil
	})
}
