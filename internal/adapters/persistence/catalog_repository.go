package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// CatalogRepositoryGORM implements catalog persistence using GORM
type CatalogRepositoryGORM struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new GORM-based catalog repository
func NewCatalogRepository(db *gorm.DB) *CatalogRepositoryGORM {
	return &CatalogRepositoryGORM{db: db}
}

func orderedByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

// FindRecipe retrieves a recipe with its lines, returning nil if absent
func (r *CatalogRepositoryGORM) FindRecipe(ctx context.Context, symbol string) (*production.Recipe, error) {
	var model RecipeModel
	err := r.db.WithContext(ctx).
		Preload("Inputs", orderedByPosition).
		Preload("Outputs", orderedByPosition).
		Where("symbol = ?", symbol).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}

	return recipeFromModel(&model)
}

// FindRecipesForItem retrieves every recipe producing itemSymbol, ordered by symbol
func (r *CatalogRepositoryGORM) FindRecipesForItem(ctx context.Context, itemSymbol string) ([]*production.Recipe, error) {
	producing := r.db.Model(&RecipeOutputModel{}).
		Select("recipe_symbol").
		Where("item_symbol = ?", itemSymbol)

	var models []RecipeModel
	err := r.db.WithContext(ctx).
		Preload("Inputs", orderedByPosition).
		Preload("Outputs", orderedByPosition).
		Where("symbol IN (?)", producing).
		Order("symbol ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recipes for item: %w", err)
	}

	recipes := make([]*production.Recipe, 0, len(models))
	for i := range models {
		recipe, err := recipeFromModel(&models[i])
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// FindBuilding retrieves a building with its construction costs, returning nil if absent
func (r *CatalogRepositoryGORM) FindBuilding(ctx context.Context, symbol string) (*production.Building, error) {
	var model BuildingModel
	err := r.db.WithContext(ctx).
		Preload("Costs", orderedByPosition).
		Where("symbol = ?", symbol).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find building: %w", err)
	}

	return buildingFromModel(&model), nil
}

// FindItem retrieves an item, returning nil if absent
func (r *CatalogRepositoryGORM) FindItem(ctx context.Context, symbol string) (*production.Item, error) {
	var model ItemModel
	err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	return &production.Item{
		Symbol:   model.Symbol,
		Name:     model.Name,
		Category: model.Category,
		Weight:   model.Weight,
		Volume:   model.Volume,
	}, nil
}

// SaveItem inserts or updates an item
func (r *CatalogRepositoryGORM) SaveItem(ctx context.Context, item *production.Item) error {
	model := ItemModel{
		Symbol:   item.Symbol,
		Name:     item.Name,
		Category: item.Category,
		Weight:   item.Weight,
		Volume:   item.Volume,
	}
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	return nil
}

// SaveRecipe inserts or replaces a recipe and its lines
func (r *CatalogRepositoryGORM) SaveRecipe(ctx context.Context, recipe *production.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_symbol = ?", recipe.Symbol()).Delete(&RecipeInputModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete recipe inputs: %w", err)
		}
		if err := tx.Where("recipe_symbol = ?", recipe.Symbol()).Delete(&RecipeOutputModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete recipe outputs: %w", err)
		}

		model := RecipeModel{
			Symbol:         recipe.Symbol(),
			BuildingSymbol: recipe.BuildingSymbol(),
			TimeMs:         recipe.DurationMilliseconds(),
		}
		if err := tx.Omit(clause.Associations).Save(&model).Error; err != nil {
			return fmt.Errorf("failed to save recipe: %w", err)
		}

		for i, line := range recipe.Inputs() {
			input := RecipeInputModel{RecipeSymbol: recipe.Symbol(), ItemSymbol: line.ItemSymbol, Quantity: line.Quantity, Position: i}
			if err := tx.Create(&input).Error; err != nil {
				return fmt.Errorf("failed to insert recipe input: %w", err)
			}
		}
		for i, line := range recipe.Outputs() {
			output := RecipeOutputModel{RecipeSymbol: recipe.Symbol(), ItemSymbol: line.ItemSymbol, Quantity: line.Quantity, Position: i}
			if err := tx.Create(&output).Error; err != nil {
				return fmt.Errorf("failed to insert recipe output: %w", err)
			}
		}
		return nil
	})
}

// SaveBuilding inserts or replaces a building and its construction costs
func (r *CatalogRepositoryGORM) SaveBuilding(ctx context.Context, building *production.Building) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("building_symbol = ?", building.Symbol).Delete(&BuildingCostModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete building costs: %w", err)
		}

		model := BuildingModel{
			Symbol:      building.Symbol,
			Name:        building.Name,
			Expertise:   string(building.Expertise),
			Pioneers:    building.Pioneers,
			Settlers:    building.Settlers,
			Technicians: building.Technicians,
			Engineers:   building.Engineers,
			Scientists:  building.Scientists,
			AreaCost:    building.AreaCost,
		}
		if err := tx.Omit(clause.Associations).Save(&model).Error; err != nil {
			return fmt.Errorf("failed to save building: %w", err)
		}

		for i, c := range building.Costs {
			costModel := BuildingCostModel{BuildingSymbol: building.Symbol, ItemSymbol: c.ItemSymbol, Amount: c.Amount, Position: i}
			if err := tx.Create(&costModel).Error; err != nil {
				return fmt.Errorf("failed to insert building cost: %w", err)
			}
		}
		return nil
	})
}

func recipeFromModel(model *RecipeModel) (*production.Recipe, error) {
	inputs := make([]production.RecipeLine, len(model.Inputs))
	for i, in := range model.Inputs {
		inputs[i] = production.RecipeLine{ItemSymbol: in.ItemSymbol, Quantity: in.Quantity}
	}
	outputs := make([]production.RecipeLine, len(model.Outputs))
	for i, out := range model.Outputs {
		outputs[i] = production.RecipeLine{ItemSymbol: out.ItemSymbol, Quantity: out.Quantity}
	}

	recipe, err := production.NewRecipe(
		model.Symbol,
		model.BuildingSymbol,
		time.Duration(model.TimeMs)*time.Millisecond,
		inputs,
		outputs,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid recipe %s in database: %w", model.Symbol, err)
	}
	return recipe, nil
}

func buildingFromModel(model *BuildingModel) *production.Building {
	costs := make([]production.BuildingCost, len(model.Costs))
	for i, c := range model.Costs {
		costs[i] = production.BuildingCost{ItemSymbol: c.ItemSymbol, Amount: c.Amount}
	}
	return &production.Building{
		Symbol:      model.Symbol,
		Name:        model.Name,
		Expertise:   production.Expertise(model.Expertise),
		Pioneers:    model.Pioneers,
		Settlers:    model.Settlers,
		Technicians: model.Technicians,
		Engineers:   model.Engineers,
		Scientists:  model.Scientists,
		AreaCost:    model.AreaCost,
		Costs:       costs,
	}
}
