package services

import (
	"context"
	"fmt"

	"github.com/andrescamacho/prun-cogm/internal/application/logging"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// EfficiencyService attaches the expert and COGC efficiency of a recipe's
// building to the recipe.
type EfficiencyService struct {
	catalog production.CatalogRepository
}

// NewEfficiencyService creates a new efficiency service
func NewEfficiencyService(catalog production.CatalogRepository) *EfficiencyService {
	return &EfficiencyService{catalog: catalog}
}

// Apply resolves the efficiency for the recipe's building and returns the
// efficient recipe. Expert counts above the limit are clamped with a warning.
func (s *EfficiencyService) Apply(
	ctx context.Context,
	recipe *production.Recipe,
	experts production.Experts,
	program string,
) (*production.EfficientRecipe, error) {
	building, err := s.catalog.FindBuilding(ctx, recipe.BuildingSymbol())
	if err != nil {
		return nil, fmt.Errorf("failed to find building %s: %w", recipe.BuildingSymbol(), err)
	}
	if building == nil {
		return nil, &production.BuildingNotFoundError{Symbol: recipe.BuildingSymbol()}
	}

	efficiency, err := production.ResolveEfficiency(experts, building.Expertise, program)
	if err != nil {
		return nil, err
	}

	if efficiency.Clamped() {
		logging.LoggerFromContext(ctx).Log(logging.LevelWarning, "expert count exceeds the per-category limit, clamping", map[string]interface{}{
			"expertise": building.Expertise.String(),
			"requested": efficiency.RequestedExperts,
			"applied":   efficiency.AppliedExperts,
		})
	}

	return production.NewEfficientRecipe(recipe, efficiency.Total()), nil
}
