package queries

import (
	"github.com/andrescamacho/prun-cogm/internal/application/cost/services"
	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
	"github.com/andrescamacho/prun-cogm/internal/domain/market"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// Dependencies are the collaborators the cost queries are built from
type Dependencies struct {
	Catalog         production.CatalogRepository
	Planets         production.PlanetRepository
	Workforce       production.WorkforceRepository
	Prices          market.PriceRepository
	DaysSinceRepair int
}

// RegisterHandlers wires every cost query handler into the mediator
func RegisterHandlers(m mediator.Mediator, deps Dependencies) error {
	resolver := services.NewRecipeResolver(deps.Catalog)
	efficiency := services.NewEfficiencyService(deps.Catalog)
	calculator := services.NewCostCalculator(deps.Catalog, deps.Workforce, deps.DaysSinceRepair)
	projector := services.NewCOGMProjector(resolver, efficiency, calculator, deps.Planets)

	if err := mediator.RegisterHandler[*FindRecipeQuery](m, NewFindRecipeHandler(resolver, deps.Planets)); err != nil {
		return err
	}
	if err := mediator.RegisterHandler[*CalculateRecipeCostQuery](m,
		NewCalculateRecipeCostHandler(resolver, efficiency, calculator, deps.Planets, deps.Prices)); err != nil {
		return err
	}
	if err := mediator.RegisterHandler[*CalculateCOGMQuery](m,
		NewCalculateCOGMHandler(resolver, efficiency, projector, deps.Planets, deps.Prices)); err != nil {
		return err
	}
	if err := mediator.RegisterHandler[*CalculateEmpireCOGMQuery](m,
		NewCalculateEmpireCOGMHandler(projector, deps.Prices)); err != nil {
		return err
	}
	return mediator.RegisterHandler[*ExpertProgressQuery](m, NewExpertProgressHandler())
}
