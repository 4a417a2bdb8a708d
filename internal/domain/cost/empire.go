package cost

import "github.com/andrescamacho/prun-cogm/internal/domain/production"

// ProductionStep is one recipe run on a planet of an empire plan. Extraction
// steps name the item so the planet deposit can be found.
type ProductionStep struct {
	BuildingSymbol string
	RecipeSymbol   string
	ItemSymbol     string
}

// PlanetPlan is the ordered production of one planet
type PlanetPlan struct {
	Planet  string
	Program string
	Experts production.Experts
	Steps   []ProductionStep
}

// EmpirePlan is an ordered list of planets. Steps are evaluated in plan
// order, so a computed output cost reaches earlier steps only on the second
// pass.
type EmpirePlan struct {
	Name              string
	Planets           []PlanetPlan
	MaterialBuyPrices map[string]float64
}

// StepCount returns the number of production steps across all planets
func (p *EmpirePlan) StepCount() int {
	n := 0
	for _, planet := range p.Planets {
		n += len(planet.Steps)
	}
	return n
}
