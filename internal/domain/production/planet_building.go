package production

// Environment construction materials
const (
	MaterialMineralConstructionGranulate = "MCG"
	MaterialAutoFoundation               = "AEF"
	MaterialSealant                      = "SEA"
	MaterialHardenedStructuralElements   = "HSE"
	MaterialMagneticGroundCover          = "MGC"
	MaterialBoltsAndLocks                = "BL"
	MaterialInsulation                   = "INS"
	MaterialThermalShielding             = "TSH"
)

// PlanetBuilding is a building placed on a specific planet. The planet's
// environment adds construction materials on top of the catalog costs.
type PlanetBuilding struct {
	Building *Building
	Planet   *Planet
}

// NewPlanetBuilding binds a building to a planet
func NewPlanetBuilding(building *Building, planet *Planet) *PlanetBuilding {
	return &PlanetBuilding{Building: building, Planet: planet}
}

// ConstructionCosts returns the catalog costs followed by the environment
// materials the planet requires.
func (pb *PlanetBuilding) ConstructionCosts() []BuildingCost {
	costs := make([]BuildingCost, len(pb.Building.Costs), len(pb.Building.Costs)+4)
	copy(costs, pb.Building.Costs)
	add := func(item string, amount float64) {
		costs = append(costs, BuildingCost{ItemSymbol: item, Amount: amount})
	}

	if pb.Planet == nil {
		return costs
	}

	area := float64(pb.Building.AreaCost)
	p := pb.Planet

	if p.Surface {
		add(MaterialMineralConstructionGranulate, area*4)
	} else {
		add(MaterialAutoFoundation, area/3)
	}

	if p.Pressure < 0.25 {
		add(MaterialSealant, area)
	} else if p.Pressure > 2 {
		add(MaterialHardenedStructuralElements, 1)
	}

	if p.Gravity < 0.25 {
		add(MaterialMagneticGroundCover, 1)
	} else if p.Gravity > 2.5 {
		add(MaterialBoltsAndLocks, 1)
	}

	if p.Temperature < -25 {
		add(MaterialInsulation, area*10)
	} else if p.Temperature > 75 {
		add(MaterialThermalShielding, 1)
	}

	return costs
}
