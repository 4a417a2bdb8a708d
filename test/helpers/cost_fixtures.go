package helpers

import (
	"time"

	"github.com/andrescamacho/prun-cogm/internal/domain/market"
	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

// Fixture symbols
const (
	FixtureExchange        = market.ExchangeMoria1
	FixturePlanetID        = "UV-351a"
	FixturePlanetName      = "Katoa"
	FixtureOVERecipe       = "BMP:100xPE-25xPG=>20xOVE"
	FixturePERecipe        = "POL:10xC=>100xPE"
	FixtureExtractorRecipe = "EXT:=>"
	FixtureRigRecipe       = "RIG:=>"
	FixtureCollectorRecipe = "COL:=>"
)

// FixtureMarketPrices are the NC1 ask prices of the regression fixture
var FixtureMarketPrices = map[string]float64{
	"PE":  80,
	"PG":  120,
	"C":   50,
	"RAT": 25,
	"DW":  15,
	"OVE": 30,
	"COF": 35,
	"PWO": 40,
	"MCG": 150,
	"AEF": 1200,
	"BDE": 2300,
	"BBH": 2500,
	"BSE": 1650,
}

// CostFixture bundles in-memory repositories seeded with a small catalog:
// overalls (OVE) made from PE and PG in a basic manufacturing plant, PE made
// from carbon in a polymer plant, and the three extraction templates.
type CostFixture struct {
	Catalog   *MockCatalogRepository
	Planets   *MockPlanetRepository
	Workforce *MockWorkforceRepository
	Prices    *MockPriceRepository
	Planet    *production.Planet
}

// NewCostFixture creates the seeded fixture
func NewCostFixture() *CostFixture {
	catalog := NewMockCatalogRepository()
	for _, recipe := range FixtureRecipes() {
		catalog.AddRecipe(recipe)
	}
	for _, building := range FixtureBuildings() {
		catalog.AddBuilding(building)
	}
	for _, item := range FixtureItems() {
		catalog.AddItem(item)
	}

	workforce := NewMockWorkforceRepository()
	workforce.SetNeeds(production.WorkforcePioneer, PioneerNeeds()...)

	prices := NewMockPriceRepository()
	for item, price := range FixtureMarketPrices {
		prices.SetAskPrice(FixtureExchange, item, price)
	}

	planet := NewFixturePlanet()

	return &CostFixture{
		Catalog:   catalog,
		Planets:   NewMockPlanetRepository(planet),
		Workforce: workforce,
		Prices:    prices,
		Planet:    planet,
	}
}

// FixtureRecipes returns every recipe of the fixture catalog
func FixtureRecipes() []*production.Recipe {
	return []*production.Recipe{
		NewOVERecipe(),
		NewPERecipe(),
		mustRecipe(FixtureExtractorRecipe, production.BuildingExtractor, time.Hour, nil, nil),
		mustRecipe(FixtureRigRecipe, production.BuildingRig, 4*time.Hour, nil, nil),
		mustRecipe(FixtureCollectorRecipe, production.BuildingCollector, 6*time.Hour, nil, nil),
	}
}

// FixtureBuildings returns every building of the fixture catalog
func FixtureBuildings() []*production.Building {
	return []*production.Building{
		NewBMPBuilding(),
		NewPOLBuilding(),
		{Symbol: production.BuildingExtractor, Expertise: production.ExpertiseResourceExtraction},
		{Symbol: production.BuildingRig, Expertise: production.ExpertiseResourceExtraction},
		{Symbol: production.BuildingCollector, Expertise: production.ExpertiseResourceExtraction},
	}
}

// FixtureItems returns the item metadata of the fixture catalog
func FixtureItems() []*production.Item {
	return []*production.Item{
		{Symbol: "OVE", Name: "basicOveralls", Category: "consumables (basic)", Weight: 0.02, Volume: 0.025},
	}
}

// NewOVERecipe returns the overalls recipe: 100 PE and 25 PG into 20 OVE
// over 14.4 hours.
func NewOVERecipe() *production.Recipe {
	return mustRecipe(
		FixtureOVERecipe,
		"BMP",
		51840000*time.Millisecond,
		[]production.RecipeLine{{ItemSymbol: "PE", Quantity: 100}, {ItemSymbol: "PG", Quantity: 25}},
		[]production.RecipeLine{{ItemSymbol: "OVE", Quantity: 20}},
	)
}

// NewPERecipe returns a workforce-free recipe turning 10 C into 100 PE
func NewPERecipe() *production.Recipe {
	return mustRecipe(
		FixturePERecipe,
		"POL",
		6*time.Hour,
		[]production.RecipeLine{{ItemSymbol: "C", Quantity: 10}},
		[]production.RecipeLine{{ItemSymbol: "PE", Quantity: 100}},
	)
}

// NewBMPBuilding returns the basic manufacturing plant
func NewBMPBuilding() *production.Building {
	return &production.Building{
		Symbol:    "BMP",
		Name:      "basicManufacturingPlant",
		Expertise: production.ExpertiseManufacturing,
		Pioneers:  100,
		AreaCost:  12,
		Costs: []production.BuildingCost{
			{ItemSymbol: "BDE", Amount: 2},
			{ItemSymbol: "BBH", Amount: 4},
			{ItemSymbol: "BSE", Amount: 6},
		},
	}
}

// NewPOLBuilding returns a polymer plant with no workforce and no footprint
func NewPOLBuilding() *production.Building {
	return &production.Building{
		Symbol:    "POL",
		Name:      "polymerPlant",
		Expertise: production.ExpertiseChemistry,
	}
}

// NewFixturePlanet returns a rocky planet with a mild environment and one
// deposit of each type.
func NewFixturePlanet() *production.Planet {
	return &production.Planet{
		NaturalID:   FixturePlanetID,
		Name:        FixturePlanetName,
		Gravity:     1.0,
		Pressure:    1.0,
		Temperature: 20,
		Surface:     true,
		Fertility:   -1,
		Resources: []production.PlanetResource{
			{PlanetNaturalID: FixturePlanetID, ItemSymbol: "LST", ResourceType: production.ResourceSolid, Factor: 1.0},
			{PlanetNaturalID: FixturePlanetID, ItemSymbol: "H2O", ResourceType: production.ResourceLiquid, Factor: 0.5},
			{PlanetNaturalID: FixturePlanetID, ItemSymbol: "NE", ResourceType: production.ResourceGaseous, Factor: 0},
		},
	}
}

// PioneerNeeds returns the pioneer consumables per 100 workers per day
func PioneerNeeds() []production.WorkforceNeed {
	return []production.WorkforceNeed{
		{WorkforceType: production.WorkforcePioneer, ItemSymbol: "RAT", AmountPer100PerDay: 4},
		{WorkforceType: production.WorkforcePioneer, ItemSymbol: "DW", AmountPer100PerDay: 4},
		{WorkforceType: production.WorkforcePioneer, ItemSymbol: "OVE", AmountPer100PerDay: 0.5},
		{WorkforceType: production.WorkforcePioneer, ItemSymbol: "COF", AmountPer100PerDay: 0.5},
		{WorkforceType: production.WorkforcePioneer, ItemSymbol: "PWO", AmountPer100PerDay: 0.2},
	}
}

func mustRecipe(symbol, building string, duration time.Duration, inputs, outputs []production.RecipeLine) *production.Recipe {
	recipe, err := production.NewRecipe(symbol, building, duration, inputs, outputs)
	if err != nil {
		panic(err)
	}
	return recipe
}
