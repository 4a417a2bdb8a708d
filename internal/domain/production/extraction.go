package production

import (
	"math"
	"time"

	"github.com/andrescamacho/prun-cogm/pkg/utils"
)

// Extraction building symbols
const (
	BuildingRig       = "RIG"
	BuildingExtractor = "EXT"
	BuildingCollector = "COL"
)

// extractionRates is the share of a 100% deposit extracted per day
var extractionRates = map[string]float64{
	BuildingRig:       0.7,
	BuildingExtractor: 0.7,
	BuildingCollector: 0.6,
}

// extractionRecipeSymbols maps a deposit type to its generic catalog recipe
var extractionRecipeSymbols = map[ResourceType]string{
	ResourceLiquid:  BuildingRig + ":=>",
	ResourceSolid:   BuildingExtractor + ":=>",
	ResourceGaseous: BuildingCollector + ":=>",
}

// IsExtractionBuilding reports whether symbol is a resource extraction building
func IsExtractionBuilding(symbol string) bool {
	_, ok := extractionRates[symbol]
	return ok
}

// ExtractionRecipeSymbol returns the catalog recipe that extracts a deposit type
func ExtractionRecipeSymbol(resourceType ResourceType) (string, error) {
	symbol, ok := extractionRecipeSymbols[resourceType]
	if !ok {
		return "", &UnknownResourceTypeError{ResourceType: resourceType}
	}
	return symbol, nil
}

// DailyExtraction returns the units per day a building extracts from a deposit,
// rounded to one decimal place.
func DailyExtraction(buildingSymbol string, factor float64) float64 {
	return utils.RoundHalfUp(factor*100*extractionRates[buildingSymbol], 1)
}

// InstantiateExtraction binds a generic extraction recipe to a planet deposit.
// Each run yields a whole number of units, rounded up, and the run time is
// stretched in proportion to the extra fraction of a unit gained, truncated
// to whole milliseconds.
func InstantiateExtraction(base *Recipe, resource *PlanetResource) (*Recipe, error) {
	if !base.IsExtractionRecipe() {
		return nil, &NotExtractionRecipeError{RecipeSymbol: base.symbol}
	}

	daily := DailyExtraction(base.buildingSymbol, resource.Factor)
	baseHours := base.DurationHours()

	fractionalUnits := daily / (24 / baseHours)
	if fractionalUnits <= 0 {
		return nil, &ZeroExtractionRateError{ItemSymbol: resource.ItemSymbol, Planet: resource.PlanetNaturalID}
	}

	units := math.Ceil(fractionalUnits)
	remainder := units - fractionalUnits
	adjustedHours := baseHours + baseHours*(remainder/fractionalUnits)
	adjustedMs := math.Trunc(adjustedHours * float64(time.Hour/time.Millisecond))

	bound := *resource
	return &Recipe{
		symbol:         base.symbol,
		buildingSymbol: base.buildingSymbol,
		duration:       time.Duration(adjustedMs) * time.Millisecond,
		outputs:        []RecipeLine{{ItemSymbol: resource.ItemSymbol, Quantity: units}},
		resource:       &bound,
	}, nil
}
