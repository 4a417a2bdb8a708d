package production

import (
	"math"
	"strings"
	"time"
)

// RecipeKind tags the recipe variants the cost engine understands
type RecipeKind int

const (
	// RecipeKindStandard is a fixed catalog transformation
	RecipeKindStandard RecipeKind = iota
	// RecipeKindExtraction is an extraction recipe, either the catalog
	// template or its planet-specific instance
	RecipeKindExtraction
	// RecipeKindEfficient is any recipe with a resolved efficiency attached
	RecipeKindEfficient
)

func (k RecipeKind) String() string {
	switch k {
	case RecipeKindStandard:
		return "STANDARD"
	case RecipeKindExtraction:
		return "EXTRACTION"
	case RecipeKindEfficient:
		return "EFFICIENT"
	default:
		return "UNKNOWN"
	}
}

// RecipeLine is one (item, quantity) input or output of a recipe
type RecipeLine struct {
	ItemSymbol string
	Quantity   float64
}

// Recipe is a transformation of inputs into outputs run in one building for
// a fixed duration. Catalog recipes of extraction buildings carry no lines
// and must be instantiated per planet resource before use.
type Recipe struct {
	symbol         string
	buildingSymbol string
	duration       time.Duration
	inputs         []RecipeLine
	outputs        []RecipeLine
	resource       *PlanetResource
}

// NewRecipe creates a catalog recipe
func NewRecipe(symbol, buildingSymbol string, duration time.Duration, inputs, outputs []RecipeLine) (*Recipe, error) {
	if strings.TrimSpace(symbol) == "" || strings.TrimSpace(buildingSymbol) == "" {
		return nil, ErrEmptySymbol
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	for _, line := range append(append([]RecipeLine{}, inputs...), outputs...) {
		if strings.TrimSpace(line.ItemSymbol) == "" {
			return nil, ErrEmptySymbol
		}
		if line.Quantity <= 0 {
			return nil, ErrNonPositiveQuantity
		}
	}

	return &Recipe{
		symbol:         symbol,
		buildingSymbol: buildingSymbol,
		duration:       duration,
		inputs:         copyLines(inputs),
		outputs:        copyLines(outputs),
	}, nil
}

func (r *Recipe) Symbol() string { return r.symbol }
func (r *Recipe) BuildingSymbol() string { return r.buildingSymbol }
func (r *Recipe) Duration() time.Duration { return r.duration }
func (r *Recipe) Inputs() []RecipeLine { return copyLines(r.inputs) }
func (r *Recipe) Outputs() []RecipeLine { return copyLines(r.outputs) }
func (r *Recipe) Resource() *PlanetResource { return r.resource }
func (r *Recipe) DurationHours() float64 { return r.duration.Hours() }
func (r *Recipe) DurationDays() float64 { return r.duration.Hours() / 24 }
func (r *Recipe) DurationMilliseconds() int64 { return r.duration.Milliseconds() }

// Kind reports whether this is a standard or an extraction recipe
func (r *Recipe) Kind() RecipeKind {
	if r.IsExtractionRecipe() {
		return RecipeKindExtraction
	}
	return RecipeKindStandard
}

// IsExtractionRecipe reports whether the recipe runs in an extraction building
func (r *Recipe) IsExtractionRecipe() bool {
	return IsExtractionBuilding(r.buildingSymbol)
}

// IsPlanetInstance reports whether an extraction recipe has been bound to a
// planet resource.
func (r *Recipe) IsPlanetInstance() bool {
	return r.resource != nil
}

// Output returns the output line for itemSymbol
func (r *Recipe) Output(itemSymbol string) (RecipeLine, bool) {
	for _, line := range r.outputs {
		if line.ItemSymbol == itemSymbol {
			return line, true
		}
	}
	return RecipeLine{}, false
}

// EfficientRecipe is a recipe with a resolved efficiency. The efficiency
// shortens the run without touching the material lines.
type EfficientRecipe struct {
	base       *Recipe
	efficiency float64
	duration   time.Duration
}

// NewEfficientRecipe applies efficiency to a recipe. The effective run time
// is the base time scaled by (1 - efficiency), truncated to whole
// milliseconds.
func NewEfficientRecipe(recipe *Recipe, efficiency float64) *EfficientRecipe {
	baseMs := float64(recipe.duration.Milliseconds())
	effectiveMs := int64(math.Trunc(baseMs * (1.0 - efficiency)))

	return &EfficientRecipe{
		base:       recipe,
		efficiency: efficiency,
		duration:   time.Duration(effectiveMs) * time.Millisecond,
	}
}

func (r *EfficientRecipe) Base() *Recipe { return r.base }
func (r *EfficientRecipe) Efficiency() float64 { return r.efficiency }
func (r *EfficientRecipe) Symbol() string { return r.base.symbol }
func (r *EfficientRecipe) BuildingSymbol() string { return r.base.buildingSymbol }
func (r *EfficientRecipe) Duration() time.Duration { return r.duration }
func (r *EfficientRecipe) Inputs() []RecipeLine { return r.base.Inputs() }
func (r *EfficientRecipe) Outputs() []RecipeLine { return r.base.Outputs() }
func (r *EfficientRecipe) Kind() RecipeKind { return RecipeKindEfficient }
func (r *EfficientRecipe) DurationHours() float64 { return r.duration.Hours() }
func (r *EfficientRecipe) DurationDays() float64 { return r.duration.Hours() / 24 }
func (r *EfficientRecipe) Output(item string) (RecipeLine, bool) { return r.base.Output(item) }

func copyLines(lines []RecipeLine) []RecipeLine {
	if lines == nil {
		return nil
	}
	out := make([]RecipeLine, len(lines))
	copy(out, lines)
	return out
}
