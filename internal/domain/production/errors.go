package production

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptySymbol         = errors.New("symbol cannot be empty")
	ErrInvalidDuration     = errors.New("recipe duration must be positive")
	ErrInvalidFactor       = errors.New("resource factor must be within [0, 1]")
	ErrNonPositiveQuantity = errors.New("recipe line quantity must be positive")
	ErrNegativeExpertCount = errors.New("expert count cannot be negative")
)

// RecipeNotFoundError is returned when an explicit recipe symbol does not exist
type RecipeNotFoundError struct {
	Symbol string
}

func (e *RecipeNotFoundError) Error() string {
	return fmt.Sprintf("recipe %s not found", e.Symbol)
}

// MultipleRecipesFoundError carries every candidate so the caller can retry
// with an explicit recipe symbol.
type MultipleRecipesFoundError struct {
	ItemSymbol string
	Candidates []*Recipe
}

func (e *MultipleRecipesFoundError) Error() string {
	symbols := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		symbols[i] = c.Symbol()
	}
	return fmt.Sprintf("multiple recipes found for %s, specify one of: %s",
		e.ItemSymbol, strings.Join(symbols, ", "))
}

// PlanetResourceRequiredError is returned when an extraction recipe is
// requested without the planet resource it must be instantiated from.
type PlanetResourceRequiredError struct {
	RecipeSymbol string
}

func (e *PlanetResourceRequiredError) Error() string {
	return fmt.Sprintf("recipe %s is a resource extraction recipe, a planet and item are required", e.RecipeSymbol)
}

// PlanetRequiredError is returned when an item has no catalog recipe and no
// planet was given to extract it from.
type PlanetRequiredError struct {
	ItemSymbol string
}

func (e *PlanetRequiredError) Error() string {
	return fmt.Sprintf("no recipe produces %s, a planet is required to extract it", e.ItemSymbol)
}

// PlanetBuildingRequiredError is returned when a recipe is priced without the
// planet its building stands on.
type PlanetBuildingRequiredError struct {
	RecipeSymbol   string
	BuildingSymbol string
}

func (e *PlanetBuildingRequiredError) Error() string {
	return fmt.Sprintf("recipe %s needs a planet to place building %s on", e.RecipeSymbol, e.BuildingSymbol)
}

// PlanetResourceNotFoundError is returned when the planet has no deposit of the item
type PlanetResourceNotFoundError struct {
	ItemSymbol string
	Planet     string
}

func (e *PlanetResourceNotFoundError) Error() string {
	return fmt.Sprintf("planet %s has no %s resource", e.Planet, e.ItemSymbol)
}

// PlanetNotFoundError is returned when a planet id or name is unknown
type PlanetNotFoundError struct {
	Identifier string
}

func (e *PlanetNotFoundError) Error() string {
	return fmt.Sprintf("planet %s not found", e.Identifier)
}

// BuildingNotFoundError is returned when a recipe references an unknown building
type BuildingNotFoundError struct {
	Symbol string
}

func (e *BuildingNotFoundError) Error() string {
	return fmt.Sprintf("building %s not found", e.Symbol)
}

// ZeroExtractionRateError is returned when a deposit yields nothing per run
type ZeroExtractionRateError struct {
	ItemSymbol string
	Planet     string
}

func (e *ZeroExtractionRateError) Error() string {
	return fmt.Sprintf("resource %s on planet %s has a zero extraction rate", e.ItemSymbol, e.Planet)
}

// InvalidProgramError is returned for an unrecognized COGC program name
type InvalidProgramError struct {
	Program string
}

func (e *InvalidProgramError) Error() string {
	return fmt.Sprintf("invalid COGC program: %q", e.Program)
}

// NotExtractionRecipeError is returned when a non-extraction recipe is
// instantiated against a planet resource.
type NotExtractionRecipeError struct {
	RecipeSymbol string
}

func (e *NotExtractionRecipeError) Error() string {
	return fmt.Sprintf("recipe %s is not a resource extraction recipe", e.RecipeSymbol)
}

// OutputNotFoundError is returned when a recipe does not produce the requested item
type OutputNotFoundError struct {
	RecipeSymbol string
	ItemSymbol   string
}

func (e *OutputNotFoundError) Error() string {
	return fmt.Sprintf("recipe %s does not produce %s", e.RecipeSymbol, e.ItemSymbol)
}

// UnknownResourceTypeError is returned for a deposit type without an extraction building
type UnknownResourceTypeError struct {
	ResourceType ResourceType
}

func (e *UnknownResourceTypeError) Error() string {
	return fmt.Sprintf("unknown resource type: %s", e.ResourceType)
}
