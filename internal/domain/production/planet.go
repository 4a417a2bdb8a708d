package production

import (
	"fmt"
	"strings"
)

// ResourceType is the deposit category of a planet resource
type ResourceType string

const (
	ResourceLiquid  ResourceType = "LIQUID"
	ResourceSolid   ResourceType = "SOLID"
	ResourceGaseous ResourceType = "GASEOUS"
)

// PlanetResource is a deposit of one item on a planet
type PlanetResource struct {
	PlanetNaturalID string
	ItemSymbol      string
	ResourceType    ResourceType
	Factor          float64
}

// NewPlanetResource validates the concentration factor
func NewPlanetResource(planetNaturalID, itemSymbol string, resourceType ResourceType, factor float64) (*PlanetResource, error) {
	if strings.TrimSpace(itemSymbol) == "" {
		return nil, ErrEmptySymbol
	}
	if factor < 0 || factor > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFactor, factor)
	}
	return &PlanetResource{
		PlanetNaturalID: planetNaturalID,
		ItemSymbol:      itemSymbol,
		ResourceType:    resourceType,
		Factor:          factor,
	}, nil
}

// Planet is a production location with its deposits and the environment
// that drives building construction costs.
type Planet struct {
	NaturalID   string
	Name        string
	Gravity     float64
	Pressure    float64
	Temperature float64
	Surface     bool
	Fertility   float64
	Resources   []PlanetResource
}

// Resource returns the deposit of itemSymbol on this planet
func (p *Planet) Resource(itemSymbol string) (*PlanetResource, error) {
	for i := range p.Resources {
		if p.Resources[i].ItemSymbol == itemSymbol {
			r := p.Resources[i]
			return &r, nil
		}
	}
	return nil, &PlanetResourceNotFoundError{ItemSymbol: itemSymbol, Planet: p.NaturalID}
}

// Matches reports whether identifier names this planet by natural id or name
func (p *Planet) Matches(identifier string) bool {
	return strings.EqualFold(p.NaturalID, identifier) || strings.EqualFold(p.Name, identifier)
}
