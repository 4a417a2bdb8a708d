package production

import (
	"fmt"
	"strings"
)

// Expertise is the expertise category of a building. Experts and COGC programs
// both grant efficiency bonuses keyed by expertise.
type Expertise string

const (
	ExpertiseAgriculture        Expertise = "AGRICULTURE"
	ExpertiseChemistry          Expertise = "CHEMISTRY"
	ExpertiseConstruction       Expertise = "CONSTRUCTION"
	ExpertiseElectronics        Expertise = "ELECTRONICS"
	ExpertiseFoodIndustries     Expertise = "FOOD_INDUSTRIES"
	ExpertiseFuelRefining       Expertise = "FUEL_REFINING"
	ExpertiseManufacturing      Expertise = "MANUFACTURING"
	ExpertiseMetallurgy         Expertise = "METALLURGY"
	ExpertiseResourceExtraction Expertise = "RESOURCE_EXTRACTION"
)

// AllExpertise lists every expertise category in display order
var AllExpertise = []Expertise{
	ExpertiseAgriculture,
	ExpertiseChemistry,
	ExpertiseConstruction,
	ExpertiseElectronics,
	ExpertiseFoodIndustries,
	ExpertiseFuelRefining,
	ExpertiseManufacturing,
	ExpertiseMetallurgy,
	ExpertiseResourceExtraction,
}

// expertiseAliases maps the names used by the game's COGC program list onto
// the canonical categories.
var expertiseAliases = map[string]Expertise{
	"FOOD_INDUSTRY": ExpertiseFoodIndustries,
	"FUEL_REFINERY": ExpertiseFuelRefining,
}

func normalizeExpertiseName(name string) string {
	name = strings.TrimSpace(strings.ToUpper(name))
	name = strings.ReplaceAll(name, "-", "_")
	return strings.Join(strings.Fields(strings.ReplaceAll(name, "_", " ")), "_")
}

// ParseExpertise resolves a case-insensitive category name. Spaces and
// underscores are interchangeable.
func ParseExpertise(name string) (Expertise, error) {
	normalized := normalizeExpertiseName(name)
	if alias, ok := expertiseAliases[normalized]; ok {
		return alias, nil
	}
	for _, e := range AllExpertise {
		if string(e) == normalized {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown expertise category: %q", name)
}

// IsValid reports whether e is one of the known categories
func (e Expertise) IsValid() bool {
	for _, known := range AllExpertise {
		if e == known {
			return true
		}
	}
	return false
}

func (e Expertise) String() string {
	return string(e)
}
