package production

import "math"

// RepairWindowDays is the number of days over which construction materials
// fully degrade.
const RepairWindowDays = 180

// BuildingCost is one construction material line of a building
type BuildingCost struct {
	ItemSymbol string
	Amount     float64
}

// Reclaimable returns how much of the material is still intact after
// daysSinceRepair days.
func (c BuildingCost) Reclaimable(daysSinceRepair int) float64 {
	days := daysSinceRepair
	if days > RepairWindowDays {
		days = RepairWindowDays
	}
	if days < 0 {
		days = 0
	}
	return math.Floor(c.Amount * float64(RepairWindowDays-days) / RepairWindowDays)
}

// RepairAmount returns the material needed to restore the building
func (c BuildingCost) RepairAmount(daysSinceRepair int) float64 {
	return c.Amount - c.Reclaimable(daysSinceRepair)
}

// Building is a production building from the catalog
type Building struct {
	Symbol      string
	Name        string
	Expertise   Expertise
	Pioneers    int
	Settlers    int
	Technicians int
	Engineers   int
	Scientists  int
	AreaCost    int
	Costs       []BuildingCost
}

// WorkforceHeadcount is the number of workers of one tier
type WorkforceHeadcount struct {
	Type  WorkforceType
	Count int
}

// Headcount returns the workers of one tier
func (b *Building) Headcount(t WorkforceType) int {
	switch t {
	case WorkforcePioneer:
		return b.Pioneers
	case WorkforceSettler:
		return b.Settlers
	case WorkforceTechnician:
		return b.Technicians
	case WorkforceEngineer:
		return b.Engineers
	case WorkforceScientist:
		return b.Scientists
	}
	return 0
}

// StaffedTiers returns the tiers with a nonzero headcount in tier order
func (b *Building) StaffedTiers() []WorkforceHeadcount {
	var tiers []WorkforceHeadcount
	for _, t := range WorkforceTypes {
		if count := b.Headcount(t); count > 0 {
			tiers = append(tiers, WorkforceHeadcount{Type: t, Count: count})
		}
	}
	return tiers
}

// TotalWorkers returns the headcount across all tiers
func (b *Building) TotalWorkers() int {
	total := 0
	for _, t := range WorkforceTypes {
		total += b.Headcount(t)
	}
	return total
}
