package production

import "github.com/andrescamacho/prun-cogm/pkg/utils"

// COGCProgramBonus is the flat efficiency bonus of a matching COGC program
const COGCProgramBonus = 0.25

// ExpertBonuses is the efficiency bonus for 1..5 experts in a category
var ExpertBonuses = [MaxExpertsPerCategory]float64{0.0306, 0.0696, 0.1248, 0.1974, 0.2840}

// ExpertSpawnDays is the number of days a single building needs to earn the
// next expert, indexed by the current expert count.
var ExpertSpawnDays = [MaxExpertsPerCategory]float64{10.00, 12.50, 57.57, 276.50, 915.10}

// Efficiency is a resolved efficiency with its components
type Efficiency struct {
	ExpertBonus      float64
	ProgramBonus     float64
	RequestedExperts int
	AppliedExperts   int
}

// Total returns the combined efficiency
func (e Efficiency) Total() float64 {
	return e.ExpertBonus + e.ProgramBonus
}

// Clamped reports whether the expert count exceeded the per-category limit
func (e Efficiency) Clamped() bool {
	return e.RequestedExperts > e.AppliedExperts
}

// ExpertBonus returns the bonus for count experts. Counts above the
// per-category limit are clamped.
func ExpertBonus(count int) float64 {
	if count <= 0 {
		return 0
	}
	if count > MaxExpertsPerCategory {
		count = MaxExpertsPerCategory
	}
	return ExpertBonuses[count-1]
}

// ProgramBonus returns the COGC bonus for a building of the given expertise.
// An empty program means no program is active.
func ProgramBonus(expertise Expertise, program string) (float64, error) {
	if program == "" {
		return 0, nil
	}
	programExpertise, err := ParseExpertise(program)
	if err != nil {
		return 0, &InvalidProgramError{Program: program}
	}
	if expertise != "" && programExpertise == expertise {
		return COGCProgramBonus, nil
	}
	return 0, nil
}

// ResolveEfficiency combines the expert and program bonuses for a building
// of the given expertise.
func ResolveEfficiency(experts Experts, expertise Expertise, program string) (Efficiency, error) {
	programBonus, err := ProgramBonus(expertise, program)
	if err != nil {
		return Efficiency{}, err
	}

	requested := 0
	if expertise != "" {
		requested = experts.Count(expertise)
	}
	applied := requested
	if applied > MaxExpertsPerCategory {
		applied = MaxExpertsPerCategory
	}
	if applied < 0 {
		applied = 0
	}

	return Efficiency{
		ExpertBonus:      ExpertBonus(applied),
		ProgramBonus:     programBonus,
		RequestedExperts: requested,
		AppliedExperts:   applied,
	}, nil
}

// DaysToNextExpert returns the days until the next expert spawns, zero once
// the category is full. The work is shared across numBuildings.
func DaysToNextExpert(currentExperts, numBuildings int) float64 {
	if currentExperts >= MaxExpertsPerCategory {
		return 0
	}
	if currentExperts < 0 {
		currentExperts = 0
	}
	return ExpertSpawnDays[currentExperts] / float64(utils.Max(1, numBuildings))
}

// TotalDaysForExperts returns the days needed to grow from zero to target experts
func TotalDaysForExperts(targetExperts, numBuildings int) float64 {
	targetExperts = utils.Min(targetExperts, MaxExpertsPerCategory)
	total := 0.0
	for i := 0; i < targetExperts; i++ {
		total += ExpertSpawnDays[i] / float64(utils.Max(1, numBuildings))
	}
	return total
}
