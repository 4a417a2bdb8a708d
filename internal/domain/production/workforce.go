package production

import "fmt"

// WorkforceType is one of the five worker tiers a building can employ
type WorkforceType string

const (
	WorkforcePioneer    WorkforceType = "PIONEER"
	WorkforceSettler    WorkforceType = "SETTLER"
	WorkforceTechnician WorkforceType = "TECHNICIAN"
	WorkforceEngineer   WorkforceType = "ENGINEER"
	WorkforceScientist  WorkforceType = "SCIENTIST"
)

// WorkforceTypes is the fixed tier order used for every workforce breakdown
var WorkforceTypes = []WorkforceType{
	WorkforcePioneer,
	WorkforceSettler,
	WorkforceTechnician,
	WorkforceEngineer,
	WorkforceScientist,
}

// ParseWorkforceType validates a workforce tier name
func ParseWorkforceType(value string) (WorkforceType, error) {
	for _, t := range WorkforceTypes {
		if string(t) == value {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown workforce type: %q", value)
}

// WorkforceNeed is one consumable a workforce tier uses up, expressed per
// 100 workers per day.
type WorkforceNeed struct {
	WorkforceType      WorkforceType
	ItemSymbol         string
	AmountPer100PerDay float64
}

// NeedPerDay returns the daily consumption for the given headcount
func (n WorkforceNeed) NeedPerDay(headcount int) float64 {
	return n.AmountPer100PerDay / 100 * float64(headcount)
}

// NeedForDuration returns the consumption over a run lasting days
func (n WorkforceNeed) NeedForDuration(headcount int, days float64) float64 {
	return n.NeedPerDay(headcount) * days
}
