package production

import "fmt"

// MaxExpertsPerCategory is the most experts a single category can hold
const MaxExpertsPerCategory = 5

// Experts holds an independent expert count per expertise category
type Experts map[Expertise]int

// NewExperts builds an expert assignment from category names, rejecting
// unknown categories and negative counts.
func NewExperts(counts map[string]int) (Experts, error) {
	experts := make(Experts, len(counts))
	for name, count := range counts {
		expertise, err := ParseExpertise(name)
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, fmt.Errorf("%s: %w", name, ErrNegativeExpertCount)
		}
		experts[expertise] += count
	}
	return experts, nil
}

// Count returns the experts assigned to a category, zero if none
func (e Experts) Count(expertise Expertise) int {
	if e == nil {
		return 0
	}
	return e[expertise]
}

// Total returns the number of experts across all categories
func (e Experts) Total() int {
	total := 0
	for _, c := range e {
		total += c
	}
	return total
}
