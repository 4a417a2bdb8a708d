package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

func TestParseExpertise(t *testing.T) {
	tests := []struct {
		input    string
		expected production.Expertise
	}{
		{"MANUFACTURING", production.ExpertiseManufacturing},
		{"manufacturing", production.ExpertiseManufacturing},
		{"  Chemistry ", production.ExpertiseChemistry},
		{"resource extraction", production.ExpertiseResourceExtraction},
		{"Resource_Extraction", production.ExpertiseResourceExtraction},
		{"food-industries", production.ExpertiseFoodIndustries},
		{"FOOD_INDUSTRY", production.ExpertiseFoodIndustries},
		{"fuel refinery", production.ExpertiseFuelRefining},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expertise, err := production.ParseExpertise(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, expertise)
			assert.True(t, expertise.IsValid())
		})
	}
}

func TestParseExpertise_Unknown(t *testing.T) {
	_, err := production.ParseExpertise("ASTROLOGY")
	assert.Error(t, err)

	_, err = production.ParseExpertise("")
	assert.Error(t, err)
}

func TestNewExperts(t *testing.T) {
	// Act
	experts, err := production.NewExperts(map[string]int{
		"manufacturing":       2,
		"MANUFACTURING":       1,
		"resource extraction": 4,
		"chemistry":           0,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, experts.Count(production.ExpertiseManufacturing))
	assert.Equal(t, 4, experts.Count(production.ExpertiseResourceExtraction))
	assert.Equal(t, 0, experts.Count(production.ExpertiseChemistry))
	assert.Equal(t, 0, experts.Count(production.ExpertiseAgriculture))
	assert.Equal(t, 7, experts.Total())
}

func TestNewExperts_UnknownCategory(t *testing.T) {
	_, err := production.NewExperts(map[string]int{"piloting": 1})

	assert.Error(t, err)
}

func TestNewExperts_NegativeCount(t *testing.T) {
	// Act
	experts, err := production.NewExperts(map[string]int{"manufacturing": 2, "chemistry": -1})

	// Assert
	assert.Nil(t, experts)
	assert.ErrorIs(t, err, production.ErrNegativeExpertCount)
	assert.Contains(t, err.Error(), "chemistry")
}

func TestExperts_NilCount(t *testing.T) {
	var experts production.Experts

	assert.Zero(t, experts.Count(production.ExpertiseManufacturing))
	assert.Zero(t, experts.Total())
}
