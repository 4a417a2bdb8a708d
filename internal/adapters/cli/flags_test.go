package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/prun-cogm/internal/domain/production"
)

func TestRecipeFlags_Validate(t *testing.T) {
	assert.EqualError(t, (&recipeFlags{planet: "UV-351a"}).validate(), "--item or --recipe is required")
	assert.EqualError(t, (&recipeFlags{item: "OVE"}).validate(), "--planet is required")
	assert.NoError(t, (&recipeFlags{item: "OVE", planet: "UV-351a"}).validate())
	assert.NoError(t, (&recipeFlags{recipe: "BMP:100xPE-25xPG=>20xOVE", planet: "Katoa"}).validate())
}

func TestParseExperts(t *testing.T) {
	// Act
	experts, err := parseExperts([]string{"manufacturing=2", "Food Industry=1", "MANUFACTURING=1"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, experts.Count(production.ExpertiseManufacturing))
	assert.Equal(t, 1, experts.Count(production.ExpertiseFoodIndustries))
}

func TestParseExperts_RejectsMalformedValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"missing separator", "manufacturing"},
		{"non numeric count", "manufacturing=two"},
		{"negative count", "manufacturing=-1"},
		{"unknown category", "piracy=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseExperts([]string{tt.value})
			assert.Error(t, err)
		})
	}
}

func TestParsePriceOverrides(t *testing.T) {
	// Act
	prices, err := parsePriceOverrides([]string{"pe=12.5", " C = 20 "})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"PE": 12.5, "C": 20}, prices)
}

func TestParsePriceOverrides_RejectsMalformedValues(t *testing.T) {
	for _, value := range []string{"PE", "PE=abc", "PE=0", "PE=-3"} {
		t.Run(value, func(t *testing.T) {
			_, err := parsePriceOverrides([]string{value})
			assert.Error(t, err)
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "14h 24m", formatDuration(51840000*time.Millisecond))
	assert.Equal(t, "1h 01m 43s", formatDuration(3702857*time.Millisecond))
	assert.Equal(t, "20", formatQuantity(20))
	assert.Equal(t, "0.5", formatQuantity(0.5))
	assert.Equal(t, "561.30", formatMoney(561.2985))
	assert.Equal(t, "133.33%", formatPercent(1.3333333))
}
