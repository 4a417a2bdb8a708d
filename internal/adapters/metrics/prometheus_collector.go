package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	// Namespace for all metrics
	namespace = "prun"
	// Subsystem for cost engine metrics
	subsystem = "cost"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalCostCollector is the singleton cost metrics collector
	// Set by SetGlobalCostCollector() when metrics are enabled
	globalCostCollector CostMetricsRecorder
)

// CostMetricsRecorder defines the interface for recording cost engine events
type CostMetricsRecorder interface {
	RecordCalculation(operation string, duration float64, success bool)
	RecordEmpireCOGM(itemSymbol string, perUnit float64)
	RecordPriceCacheWrite(stored bool)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalCostCollector sets the global cost metrics collector
func SetGlobalCostCollector(collector CostMetricsRecorder) {
	globalCostCollector = collector
}

// RecordCalculation records one cost engine operation globally
func RecordCalculation(operation string, duration float64, success bool) {
	if globalCostCollector != nil {
		globalCostCollector.RecordCalculation(operation, duration, success)
	}
}

// RecordEmpireCOGM records the final per-unit cost of an empire output globally
func RecordEmpireCOGM(itemSymbol string, perUnit float64) {
	if globalCostCollector != nil {
		globalCostCollector.RecordEmpireCOGM(itemSymbol, perUnit)
	}
}

// RecordPriceCacheWrite records whether a computed price was kept globally
func RecordPriceCacheWrite(stored bool) {
	if globalCostCollector != nil {
		globalCostCollector.RecordPriceCacheWrite(stored)
	}
}

// WriteText writes every gathered metric in the Prometheus text format
func WriteText(w io.Writer) error {
	if Registry == nil {
		return nil
	}

	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", family.GetName(), err)
		}
	}
	return nil
}
