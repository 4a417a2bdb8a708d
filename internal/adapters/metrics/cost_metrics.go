package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CostMetricsCollector handles cost engine metrics
type CostMetricsCollector struct {
	calculationsTotal   *prometheus.CounterVec
	calculationDuration *prometheus.HistogramVec
	cogmPerUnit         *prometheus.GaugeVec
	priceCacheWrites    *prometheus.CounterVec
}

// NewCostMetricsCollector creates a new cost metrics collector
func NewCostMetricsCollector() *CostMetricsCollector {
	return &CostMetricsCollector{
		calculationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "calculations_total",
				Help:      "Total number of cost calculations by operation and status",
			},
			[]string{"operation", "status"},
		),

		calculationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "calculation_duration_seconds",
				Help:      "Cost calculation duration distribution",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"operation"},
		),

		cogmPerUnit: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cogm_per_unit",
				Help:      "Per-unit cost of goods manufactured from the last empire evaluation",
			},
			[]string{"item"},
		),

		priceCacheWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "price_cache_writes_total",
				Help:      "Computed COGM prices offered to the price cache by result",
			},
			[]string{"result"},
		),
	}
}

// Register registers all cost metrics with the Prometheus registry
func (c *CostMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.calculationsTotal,
		c.calculationDuration,
		c.cogmPerUnit,
		c.priceCacheWrites,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordCalculation records one cost engine operation
func (c *CostMetricsCollector) RecordCalculation(operation string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	c.calculationsTotal.WithLabelValues(operation, status).Inc()
	c.calculationDuration.WithLabelValues(operation).Observe(duration)
}

// RecordEmpireCOGM records the final per-unit cost of an output
func (c *CostMetricsCollector) RecordEmpireCOGM(itemSymbol string, perUnit float64) {
	c.cogmPerUnit.WithLabelValues(itemSymbol).Set(perUnit)
}

// RecordPriceCacheWrite records whether a computed price was kept
func (c *CostMetricsCollector) RecordPriceCacheWrite(stored bool) {
	result := "stored"
	if !stored {
		result = "rejected"
	}
	c.priceCacheWrites.WithLabelValues(result).Inc()
}
