package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
)

// PrometheusMiddleware creates a middleware that records request duration
// and outcome. Request names are the bare type name, so
// "*queries.CalculateCOGMQuery" is recorded as "CalculateCOGMQuery".
func PrometheusMiddleware(collector *RequestMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		requestName := extractRequestName(request)

		start := time.Now()
		response, err := next(ctx, request)

		collector.RecordRequest(requestName, time.Since(start).Seconds(), err == nil)

		return response, err
	}
}

// extractRequestName extracts the bare type name of a request
func extractRequestName(request mediator.Request) string {
	if request == nil {
		return "UnknownRequest"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")

	parts := strings.Split(fullName, ".")
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}

	return fullName
}
