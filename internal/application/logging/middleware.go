package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/prun-cogm/internal/application/mediator"
)

// Middleware logs every request dispatched through the mediator with its
// duration and outcome, using the logger found in the request context.
func Middleware() mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		logger := LoggerFromContext(ctx)
		name := fmt.Sprintf("%T", request)

		start := time.Now()
		response, err := next(ctx, request)
		metadata := map[string]interface{}{
			"request":     name,
			"duration_ms": time.Since(start).Milliseconds(),
		}

		if err != nil {
			metadata["error"] = err.Error()
			logger.Log(LevelError, "request failed", metadata)
			return response, err
		}

		logger.Log(LevelDebug, "request handled", metadata)
		return response, nil
	}
}
