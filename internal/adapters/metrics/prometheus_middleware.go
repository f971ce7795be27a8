package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/starlanes-go/internal/application/mediator"
)

// PrometheusMiddleware times every request and counts it by outcome under its
// bare type name. A nil collector turns the middleware into a pass-through.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordCommandExecution(mediator.RequestName(request), time.Since(start).Seconds(), err == nil)
		return response, err
	}
}
