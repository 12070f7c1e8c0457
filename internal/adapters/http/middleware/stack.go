package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/task-classifier/internal/platform/telemetry"
)

// Stack returns the service middleware in installation order, outermost
// first. Recovery wraps everything so that a panic in any later middleware
// still produces a JSON 500; Timeout sits closest to the handler so that its
// deadline covers only handler work. A zero timeout omits Timeout.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) []func(http.Handler) http.Handler {
	mws := []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
	if timeout > 0 {
		mws = append(mws, Timeout(timeout))
	}
	return mws
}
