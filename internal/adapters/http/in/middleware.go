package in

import (
	"github.com/catalogsvc/catalog/internal/platform/logging"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDHeader is the header a caller may set to correlate a request
// across logs; one is generated when absent.
const RequestIDHeader = "X-Request-Id"

// WithRequestContext attaches the process logger and tracer to every
// request's user context, so every handler and everything it calls
// reaches them through logging.FromContext/telemetry.TracerFromContext
// instead of a global.
func WithRequestContext(logger logging.Logger, provider trace.TracerProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDHeader, requestID)

		scoped := logger.WithFields("request_id", requestID)

		ctx := logging.ContextWith(c.UserContext(), scoped)
		ctx = telemetry.ContextWithTracer(ctx, provider.Tracer("catalog"))
		c.SetUserContext(ctx)

		return c.Next()
	}
}
