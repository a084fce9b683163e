package in

import (
	"github.com/catalogsvc/catalog/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler serves the Prometheus registry every service and
// repository call is instrumented against.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
}
