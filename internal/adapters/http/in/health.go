package in

import (
	"context"
	"time"

	"github.com/bxcodec/dbresolver/v2"
	"github.com/gofiber/fiber/v2"

	"github.com/catalogsvc/catalog/internal/platform/auth"
	mongoconn "github.com/catalogsvc/catalog/internal/platform/mongo"
	rabbitconn "github.com/catalogsvc/catalog/internal/platform/rabbitmq"
	redisconn "github.com/catalogsvc/catalog/internal/platform/redis"
)

// healthCheckTimeout bounds how long any single dependency probe can
// hold up the readiness response.
const healthCheckTimeout = 2 * time.Second

// HealthHandler answers liveness/readiness probes. Live never touches a
// dependency: it only confirms the process is up and serving. Ready
// probes every downstream store it was wired with and reports each
// one's own reachability, so a single degraded dependency never masks
// the others.
type HealthHandler struct {
	db       dbresolver.DB
	mongo    *mongoconn.Connection
	redis    *redisconn.Connection
	rabbit   *rabbitconn.Connection
	identity *auth.Middleware
}

// NewHealthHandler builds a HealthHandler. redis, rabbit and identity are
// nil whenever that dependency isn't configured for this deployment, in
// which case Ready reports it as "not_configured" rather than probing it.
func NewHealthHandler(db dbresolver.DB, mongo *mongoconn.Connection, redis *redisconn.Connection, rabbit *rabbitconn.Connection, identity *auth.Middleware) *HealthHandler {
	return &HealthHandler{db: db, mongo: mongo, redis: redis, rabbit: rabbit, identity: identity}
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return OK(c, fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready, reporting the reachability of every
// wired dependency instead of a single aggregate status.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	dependencies := fiber.Map{
		"postgres": h.checkPostgres(ctx),
		"mongo":    h.checkMongo(ctx),
		"redis":    h.checkRedis(ctx),
		"rabbitmq": h.checkRabbit(ctx),
		"oidc":     h.checkIdentity(ctx),
	}

	status := "ok"

	for _, v := range dependencies {
		if v != "ok" && v != "not_configured" {
			status = "degraded"
			break
		}
	}

	return OK(c, fiber.Map{"status": status, "dependencies": dependencies})
}

func (h *HealthHandler) checkPostgres(ctx context.Context) string {
	if h.db == nil {
		return "not_configured"
	}

	if err := h.db.Ping(); err != nil {
		return "unreachable: " + err.Error()
	}

	return "ok"
}

func (h *HealthHandler) checkMongo(ctx context.Context) string {
	if h.mongo == nil {
		return "not_configured"
	}

	client, err := h.mongo.Client(ctx)
	if err != nil {
		return "unreachable: " + err.Error()
	}

	if err := client.Ping(ctx, nil); err != nil {
		return "unreachable: " + err.Error()
	}

	return "ok"
}

func (h *HealthHandler) checkRedis(ctx context.Context) string {
	if h.redis == nil {
		return "not_configured"
	}

	client, err := h.redis.Client(ctx)
	if err != nil {
		return "unreachable: " + err.Error()
	}

	if err := client.Ping(ctx).Err(); err != nil {
		return "unreachable: " + err.Error()
	}

	return "ok"
}

func (h *HealthHandler) checkRabbit(ctx context.Context) string {
	if h.rabbit == nil {
		return "not_configured"
	}

	if _, err := h.rabbit.Channel(ctx); err != nil {
		return "unreachable: " + err.Error()
	}

	return "ok"
}

func (h *HealthHandler) checkIdentity(ctx context.Context) string {
	if h.identity == nil {
		return "not_configured"
	}

	if _, err := h.identity.VerifyJWKSReachable(ctx); err != nil {
		return "unreachable: " + err.Error()
	}

	return "ok"
}
