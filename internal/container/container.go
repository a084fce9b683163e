// Package container is the composition kernel: it wires repositories,
// services, deletion strategies and handlers into a single process-wide
// object graph, built exactly once at startup. Nothing downstream of it
// constructs its own dependencies — everything is handed down from
// here.
package container

import (
	"context"
	"fmt"
	"time"

	"github.com/bxcodec/dbresolver/v2"
	"google.golang.org/grpc"

	grpcin "github.com/catalogsvc/catalog/internal/adapters/grpc/in"
	httpin "github.com/catalogsvc/catalog/internal/adapters/http/in"
	"github.com/catalogsvc/catalog/internal/adapters/mongodb"
	"github.com/catalogsvc/catalog/internal/adapters/rabbitmq"
	pgrepo "github.com/catalogsvc/catalog/internal/adapters/postgres"
	rediscache "github.com/catalogsvc/catalog/internal/adapters/redis"
	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/catalogsvc/catalog/internal/domain/product"
	"github.com/catalogsvc/catalog/internal/platform/auth"
	"github.com/catalogsvc/catalog/internal/platform/config"
	mongoconn "github.com/catalogsvc/catalog/internal/platform/mongo"
	rabbitconn "github.com/catalogsvc/catalog/internal/platform/rabbitmq"
	redisconn "github.com/catalogsvc/catalog/internal/platform/redis"
	"github.com/catalogsvc/catalog/internal/services"
)

// StartupErrorKind tags why the container failed to construct.
type StartupErrorKind string

const (
	StartupConfigurationInvalid        StartupErrorKind = "configuration_invalid"
	StartupDatabaseUnreachable         StartupErrorKind = "database_unreachable"
	StartupIdentityMetadataUnreachable StartupErrorKind = "identity_metadata_unreachable"
)

// StartupError is the typed failure New returns. The process must not
// start serving if New returns one: there is no partially-built
// container and no lazy initialization of a handle that failed here.
type StartupError struct {
	Kind StartupErrorKind
	Err  error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("container startup failed (%s): %v", e.Kind, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}

// Container owns the fully wired object graph. Only handlers and the
// deletion facade are exposed downstream — services are deliberately
// unexported so nothing outside this package can bypass the deletion
// subsystem or the metrics/logging spine every service method is
// wrapped in.
type Container struct {
	Config *config.Config

	ItemHandler        *httpin.ItemHandler
	UserHandler         *httpin.UserHandler
	CategoryHandler     *httpin.CategoryHandler
	ProductHandler      *httpin.ProductHandler
	DeletionLogHandler  *httpin.DeletionLogHandler
	HealthHandler       *httpin.HealthHandler

	GRPCServer *grpc.Server

	AuthMiddleware *auth.Middleware

	Facade *deletion.Facade
}

// New builds the full object graph from cfg and an already-acquired
// primary/replica database pool. Mongo and rabbitmq connections are
// opened lazily by their own wrappers on first use, and a redis client
// that cannot be opened here only disables the product cache, so a
// transient outage in any of those supplemental stores at startup does
// not by itself prevent the process from serving — only the database and the
// identity provider's JWKS endpoint are verified eagerly here, since
// every request needs them.
func New(ctx context.Context, cfg *config.Config, db dbresolver.DB) (*Container, *StartupError) {
	if cfg == nil {
		return nil, &StartupError{Kind: StartupConfigurationInvalid, Err: fmt.Errorf("config must not be nil")}
	}

	if db == nil {
		return nil, &StartupError{Kind: StartupDatabaseUnreachable, Err: fmt.Errorf("database pool must not be nil")}
	}

	itemRepo := pgrepo.NewItemRepository(db)
	userRepo := pgrepo.NewUserRepository(db)
	categoryRepo := pgrepo.NewCategoryRepository(db)
	productRepo := pgrepo.NewProductRepository(db)
	deletionLogRepo := pgrepo.NewDeletionLogRepository(db)

	mongoConn := &mongoconn.Connection{
		ConnectionStringSource: fmt.Sprintf("mongodb://%s:%s@%s:%s", cfg.MongoDBUser, cfg.MongoDBPassword, cfg.MongoDBHost, cfg.MongoDBPort),
		Database:               cfg.MongoDBName,
	}
	metadataRepo := mongodb.NewMetadataRepository(mongoConn, cfg.MongoDBName)

	var productRepository product.Repository = productRepo

	var redisConn *redisconn.Connection

	if cfg.RedisHost != "" {
		redisConn = &redisconn.Connection{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}

		client, err := redisConn.Client(ctx)
		if err != nil {
			// The read-through cache is a latency optimization, not a
			// correctness dependency: a redis outage at startup falls
			// back to serving straight from postgres instead of failing
			// the whole process.
			productRepository = productRepo
		} else {
			ttl := time.Duration(cfg.RedisTTLSecs) * time.Second
			if ttl <= 0 {
				ttl = 5 * time.Minute
			}

			productRepository = rediscache.NewProductCache(productRepo, client, ttl)
		}
	}

	itemService := services.NewItemService(itemRepo)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepository, metadataRepo)
	deletionLogService := services.NewDeletionLogService(deletionLogRepo)

	itemStrategy := deletion.NewItemStrategy(itemRepo)
	categoryStrategy := deletion.NewCategoryStrategy(categoryRepo)
	productStrategy := deletion.NewProductStrategy(productRepository, deletionLogRepo)

	facade := deletion.NewFacade(itemStrategy, categoryStrategy, productStrategy)

	var rabbitConn *rabbitconn.Connection

	if cfg.RabbitMQHost != "" {
		rabbitConn = &rabbitconn.Connection{
			URI: fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQUser, cfg.RabbitMQPass, cfg.RabbitMQHost, cfg.RabbitMQPortAMQP),
		}
		facade = facade.WithPublisher(rabbitmq.NewEventPublisher(rabbitConn))
	}

	authMiddleware, startupErr := buildAuthMiddleware(ctx, cfg)
	if startupErr != nil {
		return nil, startupErr
	}

	grpcServer := grpcin.NewServer(
		grpcin.NewItemServer(itemService, facade),
		grpcin.NewUserServer(userService),
		grpcin.NewCategoryServer(categoryService, facade),
		grpcin.NewProductServer(productService, facade),
	)

	return &Container{
		Config: cfg,

		ItemHandler:        httpin.NewItemHandler(itemService, facade),
		UserHandler:        httpin.NewUserHandler(userService),
		CategoryHandler:    httpin.NewCategoryHandler(categoryService, facade),
		ProductHandler:     httpin.NewProductHandler(productService, facade),
		DeletionLogHandler: httpin.NewDeletionLogHandler(deletionLogService),
		HealthHandler:      httpin.NewHealthHandler(db, mongoConn, redisConn, rabbitConn, authMiddleware),

		GRPCServer: grpcServer,

		AuthMiddleware: authMiddleware,
		Facade:         facade,
	}, nil
}

func buildAuthMiddleware(ctx context.Context, cfg *config.Config) (*auth.Middleware, *StartupError) {
	if !cfg.AuthEnabled {
		return nil, nil
	}

	jwksURI := cfg.JWKAddress
	if jwksURI == "" && cfg.OIDCIssuerURL != "" {
		jwksURI = cfg.OIDCIssuerURL + "/.well-known/jwks.json"
	}

	if jwksURI == "" {
		return nil, &StartupError{Kind: StartupConfigurationInvalid, Err: fmt.Errorf("AUTH_ENABLED is set but no JWKS endpoint is configured")}
	}

	middleware := auth.NewMiddleware(jwksURI)

	if _, err := middleware.VerifyJWKSReachable(ctx); err != nil {
		return nil, &StartupError{Kind: StartupIdentityMetadataUnreachable, Err: err}
	}

	return middleware, nil
}
