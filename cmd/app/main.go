// Command app is the catalog service process entrypoint: it loads
// configuration, opens the database pool, builds the container and
// serves HTTP and gRPC until an interrupt signal arrives.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpin "github.com/catalogsvc/catalog/internal/adapters/http/in"
	"github.com/catalogsvc/catalog/internal/container"
	"github.com/catalogsvc/catalog/internal/platform/config"
	"github.com/catalogsvc/catalog/internal/platform/logging"
	"github.com/catalogsvc/catalog/internal/platform/postgres"
	"github.com/catalogsvc/catalog/internal/platform/telemetry"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewFromEnv()
	defer func() { _ = logger.Sync() }()

	tel := (&telemetry.Telemetry{
		LibraryName:               "catalog",
		ServiceName:               cfg.OtelServiceName,
		ServiceVersion:            cfg.OtelServiceVersion,
		DeploymentEnv:             cfg.OtelDeploymentEnv,
		CollectorExporterEndpoint: cfg.OtelColExporterEndpoint,
	}).Initialize()
	defer tel.Shutdown()

	dbConn := &postgres.Connection{
		ConnectionStringPrimary: cfg.PrimaryDSN(),
		ConnectionStringReplica: cfg.PrimaryDSN(),
		PrimaryDBName:           cfg.PrimaryDBName,
		MigrationsPath:          "migrations",
	}

	db, err := dbConn.DB()
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	c, startupErr := container.New(ctx, cfg, db)
	cancel()

	if startupErr != nil {
		logger.Fatalf("failed to build container (%s): %v", startupErr.Kind, startupErr.Err)
	}

	app := httpin.NewRouter(
		logger,
		tel.TracerProvider,
		c.AuthMiddleware,
		c.ItemHandler,
		c.UserHandler,
		c.CategoryHandler,
		c.ProductHandler,
		c.DeletionLogHandler,
		c.HealthHandler,
	)

	go func() {
		addr := cfg.HTTPAddress()
		logger.Infof("catalog service listening on %s", addr)

		if err := app.Listen(addr); err != nil {
			logger.Errorf("http server stopped: %v", err)
		}
	}()

	rpcAddr := cfg.RPCAddress()
	rpcListener, err := net.Listen("tcp", rpcAddr)
	if err != nil {
		logger.Fatalf("failed to listen on %s: %v", rpcAddr, err)
	}

	go func() {
		logger.Infof("catalog rpc listening on %s", rpcAddr)

		if err := c.GRPCServer.Serve(rpcListener); err != nil {
			logger.Errorf("grpc server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}

	c.GRPCServer.GracefulStop()
}
