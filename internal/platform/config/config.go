// Package config loads process configuration from environment variables
// into a plain struct using "env" field tags, the same convention the
// rest of this codebase's dependencies are configured with.
package config

import (
	"errors"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Config is the top-level configuration for the catalog service.
type Config struct {
	EnvName     string `env:"ENV_NAME"`
	ServiceName string `env:"SERVICE_NAME"`
	LogLevel    string `env:"LOG_LEVEL"`

	// ServerAddress and GRPCAddress are the teacher's single bind-string
	// convention. HTTPHost/HTTPPort and RPCHost/RPCPort are the
	// catalog-specific split form; HTTPAddress() and RPCAddress() prefer the split form
	// when either host or port is set, falling back to these otherwise.
	ServerAddress string `env:"SERVER_ADDRESS"`
	GRPCAddress   string `env:"GRPC_ADDRESS"`

	HTTPHost string `env:"HTTP_HOST"`
	HTTPPort string `env:"HTTP_PORT"`
	RPCHost  string `env:"RPC_HOST"`
	RPCPort  string `env:"RPC_PORT"`

	// DatabaseURL is a single connection string, used verbatim as the
	// primary DSN when set. The discrete PrimaryDB* fields below remain
	// for building a replica DSN and as a fallback when DatabaseURL is
	// unset.
	DatabaseURL              string `env:"DATABASE_URL"`
	DatabaseMaxConnections   int    `env:"DATABASE_MAX_CONNECTIONS"`
	DatabaseMinConnections   int    `env:"DATABASE_MIN_CONNECTIONS"`
	DatabaseConnectTimeoutS  int    `env:"DATABASE_CONNECT_TIMEOUT_SEC"`

	PrimaryDBHost     string `env:"DB_HOST"`
	PrimaryDBUser     string `env:"DB_USER"`
	PrimaryDBPassword string `env:"DB_PASSWORD"`
	PrimaryDBName     string `env:"DB_NAME"`
	PrimaryDBPort     string `env:"DB_PORT"`
	ReplicaDBHost     string `env:"DB_REPLICA_HOST"`
	ReplicaDBUser     string `env:"DB_REPLICA_USER"`
	ReplicaDBPassword string `env:"DB_REPLICA_PASSWORD"`
	ReplicaDBName     string `env:"DB_REPLICA_NAME"`
	ReplicaDBPort     string `env:"DB_REPLICA_PORT"`

	MongoDBHost     string `env:"MONGO_HOST"`
	MongoDBName     string `env:"MONGO_NAME"`
	MongoDBUser     string `env:"MONGO_USER"`
	MongoDBPassword string `env:"MONGO_PASSWORD"`
	MongoDBPort     string `env:"MONGO_PORT"`

	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
	RedisTTLSecs  int    `env:"REDIS_PRODUCT_CACHE_TTL_SECONDS"`

	RabbitMQHost     string `env:"RABBITMQ_HOST"`
	RabbitMQPortAMQP string `env:"RABBITMQ_PORT_AMQP"`
	RabbitMQUser     string `env:"RABBITMQ_DEFAULT_USER"`
	RabbitMQPass     string `env:"RABBITMQ_DEFAULT_PASS"`
	RabbitMQExchange string `env:"RABBITMQ_EXCHANGE"`
	RabbitMQKey      string `env:"RABBITMQ_KEY"`
	RabbitMQQueue    string `env:"RABBITMQ_QUEUE"`

	CasdoorAddress          string `env:"CASDOOR_ADDRESS"`
	CasdoorClientID         string `env:"CASDOOR_CLIENT_ID"`
	CasdoorClientSecret     string `env:"CASDOOR_CLIENT_SECRET"`
	CasdoorOrganizationName string `env:"CASDOOR_ORGANIZATION_NAME"`
	CasdoorApplicationName  string `env:"CASDOOR_APPLICATION_NAME"`
	JWKAddress              string `env:"CASDOOR_JWK_ADDRESS"`
	AuthEnabled             bool   `env:"AUTH_ENABLED"`

	// OIDCIssuerURL/OIDCRealm/OIDCClientID name the identity provider in
	// the vocabulary an OIDC-literate operator expects. JWKS discovery
	// uses CASDOOR_JWK_ADDRESS when it is set, and falls back to
	// OIDC_ISSUER_URL + "/.well-known/jwks.json" only when it is empty.
	OIDCIssuerURL string `env:"OIDC_ISSUER_URL"`
	OIDCRealm     string `env:"OIDC_REALM"`
	OIDCClientID  string `env:"OIDC_CLIENT_ID"`

	OtelServiceName         string `env:"OTEL_RESOURCE_SERVICE_NAME"`
	OtelLibraryName         string `env:"OTEL_LIBRARY_NAME"`
	OtelServiceVersion      string `env:"OTEL_RESOURCE_SERVICE_VERSION"`
	OtelDeploymentEnv       string `env:"OTEL_RESOURCE_DEPLOYMENT_ENVIRONMENT"`
	OtelColExporterEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// HTTPAddress returns the HTTP bind address, preferring the split
// HTTP_HOST/HTTP_PORT form over the single SERVER_ADDRESS field.
func (c *Config) HTTPAddress() string {
	if c.HTTPHost != "" || c.HTTPPort != "" {
		return c.HTTPHost + ":" + c.HTTPPort
	}

	return c.ServerAddress
}

// RPCAddress returns the gRPC bind address, preferring the split
// RPC_HOST/RPC_PORT form over the single GRPC_ADDRESS field.
func (c *Config) RPCAddress() string {
	if c.RPCHost != "" || c.RPCPort != "" {
		return c.RPCHost + ":" + c.RPCPort
	}

	return c.GRPCAddress
}

// PrimaryDSN returns DatabaseURL verbatim when set, otherwise builds a
// DSN from the discrete PrimaryDB* fields the way the teacher does.
func (c *Config) PrimaryDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	return "host=" + c.PrimaryDBHost +
		" user=" + c.PrimaryDBUser +
		" password=" + c.PrimaryDBPassword +
		" dbname=" + c.PrimaryDBName +
		" port=" + c.PrimaryDBPort +
		" sslmode=disable"
}

// FromEnv builds a Config by setting every "env"-tagged field from the
// corresponding environment variable.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := setFromEnvVars(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setFromEnvVars populates s's "env"-tagged fields by reflection.
// Constraint: s must be a pointer to struct. Supported field kinds:
// string, bool, int (and sized int variants).
func setFromEnvVars(s any) error {
	v := reflect.ValueOf(s)

	t := v.Type()
	if t.Kind() != reflect.Ptr {
		return errors.New("config: s must be a pointer")
	}

	e := t.Elem()
	for i := 0; i < e.NumField(); i++ {
		f := e.Field(i)

		tag, ok := f.Tag.Lookup("env")
		if !ok {
			continue
		}

		values := strings.Split(tag, ",")
		if len(values) == 0 {
			continue
		}

		fv := v.Elem().FieldByName(f.Name)
		if !fv.CanSet() {
			continue
		}

		raw, present := os.LookupEnv(values[0])

		switch fv.Kind() {
		case reflect.Bool:
			fv.SetBool(present && parseBool(raw))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fv.SetInt(parseIntOrDefault(raw, 0))
		default:
			fv.SetString(raw)
		}
	}

	return nil
}

func parseBool(raw string) bool {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}

	return b
}

func parseIntOrDefault(raw string, def int64) int64 {
	if raw == "" {
		return def
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}

	return n
}
