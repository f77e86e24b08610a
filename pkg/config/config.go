package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	HTTPPort        string        `mapstructure:"http_port"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type StorageConfig struct {
	// Driver is one of postgres, sqlite or memory
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
	Seed       bool   `mapstructure:"seed"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
	GroupID string   `mapstructure:"group_id"`
}

type TracingConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

type StockConfig struct {
	SafetyMarginDays int `mapstructure:"safety_margin_days"`
}

type ReorderConfig struct {
	MessageTemplate string `mapstructure:"message_template"`
}

// Config is the full service configuration
type Config struct {
	ServiceName string        `mapstructure:"service_name"`
	Environment string        `mapstructure:"environment"`
	Server      ServerConfig  `mapstructure:"server"`
	Log         LogConfig     `mapstructure:"log"`
	Storage     StorageConfig `mapstructure:"storage"`
	DB          DBConfig      `mapstructure:"db"`
	Redis       RedisConfig   `mapstructure:"redis"`
	Kafka       KafkaConfig   `mapstructure:"kafka"`
	Tracing     TracingConfig `mapstructure:"tracing"`
	Stock       StockConfig   `mapstructure:"stock"`
	Reorder     ReorderConfig `mapstructure:"reorder"`
}

// IsDevelopment reports whether the service runs in development mode
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// envBindings maps config keys to the environment variables the service reads
var envBindings = map[string]string{
	"service_name":             "OTEL_SERVICE_NAME",
	"environment":              "ENVIRONMENT",
	"server.http_port":         "HTTP_PORT",
	"server.request_timeout":   "REQUEST_TIMEOUT",
	"server.shutdown_timeout":  "SHUTDOWN_TIMEOUT",
	"log.level":                "LOG_LEVEL",
	"storage.driver":           "STORAGE_DRIVER",
	"storage.sqlite_path":      "SQLITE_PATH",
	"storage.seed":             "SEED_ON_START",
	"db.host":                  "DB_HOST",
	"db.port":                  "DB_PORT",
	"db.user":                  "DB_USER",
	"db.password":              "DB_PASSWORD",
	"db.name":                  "DB_NAME",
	"db.sslmode":               "DB_SSLMODE",
	"redis.addr":               "REDIS_ADDR",
	"redis.password":           "REDIS_PASSWORD",
	"redis.db":                 "REDIS_DB",
	"redis.ttl":                "REDIS_TTL",
	"kafka.brokers":            "KAFKA_BROKERS",
	"kafka.topic":              "KAFKA_REORDER_TOPIC",
	"kafka.group_id":           "KAFKA_GROUP_ID",
	"tracing.enabled":          "TRACING_ENABLED",
	"tracing.jaeger_endpoint":  "JAEGER_ENDPOINT",
	"stock.safety_margin_days": "STOCK_SAFETY_MARGIN_DAYS",
	"reorder.message_template": "REORDER_MESSAGE_TEMPLATE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", "stockwatch")
	v.SetDefault("environment", "development")
	v.SetDefault("server.http_port", "3000")
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.sqlite_path", "data/inventory.db")
	v.SetDefault("storage.seed", true)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "inventorydb")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", time.Minute)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "stock-reorder-alerts")
	v.SetDefault("kafka.group_id", "stockctl")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.jaeger_endpoint", "http://localhost:14268/api/traces")
	v.SetDefault("stock.safety_margin_days", 2)
	// empty selects the built-in supplier message
	v.SetDefault("reorder.message_template", "")
}

// Load reads config.yaml from path (if present), a .env file (if present) and the
// environment, in increasing order of precedence.
func Load(path string) (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// KAFKA_BROKERS arrives as one comma separated string, possibly with spaces
	cfg.Kafka.Brokers = splitList(strings.Join(cfg.Kafka.Brokers, ","))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the service cannot start with
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case "postgres", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == "sqlite" && c.Storage.SQLitePath == "" {
		return errors.New("storage.sqlite_path is required for the sqlite driver")
	}
	if c.Stock.SafetyMarginDays < 0 {
		return errors.New("stock.safety_margin_days cannot be negative")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
