package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	S3      S3Config
	Log     LogConfig
	Models  ModelsConfig
	Dataset DatasetConfig
	Engine  EngineConfig
	Batch   BatchConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings for the model artifact store.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ModelsConfig holds classifier artifact settings.
type ModelsConfig struct {
	// Source selects where artifacts are fetched from: "local" or "s3".
	Source string `mapstructure:"source"`
	// Dir is the artifact directory for the local source.
	Dir string `mapstructure:"dir"`
	// Backend overrides the manifest's backend ("linear" or "onnx") when set.
	Backend string `mapstructure:"backend"`
	// ORTLibrary is the path to the onnxruntime shared library for the onnx backend.
	ORTLibrary string `mapstructure:"ort_library"`
}

// DatasetConfig holds reference dataset settings.
type DatasetConfig struct {
	// Source selects the embedding dataset origin: "csv", "postgres" or "none".
	Source  string `mapstructure:"source"`
	Path    string `mapstructure:"path"`
	MaxRows int    `mapstructure:"max_rows"`
}

// EngineConfig holds descriptor engine settings.
type EngineConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// BatchConfig holds batch prediction settings.
type BatchConfig struct {
	MaxSize     int `mapstructure:"max_size"`
	Concurrency int `mapstructure:"concurrency"`
}

// Load reads configuration from environment variables with the MOLPREDICT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MOLPREDICT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "molpredict")
	v.SetDefault("db.password", "molpredict_secret")
	v.SetDefault("db.name", "molpredict_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "molpredict-models")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.prefix", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Model artifact defaults
	v.SetDefault("models.source", "local")
	v.SetDefault("models.dir", "models")
	v.SetDefault("models.backend", "")
	v.SetDefault("models.ort_library", "")

	// Dataset defaults
	v.SetDefault("dataset.source", "csv")
	v.SetDefault("dataset.path", "data/functional_groups.csv")
	v.SetDefault("dataset.max_rows", 10000)

	// Descriptor engine defaults
	v.SetDefault("engine.enabled", true)

	// Batch defaults
	v.SetDefault("batch.max_size", 100)
	v.SetDefault("batch.concurrency", 8)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "MOLPREDICT_SERVER_PORT",
		"server.read_timeout":  "MOLPREDICT_SERVER_READ_TIMEOUT",
		"server.write_timeout": "MOLPREDICT_SERVER_WRITE_TIMEOUT",
		"server.environment":   "MOLPREDICT_SERVER_ENVIRONMENT",
		"db.host":              "MOLPREDICT_DB_HOST",
		"db.port":              "MOLPREDICT_DB_PORT",
		"db.user":              "MOLPREDICT_DB_USER",
		"db.password":          "MOLPREDICT_DB_PASSWORD",
		"db.name":              "MOLPREDICT_DB_NAME",
		"db.sslmode":           "MOLPREDICT_DB_SSLMODE",
		"db.max_open":          "MOLPREDICT_DB_MAX_OPEN",
		"db.max_idle":          "MOLPREDICT_DB_MAX_IDLE",
		"s3.region":            "MOLPREDICT_S3_REGION",
		"s3.bucket":            "MOLPREDICT_S3_BUCKET",
		"s3.endpoint":          "MOLPREDICT_S3_ENDPOINT",
		"s3.access_key":        "MOLPREDICT_S3_ACCESS_KEY",
		"s3.secret_key":        "MOLPREDICT_S3_SECRET_KEY",
		"s3.prefix":            "MOLPREDICT_S3_PREFIX",
		"log.level":            "MOLPREDICT_LOG_LEVEL",
		"log.format":           "MOLPREDICT_LOG_FORMAT",
		"models.source":        "MOLPREDICT_MODELS_SOURCE",
		"models.dir":           "MOLPREDICT_MODELS_DIR",
		"models.backend":       "MOLPREDICT_MODELS_BACKEND",
		"models.ort_library":   "MOLPREDICT_MODELS_ORT_LIBRARY",
		"dataset.source":       "MOLPREDICT_DATASET_SOURCE",
		"dataset.path":         "MOLPREDICT_DATASET_PATH",
		"dataset.max_rows":     "MOLPREDICT_DATASET_MAX_ROWS",
		"engine.enabled":       "MOLPREDICT_ENGINE_ENABLED",
		"batch.max_size":       "MOLPREDICT_BATCH_MAX_SIZE",
		"batch.concurrency":    "MOLPREDICT_BATCH_CONCURRENCY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MOLPREDICT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MOLPREDICT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
		Prefix:    v.GetString("s3.prefix"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Models = ModelsConfig{
		Source:     v.GetString("models.source"),
		Dir:        v.GetString("models.dir"),
		Backend:    v.GetString("models.backend"),
		ORTLibrary: v.GetString("models.ort_library"),
	}
	cfg.Dataset = DatasetConfig{
		Source:  v.GetString("dataset.source"),
		Path:    v.GetString("dataset.path"),
		MaxRows: v.GetInt("dataset.max_rows"),
	}
	cfg.Engine = EngineConfig{
		Enabled: v.GetBool("engine.enabled"),
	}
	cfg.Batch = BatchConfig{
		MaxSize:     v.GetInt("batch.max_size"),
		Concurrency: v.GetInt("batch.concurrency"),
	}

	return cfg, nil
}
