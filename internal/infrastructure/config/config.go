package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	// SeedDemo inserts demo laborers into an empty collection at startup.
	// Off by default; the service never wipes or reseeds on its own.
	SeedDemo bool `env:"SEED_DEMO, default=false"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Upload UploadConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=laborer_cms"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type UploadConfig struct {
	// Dir is the filesystem directory pictures are written to.
	Dir string `env:"UPLOAD_DIR, default=./uploads"`
	// PublicPath is the URL prefix the directory is served under; it is also
	// the prefix stored in each record's picture field.
	PublicPath string `env:"UPLOAD_PUBLIC_PATH, default=/uploads"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
