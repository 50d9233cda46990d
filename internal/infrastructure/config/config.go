package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,           default=8080"`
	Env           string `env:"ENV,            default=development"`
	SessionSecret string `env:"SESSION_SECRET, default=lamare-dev-secret"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`
	Workers       int    `env:"WORKERS,        default=4"`
	CameraDevice  string `env:"CAMERA_DEVICE"`

	Mongo MongoConfig
	Redis RedisConfig
	GenAI GenAIConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=creator_studio"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type GenAIConfig struct {
	APIKey  string `env:"GENAI_API_KEY"`
	BaseURL string `env:"GENAI_BASE_URL"`
	Model   string `env:"GENAI_MODEL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
