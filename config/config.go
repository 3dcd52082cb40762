package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Env      string `envconfig:"ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Port     string `envconfig:"PORT" default:"5000"`

	ClientURL string `envconfig:"CLIENT_URL" default:"http://localhost:3000"`
	BaseURL   string `envconfig:"BASE_URL" default:"http://localhost:5000"`

	MongoURI string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDB  string `envconfig:"MONGO_DB" default:"bigtreat"`

	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"change_me_in_production"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@bigtreat.com"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"Admin User"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`

	UploadDir string `envconfig:"UPLOAD_DIR" default:"static/uploads"`

	RateLimitMax           int `envconfig:"RATE_LIMIT_MAX" default:"100"`
	RateLimitWindowSeconds int `envconfig:"RATE_LIMIT_WINDOW_SECONDS" default:"900"`
}

// Load reads .env if present, then processes the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
