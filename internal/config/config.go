package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config holds the environment-driven settings of the service. Defaults
// target local development against the Spanner emulator.
type Config struct {
	HTTPAddr        string `envconfig:"HTTP_ADDR"        default:":8080"`
	SpannerDatabase string `envconfig:"SPANNER_DATABASE" default:"projects/test-project/instances/emulator-instance/databases/catalog"`
	JWTSecret       string `envconfig:"JWT_SECRET"       required:"true"`
	LogLevel        string `envconfig:"LOG_LEVEL"        default:"info"`
	NodeID          int64  `envconfig:"NODE_ID"          default:"1"`
}

// Load reads an optional .env file and then the process environment.
func Load(logger *logrus.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf("error loading .env file (continuing): %v", err)
		}
	} else {
		logger.Info("loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
