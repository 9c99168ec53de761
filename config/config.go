package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	MongoURI    string `envconfig:"MONGO_URI"    default:"mongodb://localhost:27017"`
	MongoDBName string `envconfig:"MONGO_DBNAME" default:"catalog_db"`
	HTTPPort    string `envconfig:"HTTP_PORT"    default:":8080"`
	LogLevel    string `envconfig:"LOG_LEVEL"    default:"info"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		if err := envconfig.Process("", &config); err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: HTTP Port=%s, LogLevel=%s, Database=%s",
			config.HTTPPort, config.LogLevel, config.MongoDBName)
	})
	return &config
}
