package config

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. Production JSON output by
// default; set APP_ENV=development for console output.
func NewLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error
	if os.Getenv("APP_ENV") == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
