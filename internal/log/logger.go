package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

func New(environment string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    environment == "production",
	}

	logger := zerolog.New(output).With().
		Timestamp().
		Logger()

	if environment == "dev" {
		return logger.Level(zerolog.DebugLevel)
	}
	return logger.Level(zerolog.InfoLevel)
}
