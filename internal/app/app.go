// Package app holds the shared startup plumbing of the executables:
// environment loading, logger configuration, and client construction.
// Clients are built here and passed down explicitly; nothing below this
// package reads the environment.
package app

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rider_voc_sync/internal/sheet"
	"rider_voc_sync/internal/store"
)

// SetupEnvironment loads .env file and configures zerolog output and log
// level, then tags every log line of this process with a fresh run id.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	// Configure logging
	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// GetRequiredEnv fetches a required environment variable or exits if not set.
func GetRequiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Msgf("%s environment variable is required", key)
	}
	return value
}

// GetEnvWithDefault fetches an environment variable with a default fallback.
func GetEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// NewSheetClient builds the Sheets client from the service-account env
// vars. Env files store the private key with literal "\n" escapes; those
// are normalized here.
func NewSheetClient(ctx context.Context) *sheet.Client {
	clientEmail := GetRequiredEnv("GOOGLE_CLIENT_EMAIL")
	privateKey := strings.ReplaceAll(GetRequiredEnv("GOOGLE_PRIVATE_KEY"), `\n`, "\n")

	client, err := sheet.NewClient(ctx, clientEmail, privateKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets client")
	}

	log.Debug().Str("client_email", clientEmail).Msg("Sheets client initialized")
	return client
}

// NewStore connects to the database named by urlEnv. The admin flows
// pass a different env key than the read-only ones; privileged access is
// a deliberate, visible choice at each call site.
func NewStore(ctx context.Context, urlEnv string) *store.Store {
	st, err := store.New(ctx, GetRequiredEnv(urlEnv))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	log.Debug().Msg("Database connection established")
	return st
}
