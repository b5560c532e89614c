package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the optional .env file and processes the environment into an
// App config. A missing .env file is not an error; the process environment
// still applies.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	path := ""
	if len(envFilePath) > 0 {
		path = envFilePath[0]
	}
	var err error
	if path != "" {
		err = godotenv.Load(path)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		logger.Warn("No .env file found, using system environment variables")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"db", maskValue(cfg.DB.Url),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"retry_max_attempts", cfg.Retry.MaxAttempts,
		"retry_delay", cfg.Retry.Delay,
		"build_version", cfg.Build.Version,
	)
	return &cfg, nil
}

func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:2] + "****" + v[len(v)-4:]
}
