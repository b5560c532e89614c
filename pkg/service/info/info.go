// Package info serves the auxiliary informational reads of the accounts
// service, each wrapped in a resilience policy: build-info behind
// retry-with-fallback, java-version behind rate-limit-with-fallback. The
// wrapped operations never surface a timeout or an over-limit rejection to
// the caller; they degrade to the configured fallback values instead.
package info

import (
	"context"
	"log/slog"
	"os"

	"github.com/novabank/accounts/pkg/config"
	"github.com/novabank/accounts/pkg/resilience"
)

// Fallback values served when the primary path cannot complete.
const (
	BuildInfoFallback   = "0.9"
	JavaVersionFallback = "Java 17"
)

// Service exposes the decorated informational operations plus the static
// contact details.
type Service struct {
	buildInfo   resilience.Operation[string]
	javaVersion resilience.Operation[string]
	contact     config.Contact
	logger      *slog.Logger
}

// New creates a Service reading the build version from configuration and the
// Java version from the process environment.
func New(cfg *config.App, logger *slog.Logger) *Service {
	version := cfg.Build.Version
	return NewWithSources(cfg, logger,
		func(context.Context) (string, error) {
			return version, nil
		},
		func(context.Context) (string, error) {
			return os.Getenv("JAVA_HOME"), nil
		},
	)
}

// NewWithSources creates a Service around explicit source operations. The
// resilience policies are applied here, so sources stay policy-free.
func NewWithSources(
	cfg *config.App,
	logger *slog.Logger,
	buildSource resilience.Operation[string],
	javaSource resilience.Operation[string],
) *Service {
	s := &Service{
		contact: *cfg.Contact,
		logger:  logger,
	}
	s.buildInfo = resilience.WithRetry(
		resilience.RetryPolicy{
			MaxAttempts: cfg.Retry.MaxAttempts,
			Delay:       cfg.Retry.Delay,
		},
		buildSource,
		s.logFallback("buildInfo", resilience.StaticFallback(BuildInfoFallback)),
	)
	s.javaVersion = resilience.WithRateLimit(
		resilience.RateLimitPolicy{
			MaxRequests: cfg.RateLimit.MaxRequests,
			Window:      cfg.RateLimit.Window,
		},
		javaSource,
		s.logFallback("javaVersion", resilience.StaticFallback(JavaVersionFallback)),
	)
	return s
}

// GetBuildInfo returns the deployed build version, or the "0.9" fallback
// once retries against a timing-out source are exhausted.
func (s *Service) GetBuildInfo(ctx context.Context) (string, error) {
	return s.buildInfo(ctx)
}

// GetJavaVersion returns the runtime's JAVA_HOME value, or the "Java 17"
// fallback for calls rejected by the admission gate.
func (s *Service) GetJavaVersion(ctx context.Context) (string, error) {
	return s.javaVersion(ctx)
}

// ContactInfo returns the configured support contact details.
func (s *Service) ContactInfo() config.Contact {
	return s.contact
}

func (s *Service) logFallback(op string, fb resilience.Fallback[string]) resilience.Fallback[string] {
	return func(ctx context.Context, err error) (string, error) {
		s.logger.Warn("serving fallback response", "operation", op, "reason", err)
		return fb(ctx, err)
	}
}
