package info_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/novabank/accounts/pkg/config"
	"github.com/novabank/accounts/pkg/service/info"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.App {
	return &config.App{
		RateLimit: &config.RateLimit{MaxRequests: 1, Window: time.Hour},
		Retry:     &config.Retry{MaxAttempts: 3, Delay: time.Millisecond},
		Build:     &config.Build{Version: "3.0"},
		Contact: &config.Contact{
			Message:       "Welcome to Novabank accounts related docs",
			Name:          "Accounts Dev Team",
			Email:         "accounts@novabank.example",
			OnCallSupport: []string{"(555) 555-1234", "(555) 523-1345"},
		},
	}
}

func TestGetBuildInfo(t *testing.T) {
	t.Parallel()
	svc := info.New(testConfig(), slog.Default())
	v, err := svc.GetBuildInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.0", v)
}

func TestGetBuildInfo_FallbackOnTimeout(t *testing.T) {
	t.Parallel()
	svc := info.NewWithSources(testConfig(), slog.Default(),
		func(context.Context) (string, error) { return "", context.DeadlineExceeded },
		func(context.Context) (string, error) { return "/opt/java/openjdk", nil },
	)
	v, err := svc.GetBuildInfo(context.Background())
	require.NoError(t, err, "exhausted retries degrade to the fallback")
	assert.Equal(t, info.BuildInfoFallback, v)
}

func TestGetJavaVersion_RateLimited(t *testing.T) {
	t.Parallel()
	svc := info.NewWithSources(testConfig(), slog.Default(),
		func(context.Context) (string, error) { return "3.0", nil },
		func(context.Context) (string, error) { return "/opt/java/openjdk", nil },
	)

	v, err := svc.GetJavaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/opt/java/openjdk", v)

	v, err = svc.GetJavaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, info.JavaVersionFallback, v, "rejected calls get the static fallback")
}

func TestContactInfo(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	svc := info.New(cfg, slog.Default())
	contact := svc.ContactInfo()
	assert.Equal(t, *cfg.Contact, contact)
	assert.Len(t, contact.OnCallSupport, 2)
}
