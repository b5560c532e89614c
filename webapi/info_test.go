package webapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/novabank/accounts/internal/fixtures"
	"github.com/novabank/accounts/pkg/accountnumber"
	"github.com/novabank/accounts/pkg/resilience"
	accountssvc "github.com/novabank/accounts/pkg/service/accounts"
	infosvc "github.com/novabank/accounts/pkg/service/info"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInfoApp(t *testing.T, buildSource, javaSource resilience.Operation[string]) *fiber.App {
	t.Helper()
	uow := fixtures.NewMemoryUoW(fixtures.NewMemoryStore())
	accountsSvc := accountssvc.New(uow, accountnumber.New(), slog.Default())
	infoSvc := infosvc.NewWithSources(testConfig(), slog.Default(), buildSource, javaSource)
	return NewApp(accountsSvc, infoSvc)
}

func getText(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, target, nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestGetBuildInfo_Endpoint(t *testing.T) {
	app := setupInfoApp(t,
		func(context.Context) (string, error) { return "3.0", nil },
		func(context.Context) (string, error) { return "/opt/java/openjdk", nil },
	)
	status, body := getText(t, app, "/api/build-info")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "3.0", body)
}

func TestGetBuildInfo_FallbackOnTimeout(t *testing.T) {
	app := setupInfoApp(t,
		func(context.Context) (string, error) { return "", context.DeadlineExceeded },
		func(context.Context) (string, error) { return "/opt/java/openjdk", nil },
	)
	status, body := getText(t, app, "/api/build-info")
	assert.Equal(t, fiber.StatusOK, status, "the fallback keeps the endpoint healthy")
	assert.Equal(t, infosvc.BuildInfoFallback, body)
}

func TestGetJavaVersion_FallbackWhenRateLimited(t *testing.T) {
	app := setupInfoApp(t,
		func(context.Context) (string, error) { return "3.0", nil },
		func(context.Context) (string, error) { return "/opt/java/openjdk", nil },
	)
	status, body := getText(t, app, "/api/java-version")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "/opt/java/openjdk", body)

	status, body = getText(t, app, "/api/java-version")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, infosvc.JavaVersionFallback, body, "excess calls degrade to the fallback")
}

func TestGetContactInfo_Endpoint(t *testing.T) {
	app, _ := setupTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/contact-info", nil)
	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var contact ContactInfoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&contact))
	assert.Equal(t, "Accounts Dev Team", contact.ContactName)
	assert.Equal(t, "accounts@novabank.example", contact.ContactEmail)
	assert.Len(t, contact.OnCallSupport, 2)
}
