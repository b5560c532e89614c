package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	infosvc "github.com/novabank/accounts/pkg/service/info"
)

// InfoRoutes registers the informational endpoints. The resilience policies
// live in the info service, not here; these handlers only surface results.
func InfoRoutes(app *fiber.App, svc *infosvc.Service) {
	app.Get("/api/build-info", GetBuildInfo(svc))
	app.Get("/api/java-version", GetJavaVersion(svc))
	app.Get("/api/contact-info", GetContactInfo(svc))
}

// GetBuildInfo serves the deployed build version, retried with fallback.
func GetBuildInfo(svc *infosvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.GetBuildInfo(c.Context())
		if err != nil {
			log.Errorf("build info failed: %v", err)
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Couldn't read build info", err.Error())
		}
		return c.Status(fiber.StatusOK).SendString(v)
	}
}

// GetJavaVersion serves the runtime's JAVA_HOME, rate limited with fallback.
func GetJavaVersion(svc *infosvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.GetJavaVersion(c.Context())
		if err != nil {
			log.Errorf("java version failed: %v", err)
			return ErrorResponseJSON(c, fiber.StatusInternalServerError, "Couldn't read java version", err.Error())
		}
		return c.Status(fiber.StatusOK).SendString(v)
	}
}

// GetContactInfo serves the configured support contact details.
func GetContactInfo(svc *infosvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contact := svc.ContactInfo()
		return c.Status(fiber.StatusOK).JSON(ContactInfoResponse{
			Message:       contact.Message,
			ContactName:   contact.Name,
			ContactEmail:  contact.Email,
			OnCallSupport: contact.OnCallSupport,
		})
	}
}
