package webapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	accountssvc "github.com/novabank/accounts/pkg/service/accounts"
	infosvc "github.com/novabank/accounts/pkg/service/info"
)

// NewApp wires the Fiber application: middleware, error handler, and routes.
// The per-IP limiter here is coarse transport protection; the operation-level
// admission gate on java-version is configured in the info service.
func NewApp(accountsSvc *accountssvc.Service, infoSvc *infosvc.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())
	app.Use(logger.New())

	AccountRoutes(app, accountsSvc)
	InfoRoutes(app, infoSvc)

	return app
}
