package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	accountssvc "github.com/novabank/accounts/pkg/service/accounts"
	"github.com/novabank/accounts/pkg/dto"
)

// AccountRoutes registers the CRUD endpoints of the accounts service.
func AccountRoutes(app *fiber.App, svc *accountssvc.Service) {
	app.Post("/api/create", CreateAccount(svc))
	app.Get("/api/fetch", FetchAccount(svc))
	app.Put("/api/update", UpdateAccount(svc))
	app.Delete("/api/delete", DeleteAccount(svc))
}

// CreateAccount handles creation of a new customer together with a new
// account.
func CreateAccount(svc *accountssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CustomerRequest](c)
		if input == nil {
			return err // error response already written
		}
		if err := svc.CreateAccount(c.Context(), dto.CustomerCreate{
			Name:         input.Name,
			Email:        input.Email,
			MobileNumber: input.MobileNumber,
		}); err != nil {
			log.Errorf("create account failed: %v", err)
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Couldn't create account", err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(SuccessResponse{
			StatusCode: StatusCreated,
			StatusMsg:  MessageCreated,
		})
	}
}

// FetchAccount returns the combined customer and account details for a
// mobile number.
func FetchAccount(svc *accountssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mobileNumber := c.Query("mobileNumber")
		view, err := svc.FetchAccount(c.Context(), mobileNumber)
		if err != nil {
			log.Errorf("fetch account failed: %v", err)
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Couldn't fetch account", err.Error())
		}
		return c.Status(fiber.StatusOK).JSON(view)
	}
}

// UpdateAccount applies a composite customer+account update. An account
// number that resolves to nothing answers 417 Expectation Failed, not a
// server error.
func UpdateAccount(svc *accountssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[CustomerAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		updated, err := svc.UpdateAccount(c.Context(), dto.CustomerAccountUpdate{
			Name:          input.Name,
			Email:         input.Email,
			MobileNumber:  input.MobileNumber,
			AccountNumber: input.Account.AccountNumber,
			AccountType:   input.Account.AccountType,
			BranchAddress: input.Account.BranchAddress,
		})
		if err != nil {
			log.Errorf("update account failed: %v", err)
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Couldn't update account", err.Error())
		}
		if !updated {
			return c.Status(fiber.StatusExpectationFailed).JSON(SuccessResponse{
				StatusCode: StatusExpectationFailed,
				StatusMsg:  MessageUpdateFailed,
			})
		}
		return c.Status(fiber.StatusOK).JSON(SuccessResponse{
			StatusCode: StatusOK,
			StatusMsg:  MessageOK,
		})
	}
}

// DeleteAccount removes the customer and account pair for a mobile number.
func DeleteAccount(svc *accountssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mobileNumber := c.Query("mobileNumber")
		deleted, err := svc.DeleteAccount(c.Context(), mobileNumber)
		if err != nil {
			log.Errorf("delete account failed: %v", err)
			return ErrorResponseJSON(c, ErrorToStatusCode(err), "Couldn't delete account", err.Error())
		}
		if !deleted {
			return c.Status(fiber.StatusExpectationFailed).JSON(SuccessResponse{
				StatusCode: StatusExpectationFailed,
				StatusMsg:  MessageDeleteFailed,
			})
		}
		return c.Status(fiber.StatusOK).JSON(SuccessResponse{
			StatusCode: StatusOK,
			StatusMsg:  MessageOK,
		})
	}
}
