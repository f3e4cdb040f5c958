package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"habitmaster/backend/apperr"
	"habitmaster/backend/config"
	"habitmaster/backend/store"
	"habitmaster/backend/utils"
)

type AuthController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewAuthController(st *store.Store, cfg *config.Config) *AuthController {
	return &AuthController{Store: st, Cfg: cfg}
}

// Login godoc
// @Summary Login by username
// @Description Returns the user with this name, creating it on first login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Username"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Store.ResolveOrCreateUser(input.Username)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			return utils.BadRequest(c, "Username required")
		}
		return utils.InternalServerError(c, "Could not resolve user")
	}

	return c.JSON(user)
}
