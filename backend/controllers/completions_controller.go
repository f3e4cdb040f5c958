package controllers

import (
	"github.com/gofiber/fiber/v2"

	"habitmaster/backend/config"
	"habitmaster/backend/store"
	"habitmaster/backend/utils"
)

type CompletionsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewCompletionsController(st *store.Store, cfg *config.Config) *CompletionsController {
	return &CompletionsController{Store: st, Cfg: cfg}
}

// Toggle godoc
// @Summary Toggle a day
// @Description Flips the completion mark for one habit on one day
// @Tags completions
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Habit ID, day, month, year"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /toggle [post]
func (cc *CompletionsController) Toggle(c *fiber.Ctx) error {
	var input struct {
		HabitID uint `json:"habitId"`
		Day     int  `json:"day"`
		Month   int  `json:"month"`
		Year    int  `json:"year"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	status, err := cc.Store.Toggle(input.HabitID, input.Day, input.Month, input.Year)
	if err != nil {
		return utils.InternalServerError(c, "Could not toggle completion")
	}

	return c.JSON(fiber.Map{"status": status})
}
