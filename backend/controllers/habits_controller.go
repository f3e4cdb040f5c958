package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"habitmaster/backend/apperr"
	"habitmaster/backend/config"
	"habitmaster/backend/models"
	"habitmaster/backend/store"
	"habitmaster/backend/utils"
)

type HabitsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewHabitsController(st *store.Store, cfg *config.Config) *HabitsController {
	return &HabitsController{Store: st, Cfg: cfg}
}

// GetData godoc
// @Summary Get month snapshot
// @Description Returns the user's active habits with completed days for one month
// @Tags habits
// @Produce json
// @Param userId query int true "User ID"
// @Param month query int false "Month (0-11)"
// @Param year query int false "Year"
// @Success 200 {array} models.HabitWithDays
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /data [get]
func (hc *HabitsController) GetData(c *fiber.Ctx) error {
	userParam := c.Query("userId")
	if userParam == "" {
		return utils.BadRequest(c, "UserId required")
	}
	userID, err := strconv.Atoi(userParam)
	if err != nil {
		return utils.BadRequest(c, "Invalid userId")
	}

	month := c.QueryInt("month")
	year := c.QueryInt("year")

	snapshot, err := hc.Store.MonthSnapshot(uint(userID), month, year)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch data")
	}

	// A user with no habits gets an empty list, not an error
	return c.JSON(snapshot)
}

// CreateHabit godoc
// @Summary Add a habit
// @Description Creates a habit for the user and returns it with an empty completed-day set
// @Tags habits
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "User ID and habit name"
// @Success 200 {object} models.HabitWithDays
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /habits [post]
func (hc *HabitsController) CreateHabit(c *fiber.Ctx) error {
	var input struct {
		UserID uint   `json:"userId"`
		Name   string `json:"name"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	habit, err := hc.Store.CreateHabit(input.UserID, input.Name)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			return utils.BadRequest(c, "Habit name required")
		}
		return utils.InternalServerError(c, "Could not create habit")
	}

	return c.JSON(models.HabitWithDays{
		ID:            habit.ID,
		Name:          habit.Name,
		CompletedDays: []int{},
	})
}

// DeleteHabit godoc
// @Summary Delete a habit
// @Description Removes the habit and all of its completions; deleting a missing habit succeeds
// @Tags habits
// @Produce json
// @Param id path int true "Habit ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /habits/{id} [delete]
func (hc *HabitsController) DeleteHabit(c *fiber.Ctx) error {
	habitID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid habit id")
	}

	if err := hc.Store.DeleteHabit(uint(habitID)); err != nil {
		return utils.InternalServerError(c, "Could not delete habit")
	}

	return c.JSON(fiber.Map{"success": true})
}
