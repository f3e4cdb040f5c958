package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"habitmaster/backend/analytics"
	"habitmaster/backend/config"
	"habitmaster/backend/store"
	"habitmaster/backend/utils"
)

type AnalyticsController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewAnalyticsController(st *store.Store, cfg *config.Config) *AnalyticsController {
	return &AnalyticsController{Store: st, Cfg: cfg}
}

// GetMonthlyAnalytics godoc
// @Summary Get monthly analytics
// @Description Computes completion rate, best habit, daily counts and busiest day for one month
// @Tags analytics
// @Produce json
// @Param userId query int true "User ID"
// @Param month query int false "Month (0-11)"
// @Param year query int false "Year"
// @Success 200 {object} analytics.Summary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /analytics [get]
func (ac *AnalyticsController) GetMonthlyAnalytics(c *fiber.Ctx) error {
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

	snapshot, err := ac.Store.MonthSnapshot(uint(userID), month, year)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch data")
	}

	return c.JSON(analytics.Compute(snapshot, analytics.DaysInMonth(month)))
}
