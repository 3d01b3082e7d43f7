package dashboard

import (
	"joyful-cargo/logger"
	analyticsService "joyful-cargo/services/analytics"
	"joyful-cargo/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardController exposes the read-only reporting views
type DashboardController struct {
	Service *analyticsService.Service
	Logger  *logger.AsyncLogger
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *DashboardController {
	return &DashboardController{
		Service: analyticsService.NewService(db),
		Logger:  asyncLogger,
	}
}

// Root is a liveness check for the dashboard group.
func (dc *DashboardController) Root(c *fiber.Ctx) error {
	return utils.RespondOK(c, "Dashboard API is running", nil)
}

// Overview returns revenue totals and active/overdue counts.
func (dc *DashboardController) Overview(c *fiber.Ctx) error {
	overview, err := dc.Service.Overview()
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", overview)
}

// RevenueTrend returns the monthly paid revenue of the trailing 180 days.
func (dc *DashboardController) RevenueTrend(c *fiber.Ctx) error {
	trend, err := dc.Service.RevenueTrend()
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", trend)
}

// Stats returns parcel counts and the all-time expense total.
func (dc *DashboardController) Stats(c *fiber.Ctx) error {
	stats, err := dc.Service.DashboardStats()
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "Dashboard stats", stats)
}
