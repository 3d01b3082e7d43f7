package postponed

import (
	"joyful-cargo/logger"
	"joyful-cargo/middleware"
	postponedService "joyful-cargo/services/postponed"
	postponedTypes "joyful-cargo/types/postponed"
	"joyful-cargo/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PostponedController handles postponed-order HTTP requests
type PostponedController struct {
	Service *postponedService.Service
	Logger  *logger.AsyncLogger
}

// NewPostponedController creates a new postponed order controller
func NewPostponedController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *PostponedController {
	return &PostponedController{
		Service: postponedService.NewService(db),
		Logger:  asyncLogger,
	}
}

// Index lists all unresolved postponed orders.
func (po *PostponedController) Index(c *fiber.Ctx) error {
	orders, err := po.Service.ListActive()
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", orders)
}

// Show returns one postponed order with its parcel details.
func (po *PostponedController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid postponed order id")
	}

	order, err := po.Service.Get(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", order)
}

// Update patches delivery date and/or notes.
func (po *PostponedController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid postponed order id")
	}

	var req postponedTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.RespondBadRequest(c, "Invalid request body")
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.RespondUnauthorized(c, "Authentication required")
	}

	order, err := po.Service.Update(uint(id), req, actorID)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "Postponed order updated", order)
}

// Resolve closes the order and returns its parcel to pending.
func (po *PostponedController) Resolve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid postponed order id")
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.RespondUnauthorized(c, "Authentication required")
	}

	order, err := po.Service.Resolve(uint(id), actorID)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "Order resolved", order)
}

// Stats returns the count of unresolved orders.
func (po *PostponedController) Stats(c *fiber.Ctx) error {
	count, err := po.Service.CountActive()
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", fiber.Map{"active_postponed": count})
}
