package parcel

import (
	"joyful-cargo/logger"
	"joyful-cargo/middleware"
	parcelModel "joyful-cargo/models/parcel"
	parcelService "joyful-cargo/services/parcel"
	"joyful-cargo/types"
	parcelTypes "joyful-cargo/types/parcel"
	"joyful-cargo/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ParcelController handles parcel lifecycle HTTP requests
type ParcelController struct {
	Service *parcelService.Service
	Logger  *logger.AsyncLogger
}

// NewParcelController creates a new parcel controller
func NewParcelController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ParcelController {
	return &ParcelController{
		Service: parcelService.NewService(db),
		Logger:  asyncLogger,
	}
}

// Index lists parcels with pagination, status filter and search.
func (pc *ParcelController) Index(c *fiber.Ctx) error {
	page, limit := utils.Pagination(c)
	status := parcelModel.Status(c.Query("status"))
	search := c.Query("search")

	parcels, total, err := pc.Service.List(status, search, page, limit)
	if err != nil {
		return utils.RespondError(c, err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status: fiber.StatusOK,
		Data:   parcels,
		Meta: types.PageMeta{
			Page:  page,
			Pages: pages,
			Total: total,
			Limit: limit,
		},
	})
}

// Show returns one parcel.
func (pc *ParcelController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid parcel id")
	}

	p, err := pc.Service.Get(uint(id))
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", p)
}

// Store creates a new parcel owned by the authenticated user.
func (pc *ParcelController) Store(c *fiber.Ctx) error {
	var req parcelTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.RespondBadRequest(c, "Invalid request body")
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.RespondUnauthorized(c, "Authentication required")
	}

	p, err := pc.Service.Create(req, actorID)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondCreated(c, "Parcel created successfully", p)
}

// Update merges the supplied fields over an existing parcel.
func (pc *ParcelController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid parcel id")
	}

	var req parcelTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.RespondBadRequest(c, "Invalid request body")
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.RespondUnauthorized(c, "Authentication required")
	}

	p, err := pc.Service.Update(uint(id), req, actorID)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "Parcel updated", p)
}

// UpdateStatus applies a status transition only.
func (pc *ParcelController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid parcel id")
	}

	var req parcelTypes.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.RespondBadRequest(c, "Invalid request body")
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.RespondUnauthorized(c, "Authentication required")
	}

	p, err := pc.Service.ChangeStatus(uint(id), req.Status, req.Notes, actorID)
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "Status updated", p)
}

// Destroy deletes a parcel and its attached postponed order.
func (pc *ParcelController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid parcel id")
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.RespondUnauthorized(c, "Authentication required")
	}

	if err := pc.Service.Delete(uint(id), actorID); err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "Parcel deleted", nil)
}

// Overdue lists all parcels stuck in the overdue status.
func (pc *ParcelController) Overdue(c *fiber.Ctx) error {
	parcels, err := pc.Service.ListOverdue()
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", parcels)
}

// Stats returns simple per-status counts.
func (pc *ParcelController) Stats(c *fiber.Ctx) error {
	stats, err := pc.Service.Stats()
	if err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", stats)
}
