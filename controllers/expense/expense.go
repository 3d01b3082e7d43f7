package expense

import (
	"errors"

	"joyful-cargo/logger"
	"joyful-cargo/middleware"
	expenseModel "joyful-cargo/models/expense"
	expenseTypes "joyful-cargo/types/expense"
	"joyful-cargo/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ExpenseController handles expense HTTP requests
type ExpenseController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewExpenseController creates a new expense controller
func NewExpenseController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ExpenseController {
	return &ExpenseController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Index lists expenses, newest first.
func (ec *ExpenseController) Index(c *fiber.Ctx) error {
	var expenses []expenseModel.Expense
	if err := ec.DB.Preload("Category").Order("date DESC").Find(&expenses).Error; err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", expenses)
}

// Show returns one expense.
func (ec *ExpenseController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid expense id")
	}

	var exp expenseModel.Expense
	if err := ec.DB.Preload("Category").First(&exp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondNotFound(c, "Expense not found")
		}
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", exp)
}

// Store books a new expense for the authenticated user.
func (ec *ExpenseController) Store(c *fiber.Ctx) error {
	var req expenseTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.RespondBadRequest(c, "Invalid request body")
	}

	if req.CategoryID == 0 {
		return utils.RespondBadRequest(c, "category_id is required")
	}
	if req.Amount <= 0 {
		return utils.RespondBadRequest(c, "amount must be positive")
	}

	var category expenseModel.Category
	if err := ec.DB.First(&category, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondNotFound(c, "Expense category not found")
		}
		return utils.RespondError(c, err)
	}

	actorID, ok := middleware.ActorID(c)
	if !ok {
		return utils.RespondUnauthorized(c, "Authentication required")
	}

	exp := expenseModel.Expense{
		CategoryID:  req.CategoryID,
		UserID:      actorID,
		Description: req.Description,
		Amount:      req.Amount,
	}
	if req.Date != nil && *req.Date != "" {
		date, err := utils.ParseTimestamp(*req.Date)
		if err != nil {
			return utils.RespondBadRequest(c, "Invalid date format")
		}
		exp.Date = date
	}

	if err := ec.DB.Create(&exp).Error; err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondCreated(c, "Expense created", exp)
}

// Update patches an existing expense.
func (ec *ExpenseController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid expense id")
	}

	var req expenseTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return utils.RespondBadRequest(c, "Invalid request body")
	}

	var exp expenseModel.Expense
	if err := ec.DB.First(&exp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondNotFound(c, "Expense not found")
		}
		return utils.RespondError(c, err)
	}

	if req.CategoryID != nil {
		var category expenseModel.Category
		if err := ec.DB.First(&category, *req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.RespondNotFound(c, "Expense category not found")
			}
			return utils.RespondError(c, err)
		}
		exp.CategoryID = *req.CategoryID
	}
	if req.Description != nil {
		exp.Description = req.Description
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return utils.RespondBadRequest(c, "amount must be positive")
		}
		exp.Amount = *req.Amount
	}
	if req.Date != nil && *req.Date != "" {
		date, err := utils.ParseTimestamp(*req.Date)
		if err != nil {
			return utils.RespondBadRequest(c, "Invalid date format")
		}
		exp.Date = date
	}

	if err := ec.DB.Save(&exp).Error; err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "Expense updated", exp)
}

// Destroy removes an expense.
func (ec *ExpenseController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.RespondBadRequest(c, "Invalid expense id")
	}

	var exp expenseModel.Expense
	if err := ec.DB.First(&exp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.RespondNotFound(c, "Expense not found")
		}
		return utils.RespondError(c, err)
	}

	if err := ec.DB.Delete(&exp).Error; err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "Expense deleted", nil)
}

// Categories lists all expense categories.
func (ec *ExpenseController) Categories(c *fiber.Ctx) error {
	var categories []expenseModel.Category
	if err := ec.DB.Order("name").Find(&categories).Error; err != nil {
		return utils.RespondError(c, err)
	}
	return utils.RespondOK(c, "", categories)
}
