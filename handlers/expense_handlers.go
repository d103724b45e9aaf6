package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairsplit/fairsplit-backend/middleware"
	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/services"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// ExpenseHandler handles expense requests
type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpense handles POST /api/expenses
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var request models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	if err := utils.ValidateSplitType(request.SplitType); err != nil {
		utils.HandleError(c, err)
		return
	}

	draft := request.ToDraft(middleware.CallerID(c))
	expense, err := h.expenseService.CreateExpense(draft)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListGroupExpenses handles GET /api/groups/:groupId/expenses
func (h *ExpenseHandler) ListGroupExpenses(c *gin.Context) {
	expenses, err := h.expenseService.GetGroupExpenses(c.Param("groupId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, expenses)
}

// DeleteExpense handles DELETE /api/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
