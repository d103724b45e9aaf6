package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fairsplit/fairsplit-backend/services"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// BalanceHandler handles balance and debt requests
type BalanceHandler struct {
	balanceService *services.BalanceService
}

// NewBalanceHandler creates a new balance handler
func NewBalanceHandler(balanceService *services.BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceService: balanceService}
}

// GetGroupBalances handles GET /api/groups/:groupId/balances
func (h *BalanceHandler) GetGroupBalances(c *gin.Context) {
	balances, err := h.balanceService.GetGroupBalances(c.Param("groupId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, balances)
}

// GetGroupDebts handles GET /api/groups/:groupId/debts
func (h *BalanceHandler) GetGroupDebts(c *gin.Context) {
	debts, err := h.balanceService.GetGroupDebts(c.Param("groupId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, debts)
}
