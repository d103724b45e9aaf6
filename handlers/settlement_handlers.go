package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/services"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// SettlementHandler handles settlement requests
type SettlementHandler struct {
	settlementService *services.SettlementService
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(settlementService *services.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementService: settlementService}
}

// CreateSettlement handles POST /api/settlements
func (h *SettlementHandler) CreateSettlement(c *gin.Context) {
	var request models.CreateSettlementRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	settlement, err := h.settlementService.CreateSettlement(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, settlement)
}

// ListGroupSettlements handles GET /api/groups/:groupId/settlements
func (h *SettlementHandler) ListGroupSettlements(c *gin.Context) {
	settlements, err := h.settlementService.GetGroupSettlements(c.Param("groupId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, settlements)
}

// MarkSettled handles POST /api/settlements/:id/settle
func (h *SettlementHandler) MarkSettled(c *gin.Context) {
	settlement, err := h.settlementService.MarkSettled(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, settlement)
}
