package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairsplit/fairsplit-backend/services"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// ExportHandler handles ledger export requests
type ExportHandler struct {
	exportService *services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportGroup handles POST /api/groups/:groupId/export
func (h *ExportHandler) ExportGroup(c *gin.Context) {
	file, filename, err := h.exportService.ExportGroupToExcel(c.Param("groupId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
