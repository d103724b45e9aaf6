package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fairsplit/fairsplit-backend/middleware"
	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/services"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// GroupHandler handles group and membership requests
type GroupHandler struct {
	groupService *services.GroupService
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroup handles POST /api/groups
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var request models.CreateGroupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	group, err := h.groupService.CreateGroup(request.Name, middleware.CallerID(c), request.InitialMembers)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, group)
}

// JoinGroup handles POST /api/groups/join
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	var request models.JoinGroupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	group, err := h.groupService.JoinGroup(request.InviteToken, middleware.CallerID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, group)
}

// GetUserGroups handles GET /api/groups
func (h *GroupHandler) GetUserGroups(c *gin.Context) {
	groups, err := h.groupService.GetUserGroups(middleware.CallerID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, groups)
}

// GetMembers handles GET /api/groups/:groupId/members
func (h *GroupHandler) GetMembers(c *gin.Context) {
	members, err := h.groupService.GetMembers(c.Param("groupId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, members)
}
