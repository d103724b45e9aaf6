package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fairsplit/fairsplit-backend/middleware"
	"github.com/fairsplit/fairsplit-backend/services"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// UserHandler handles user directory requests
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetFriends handles GET /api/users/friends
func (h *UserHandler) GetFriends(c *gin.Context) {
	friends, err := h.userService.GetFriends(middleware.CallerID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, friends)
}
