package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fairsplit/fairsplit-backend/auth"
	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/services"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	userService *services.UserService
	jwtManager  *auth.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService *services.UserService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var request models.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	user, err := h.userService.Register(request.Name, request.Email, request.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, user)
}

// Login handles POST /api/auth/login. The returned token is the session: it
// begins here and ends when the client discards it or it expires.
func (h *AuthHandler) Login(c *gin.Context) {
	var request models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError("Invalid request"))
		return
	}

	user, err := h.userService.Login(request.Email, request.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		utils.HandleError(c, utils.NewInternalError("Failed to issue token"))
		return
	}

	utils.HandleSuccess(c, models.LoginResponse{Token: token, User: user})
}
