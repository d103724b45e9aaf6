package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fairsplit/fairsplit-backend/auth"
	"github.com/fairsplit/fairsplit-backend/handlers"
	"github.com/fairsplit/fairsplit-backend/middleware"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, h *handlers.Registry, jwtManager *auth.JWTManager) {
	api := router.Group("/api")

	// Public endpoints
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	// Everything else requires a session
	protected := api.Group("")
	protected.Use(middleware.AuthRequired(jwtManager))
	{
		protected.GET("/users/friends", h.User.GetFriends)

		protected.POST("/groups", h.Group.CreateGroup)
		protected.POST("/groups/join", h.Group.JoinGroup)
		protected.GET("/groups", h.Group.GetUserGroups)
		protected.GET("/groups/:groupId/members", h.Group.GetMembers)

		protected.POST("/expenses", h.Expense.CreateExpense)
		protected.GET("/groups/:groupId/expenses", h.Expense.ListGroupExpenses)
		protected.DELETE("/expenses/:id", h.Expense.DeleteExpense)

		protected.GET("/groups/:groupId/balances", h.Balance.GetGroupBalances)
		protected.GET("/groups/:groupId/debts", h.Balance.GetGroupDebts)

		protected.POST("/settlements", h.Settlement.CreateSettlement)
		protected.GET("/groups/:groupId/settlements", h.Settlement.ListGroupSettlements)
		protected.POST("/settlements/:id/settle", h.Settlement.MarkSettled)

		protected.POST("/groups/:groupId/export", h.Export.ExportGroup)
	}
}
