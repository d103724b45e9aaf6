package handlers

import (
	"github.com/fairsplit/fairsplit-backend/auth"
	"github.com/fairsplit/fairsplit-backend/repository"
	"github.com/fairsplit/fairsplit-backend/services"
)

// Registry contains all handler dependencies
type Registry struct {
	Auth       *AuthHandler
	User       *UserHandler
	Group      *GroupHandler
	Expense    *ExpenseHandler
	Balance    *BalanceHandler
	Settlement *SettlementHandler
	Export     *ExportHandler
}

// NewRegistry wires repositories, services and handlers together
func NewRegistry(jwtManager *auth.JWTManager) *Registry {
	userRepo := repository.NewUserRepository()
	groupRepo := repository.NewGroupRepository()
	expenseRepo := repository.NewExpenseRepository()
	settlementRepo := repository.NewSettlementRepository()

	splitService := services.NewSplitService()
	debtService := services.NewDebtService()
	userService := services.NewUserService(userRepo)
	groupService := services.NewGroupService(groupRepo, userRepo)
	expenseService := services.NewExpenseService(expenseRepo, groupRepo, settlementRepo, splitService)
	settlementService := services.NewSettlementService(settlementRepo, groupRepo)
	balanceService := services.NewBalanceService(groupRepo, expenseRepo, settlementRepo, debtService)
	exportService := services.NewExportService(groupService, expenseService, settlementService, balanceService)

	return &Registry{
		Auth:       NewAuthHandler(userService, jwtManager),
		User:       NewUserHandler(userService),
		Group:      NewGroupHandler(groupService),
		Expense:    NewExpenseHandler(expenseService),
		Balance:    NewBalanceHandler(balanceService),
		Settlement: NewSettlementHandler(settlementService),
		Export:     NewExportHandler(exportService),
	}
}
