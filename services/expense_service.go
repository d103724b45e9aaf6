package services

import (
	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/repository"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// ExpenseService handles expense creation, listing and deletion. Validation
// and split computation are delegated to the split calculator; this service
// only orchestrates the repositories around it.
type ExpenseService struct {
	expenseRepo    *repository.ExpenseRepository
	groupRepo      *repository.GroupRepository
	settlementRepo *repository.SettlementRepository
	splitService   *SplitService
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo *repository.ExpenseRepository, groupRepo *repository.GroupRepository,
	settlementRepo *repository.SettlementRepository, splitService *SplitService) *ExpenseService {
	return &ExpenseService{
		expenseRepo:    expenseRepo,
		groupRepo:      groupRepo,
		settlementRepo: settlementRepo,
		splitService:   splitService,
	}
}

// CreateExpense validates the draft against the group's member list, computes
// its splits and persists expense and splits atomically. Nothing is stored if
// validation fails.
func (s *ExpenseService) CreateExpense(draft models.ExpenseDraft) (*models.Expense, error) {
	if _, err := s.groupRepo.GetGroupByID(draft.GroupID); err != nil {
		return nil, utils.NewNotFoundError("Group")
	}

	members, err := s.groupRepo.GetMembers(draft.GroupID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve group members")
	}

	splits, err := s.splitService.ComputeSplits(draft, members)
	if err != nil {
		return nil, err
	}

	expense := models.NewExpense(draft, splits)
	if err := s.expenseRepo.StoreExpense(expense); err != nil {
		return nil, utils.NewInternalError("Failed to store expense")
	}
	return expense, nil
}

// GetGroupExpenses returns all expenses for a group with their splits
func (s *ExpenseService) GetGroupExpenses(groupID string) ([]*models.Expense, error) {
	if _, err := s.groupRepo.GetGroupByID(groupID); err != nil {
		return nil, utils.NewNotFoundError("Group")
	}
	expenses, err := s.expenseRepo.GetExpensesByGroup(groupID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve expenses")
	}
	if expenses == nil {
		expenses = []*models.Expense{}
	}
	return expenses, nil
}

// DeleteExpense removes an expense and its splits atomically. Deletion is
// refused once settlements exist in the group, because people may already
// have paid against the balances this expense produced.
func (s *ExpenseService) DeleteExpense(expenseID string) error {
	expense, err := s.expenseRepo.GetExpenseByID(expenseID)
	if err != nil {
		return utils.NewNotFoundError("Expense")
	}

	hasSettlements, err := s.settlementRepo.ExistsByGroup(expense.GroupID)
	if err != nil {
		return utils.NewInternalError("Failed to check settlements")
	}
	if hasSettlements {
		return utils.NewConflictError("Cannot delete expense: settlements exist in this group")
	}

	deleted, err := s.expenseRepo.DeleteExpense(expenseID)
	if err != nil {
		return utils.NewInternalError("Failed to delete expense")
	}
	if !deleted {
		return utils.NewNotFoundError("Expense")
	}
	return nil
}
