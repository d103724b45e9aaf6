package services

import (
	"sort"

	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/repository"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// BalanceService folds a group's expenses and settlements into one net
// balance per member, and derives the suggested transfers that settle them.
type BalanceService struct {
	groupRepo      *repository.GroupRepository
	expenseRepo    *repository.ExpenseRepository
	settlementRepo *repository.SettlementRepository
	debtService    *DebtService
}

// NewBalanceService creates a new balance service
func NewBalanceService(groupRepo *repository.GroupRepository, expenseRepo *repository.ExpenseRepository,
	settlementRepo *repository.SettlementRepository, debtService *DebtService) *BalanceService {
	return &BalanceService{
		groupRepo:      groupRepo,
		expenseRepo:    expenseRepo,
		settlementRepo: settlementRepo,
		debtService:    debtService,
	}
}

// CalculateNetBalances aggregates expenses and settlements into one net
// balance per member. The fold is commutative: any permutation of the inputs
// produces the same result, so re-running against the latest snapshot is
// always safe.
//
// Every member starts at zero. For each expense the payer is credited the
// full amount and every split holder debited their owed share; the payer's
// own split nets against their credit. For each SETTLED settlement the payer
// is credited and the receiver debited, the inverse of the debt direction.
// PENDING settlements are proposals and do not move balances.
func (s *BalanceService) CalculateNetBalances(members []models.User, expenses []*models.Expense,
	settlements []*models.Settlement) []models.NetBalance {

	balances := make(map[string]float64, len(members))
	names := make(map[string]string, len(members))
	for _, m := range members {
		balances[m.ID] = 0
		names[m.ID] = m.Name
	}

	for _, expense := range expenses {
		balances[expense.PaidBy] += expense.Amount
		for _, split := range expense.Splits {
			balances[split.UserID] -= split.OwedAmount
		}
	}

	for _, settlement := range settlements {
		if settlement.Status != utils.SettlementSettled {
			continue
		}
		balances[settlement.FromUser] += settlement.Amount
		balances[settlement.ToUser] -= settlement.Amount
	}

	result := make([]models.NetBalance, 0, len(balances))
	for userID, amount := range balances {
		result = append(result, models.NetBalance{
			UserID:   userID,
			UserName: names[userID],
			Amount:   utils.Round(amount),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UserID < result[j].UserID
	})
	return result
}

// GetGroupBalances loads a consistent snapshot of the group's ledger and
// returns the current net balance per member.
func (s *BalanceService) GetGroupBalances(groupID string) ([]models.NetBalance, error) {
	if _, err := s.groupRepo.GetGroupByID(groupID); err != nil {
		return nil, utils.NewNotFoundError("Group")
	}

	members, err := s.groupRepo.GetMembers(groupID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve group members")
	}
	expenses, err := s.expenseRepo.GetExpensesByGroup(groupID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve expenses")
	}
	settlements, err := s.settlementRepo.GetSettlementsByGroup(groupID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve settlements")
	}

	return s.CalculateNetBalances(members, expenses, settlements), nil
}

// GetGroupDebts returns the minimal set of transfers that settles the group.
func (s *BalanceService) GetGroupDebts(groupID string) ([]models.Debt, error) {
	balances, err := s.GetGroupBalances(groupID)
	if err != nil {
		return nil, err
	}
	return s.debtService.SimplifyDebts(balances)
}
