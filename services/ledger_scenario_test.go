package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// Walks the full ledger pipeline for a three-person group: record an expense,
// aggregate balances, derive suggested transfers, settle one of them and
// confirm the group converges toward zero.
func TestLedgerScenario_DinnerThenPartialSettlement(t *testing.T) {
	splitService := NewSplitService()
	balanceService := testBalanceService()
	debtService := NewDebtService()

	members := groupMembers()

	// Alice pays 90 for dinner, split equally.
	draft := models.ExpenseDraft{
		GroupID:      "trip",
		Description:  "Dinner",
		Amount:       90,
		PaidBy:       "alice",
		SplitType:    utils.SplitTypeEqual,
		Participants: []string{"alice", "bob", "carol"},
	}
	splits, err := splitService.ComputeSplits(draft, members)
	assert.NoError(t, err)

	dinner := models.NewExpense(draft, splits)

	balances := balanceService.CalculateNetBalances(members, []*models.Expense{dinner}, nil)
	assert.Equal(t, []models.NetBalance{
		{UserID: "alice", UserName: "Alice", Amount: 60},
		{UserID: "bob", UserName: "Bob", Amount: -30},
		{UserID: "carol", UserName: "Carol", Amount: -30},
	}, balances)

	debts, err := debtService.SimplifyDebts(balances)
	assert.NoError(t, err)
	assert.Len(t, debts, 2)
	for _, debt := range debts {
		assert.Equal(t, "alice", debt.ToUserID)
		assert.Equal(t, float64(30), debt.Amount)
	}

	// Bob pays Alice back his 30.
	repayment := models.NewSettlement("trip", "bob", "alice", 30, utils.SettlementSettled)

	balances = balanceService.CalculateNetBalances(members,
		[]*models.Expense{dinner}, []*models.Settlement{repayment})
	assert.Equal(t, []models.NetBalance{
		{UserID: "alice", UserName: "Alice", Amount: 30},
		{UserID: "bob", UserName: "Bob", Amount: 0},
		{UserID: "carol", UserName: "Carol", Amount: -30},
	}, balances)

	// Only Carol's transfer remains.
	debts, err = debtService.SimplifyDebts(balances)
	assert.NoError(t, err)
	assert.Len(t, debts, 1)
	assert.Equal(t, "carol", debts[0].FromUserID)
	assert.Equal(t, "alice", debts[0].ToUserID)
	assert.Equal(t, float64(30), debts[0].Amount)
}

// A percentage expense and an exact expense stacked on the same group.
func TestLedgerScenario_MixedSplitTypes(t *testing.T) {
	splitService := NewSplitService()
	balanceService := testBalanceService()
	debtService := NewDebtService()

	members := groupMembers()

	rentDraft := models.ExpenseDraft{
		GroupID:      "flat",
		Description:  "Rent",
		Amount:       1000,
		PaidBy:       "bob",
		SplitType:    utils.SplitTypePercentage,
		Participants: []string{"alice", "bob", "carol"},
		Percentages:  map[string]float64{"alice": 40, "bob": 35, "carol": 25},
	}
	rentSplits, err := splitService.ComputeSplits(rentDraft, members)
	assert.NoError(t, err)

	groceriesDraft := models.ExpenseDraft{
		GroupID:      "flat",
		Description:  "Groceries",
		Amount:       60,
		PaidBy:       "carol",
		SplitType:    utils.SplitTypeExact,
		Participants: []string{"alice", "carol"},
		ExactAmounts: map[string]float64{"alice": 35, "carol": 25},
	}
	grocerySplits, err := splitService.ComputeSplits(groceriesDraft, members)
	assert.NoError(t, err)

	expenses := []*models.Expense{
		models.NewExpense(rentDraft, rentSplits),
		models.NewExpense(groceriesDraft, grocerySplits),
	}

	// Rent: alice -400, bob +650, carol -250.
	// Groceries: alice -35, carol +35.
	balances := balanceService.CalculateNetBalances(members, expenses, nil)
	assert.Equal(t, []models.NetBalance{
		{UserID: "alice", UserName: "Alice", Amount: -435},
		{UserID: "bob", UserName: "Bob", Amount: 650},
		{UserID: "carol", UserName: "Carol", Amount: -215},
	}, balances)

	debts, err := debtService.SimplifyDebts(balances)
	assert.NoError(t, err)
	assert.Len(t, debts, 2)
	assert.Equal(t, "alice", debts[0].FromUserID)
	assert.Equal(t, "bob", debts[0].ToUserID)
	assert.Equal(t, float64(435), debts[0].Amount)
	assert.Equal(t, "carol", debts[1].FromUserID)
	assert.Equal(t, "bob", debts[1].ToUserID)
	assert.Equal(t, float64(215), debts[1].Amount)
}
