package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/utils"
)

func TestDebtService_SimplifyDebts_BasicMatching(t *testing.T) {
	service := NewDebtService()

	// Alice is owed 30, Bob owes 10, Carol owes 20. The greedy matcher pairs
	// the largest debtor (Carol) with Alice first.
	debts, err := service.SimplifyDebts([]models.NetBalance{
		{UserID: "alice", UserName: "Alice", Amount: 30},
		{UserID: "bob", UserName: "Bob", Amount: -10},
		{UserID: "carol", UserName: "Carol", Amount: -20},
	})

	assert.NoError(t, err)
	assert.Len(t, debts, 2)
	assert.Equal(t, "carol", debts[0].FromUserID)
	assert.Equal(t, "alice", debts[0].ToUserID)
	assert.Equal(t, float64(20), debts[0].Amount)
	assert.Equal(t, "bob", debts[1].FromUserID)
	assert.Equal(t, "alice", debts[1].ToUserID)
	assert.Equal(t, float64(10), debts[1].Amount)
}

func TestDebtService_SimplifyDebts_AllSettled(t *testing.T) {
	service := NewDebtService()

	debts, err := service.SimplifyDebts([]models.NetBalance{
		{UserID: "alice", Amount: 0},
		{UserID: "bob", Amount: 0.004},
		{UserID: "carol", Amount: -0.004},
	})

	assert.NoError(t, err)
	assert.NotNil(t, debts)
	assert.Empty(t, debts)
}

func TestDebtService_SimplifyDebts_EmptyInput(t *testing.T) {
	service := NewDebtService()

	debts, err := service.SimplifyDebts(nil)

	assert.NoError(t, err)
	assert.NotNil(t, debts)
	assert.Empty(t, debts)
}

func TestDebtService_SimplifyDebts_TieBreaksByUserID(t *testing.T) {
	service := NewDebtService()

	debts, err := service.SimplifyDebts([]models.NetBalance{
		{UserID: "zoe", Amount: 10},
		{UserID: "amy", Amount: 10},
		{UserID: "bob", Amount: -20},
	})

	assert.NoError(t, err)
	assert.Len(t, debts, 2)
	// Equal credits of 10: the lower user ID wins the tie.
	assert.Equal(t, "amy", debts[0].ToUserID)
	assert.Equal(t, "zoe", debts[1].ToUserID)
	assert.Equal(t, float64(10), debts[0].Amount)
	assert.Equal(t, float64(10), debts[1].Amount)
}

func TestDebtService_SimplifyDebts_NoDualRoles(t *testing.T) {
	service := NewDebtService()

	debts, err := service.SimplifyDebts([]models.NetBalance{
		{UserID: "a", Amount: 45.50},
		{UserID: "b", Amount: 12.25},
		{UserID: "c", Amount: -20.75},
		{UserID: "d", Amount: -30},
		{UserID: "e", Amount: -7},
	})

	assert.NoError(t, err)
	assert.LessOrEqual(t, len(debts), 4)

	payers := make(map[string]bool)
	payees := make(map[string]bool)
	for _, debt := range debts {
		assert.Greater(t, debt.Amount, float64(0))
		assert.NotEqual(t, debt.FromUserID, debt.ToUserID)
		payers[debt.FromUserID] = true
		payees[debt.ToUserID] = true
	}
	for payer := range payers {
		assert.False(t, payees[payer], "user %s is both payer and payee", payer)
	}
}

func TestDebtService_SimplifyDebts_TransfersSettleAllBalances(t *testing.T) {
	service := NewDebtService()

	balances := []models.NetBalance{
		{UserID: "a", Amount: 33.34},
		{UserID: "b", Amount: 16.66},
		{UserID: "c", Amount: -25},
		{UserID: "d", Amount: -25},
	}

	debts, err := service.SimplifyDebts(balances)
	assert.NoError(t, err)

	// Applying every suggested transfer must drive each balance to zero.
	remaining := make(map[string]float64)
	for _, b := range balances {
		remaining[b.UserID] = b.Amount
	}
	for _, debt := range debts {
		remaining[debt.FromUserID] += debt.Amount
		remaining[debt.ToUserID] -= debt.Amount
	}
	for userID, amount := range remaining {
		assert.InDelta(t, 0, amount, utils.Epsilon, "user %s not settled", userID)
	}
}

func TestDebtService_SimplifyDebts_NonZeroSumFails(t *testing.T) {
	service := NewDebtService()

	_, err := service.SimplifyDebts([]models.NetBalance{
		{UserID: "alice", Amount: 30},
		{UserID: "bob", Amount: -10},
	})

	assert.ErrorIs(t, err, utils.ErrInternalConsistency)
}
