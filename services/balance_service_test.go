package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/utils"
)

func testBalanceService() *BalanceService {
	return NewBalanceService(nil, nil, nil, NewDebtService())
}

func TestBalanceService_CalculateNetBalances_SingleExpense(t *testing.T) {
	service := testBalanceService()

	// Alice pays 90, split equally three ways. She is credited 90 and debited
	// her own 30 share, netting +60.
	expense := &models.Expense{
		Amount: 90,
		PaidBy: "alice",
		Splits: []models.Split{
			{UserID: "alice", OwedAmount: 30},
			{UserID: "bob", OwedAmount: 30},
			{UserID: "carol", OwedAmount: 30},
		},
	}

	balances := service.CalculateNetBalances(groupMembers(), []*models.Expense{expense}, nil)

	assert.Equal(t, []models.NetBalance{
		{UserID: "alice", UserName: "Alice", Amount: 60},
		{UserID: "bob", UserName: "Bob", Amount: -30},
		{UserID: "carol", UserName: "Carol", Amount: -30},
	}, balances)
}

func TestBalanceService_CalculateNetBalances_MembersStartAtZero(t *testing.T) {
	service := testBalanceService()

	balances := service.CalculateNetBalances(groupMembers(), nil, nil)

	assert.Len(t, balances, 3)
	for _, b := range balances {
		assert.Equal(t, float64(0), b.Amount)
	}
}

func TestBalanceService_CalculateNetBalances_SettledSettlementApplied(t *testing.T) {
	service := testBalanceService()

	expense := &models.Expense{
		Amount: 90,
		PaidBy: "alice",
		Splits: []models.Split{
			{UserID: "alice", OwedAmount: 30},
			{UserID: "bob", OwedAmount: 30},
			{UserID: "carol", OwedAmount: 30},
		},
	}
	settlement := &models.Settlement{
		FromUser: "bob",
		ToUser:   "alice",
		Amount:   30,
		Status:   utils.SettlementSettled,
	}

	balances := service.CalculateNetBalances(groupMembers(),
		[]*models.Expense{expense}, []*models.Settlement{settlement})

	assert.Equal(t, []models.NetBalance{
		{UserID: "alice", UserName: "Alice", Amount: 30},
		{UserID: "bob", UserName: "Bob", Amount: 0},
		{UserID: "carol", UserName: "Carol", Amount: -30},
	}, balances)
}

func TestBalanceService_CalculateNetBalances_PendingSettlementIgnored(t *testing.T) {
	service := testBalanceService()

	settlement := &models.Settlement{
		FromUser: "bob",
		ToUser:   "alice",
		Amount:   30,
		Status:   utils.SettlementPending,
	}

	balances := service.CalculateNetBalances(groupMembers(), nil, []*models.Settlement{settlement})

	for _, b := range balances {
		assert.Equal(t, float64(0), b.Amount)
	}
}

func TestBalanceService_CalculateNetBalances_OrderIndependent(t *testing.T) {
	service := testBalanceService()

	expenses := []*models.Expense{
		{Amount: 50, PaidBy: "alice", Splits: []models.Split{
			{UserID: "alice", OwedAmount: 25}, {UserID: "bob", OwedAmount: 25}}},
		{Amount: 33.33, PaidBy: "bob", Splits: []models.Split{
			{UserID: "bob", OwedAmount: 11.11}, {UserID: "carol", OwedAmount: 11.11},
			{UserID: "alice", OwedAmount: 11.11}}},
		{Amount: 12.40, PaidBy: "carol", Splits: []models.Split{
			{UserID: "alice", OwedAmount: 6.20}, {UserID: "carol", OwedAmount: 6.20}}},
	}
	settlements := []*models.Settlement{
		{FromUser: "bob", ToUser: "alice", Amount: 10, Status: utils.SettlementSettled},
		{FromUser: "carol", ToUser: "alice", Amount: 5, Status: utils.SettlementSettled},
	}

	expected := service.CalculateNetBalances(groupMembers(), expenses, settlements)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffledExpenses := append([]*models.Expense(nil), expenses...)
		rng.Shuffle(len(shuffledExpenses), func(a, b int) {
			shuffledExpenses[a], shuffledExpenses[b] = shuffledExpenses[b], shuffledExpenses[a]
		})
		shuffledSettlements := append([]*models.Settlement(nil), settlements...)
		rng.Shuffle(len(shuffledSettlements), func(a, b int) {
			shuffledSettlements[a], shuffledSettlements[b] = shuffledSettlements[b], shuffledSettlements[a]
		})

		assert.Equal(t, expected, service.CalculateNetBalances(groupMembers(), shuffledExpenses, shuffledSettlements))
	}
}

func TestBalanceService_CalculateNetBalances_RemovingExpenseReversesEffect(t *testing.T) {
	service := testBalanceService()

	kept := &models.Expense{
		Amount: 40, PaidBy: "bob", Splits: []models.Split{
			{UserID: "bob", OwedAmount: 20}, {UserID: "carol", OwedAmount: 20}},
	}
	removed := &models.Expense{
		Amount: 60, PaidBy: "alice", Splits: []models.Split{
			{UserID: "alice", OwedAmount: 20}, {UserID: "bob", OwedAmount: 20},
			{UserID: "carol", OwedAmount: 20}},
	}

	withBoth := service.CalculateNetBalances(groupMembers(), []*models.Expense{kept, removed}, nil)
	withoutRemoved := service.CalculateNetBalances(groupMembers(), []*models.Expense{kept}, nil)

	// Recomputing without the deleted expense is the same as never having
	// recorded it.
	assert.NotEqual(t, withBoth, withoutRemoved)
	assert.Equal(t, []models.NetBalance{
		{UserID: "alice", UserName: "Alice", Amount: 0},
		{UserID: "bob", UserName: "Bob", Amount: 20},
		{UserID: "carol", UserName: "Carol", Amount: -20},
	}, withoutRemoved)
}

func TestBalanceService_CalculateNetBalances_SumsToZero(t *testing.T) {
	service := testBalanceService()

	expenses := []*models.Expense{
		{Amount: 99.99, PaidBy: "alice", Splits: []models.Split{
			{UserID: "alice", OwedAmount: 33.33}, {UserID: "bob", OwedAmount: 33.33},
			{UserID: "carol", OwedAmount: 33.33}}},
		{Amount: 45.67, PaidBy: "carol", Splits: []models.Split{
			{UserID: "bob", OwedAmount: 22.84}, {UserID: "carol", OwedAmount: 22.83}}},
	}

	balances := service.CalculateNetBalances(groupMembers(), expenses, nil)

	var sum float64
	for _, b := range balances {
		sum += b.Amount
	}
	assert.InDelta(t, 0, sum, utils.Epsilon*float64(len(balances)))
}
