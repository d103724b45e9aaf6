package services

import (
	"fmt"
	"log"
	"math"

	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// DebtService reduces a group's net balances into a minimal list of suggested
// transfers. Pure computation; the input balances are not modified.
type DebtService struct{}

// NewDebtService creates a new debt service
func NewDebtService() *DebtService {
	return &DebtService{}
}

// partyBalance tracks one member's remaining balance during matching.
// Balances are held as positive magnitudes for both sides.
type partyBalance struct {
	UserID   string
	UserName string
	Amount   float64
}

// SimplifyDebts matches the largest remaining creditor with the largest
// remaining debtor until both sides are exhausted. Members within the
// tolerance of zero are already settled and excluded. Ties on the extremal
// balance are broken by user ID ascending so results are reproducible.
//
// The result has at most n-1 debts for n members with non-zero balances, and
// no member appears as both a payer and a payee.
func (s *DebtService) SimplifyDebts(balances []models.NetBalance) ([]models.Debt, error) {
	var creditors, debtors []partyBalance
	for _, b := range balances {
		switch {
		case b.Amount > utils.Epsilon:
			creditors = append(creditors, partyBalance{b.UserID, b.UserName, b.Amount})
		case b.Amount < -utils.Epsilon:
			debtors = append(debtors, partyBalance{b.UserID, b.UserName, -b.Amount})
		}
	}

	debts := []models.Debt{}
	for len(creditors) > 0 && len(debtors) > 0 {
		ci := largestParty(creditors)
		di := largestParty(debtors)

		amount := utils.Round(utils.Min(creditors[ci].Amount, debtors[di].Amount))
		debts = append(debts, models.Debt{
			FromUserID:   debtors[di].UserID,
			FromUserName: debtors[di].UserName,
			ToUserID:     creditors[ci].UserID,
			ToUserName:   creditors[ci].UserName,
			Amount:       amount,
		})

		creditors[ci].Amount -= amount
		debtors[di].Amount -= amount

		if utils.IsZero(creditors[ci].Amount) {
			creditors = append(creditors[:ci], creditors[ci+1:]...)
		}
		if utils.IsZero(debtors[di].Amount) {
			debtors = append(debtors[:di], debtors[di+1:]...)
		}
	}

	// Anything left on either side means the input did not net to zero, which
	// is an aggregation bug rather than a user error. The threshold scales
	// with the group size to absorb one rounding cent per member.
	var residual float64
	for _, c := range creditors {
		residual += c.Amount
	}
	for _, d := range debtors {
		residual += d.Amount
	}
	if residual > utils.Epsilon*float64(len(balances)+1) {
		log.Printf("debt simplification left a residual of %.2f across %d balances", residual, len(balances))
		return nil, fmt.Errorf("residual %.2f: %w", residual, utils.ErrInternalConsistency)
	}

	return debts, nil
}

// largestParty returns the index of the party with the largest remaining
// balance, breaking ties by user ID ascending.
func largestParty(parties []partyBalance) int {
	best := 0
	for i := 1; i < len(parties); i++ {
		if parties[i].Amount > parties[best].Amount ||
			(math.Abs(parties[i].Amount-parties[best].Amount) < 1e-9 && parties[i].UserID < parties[best].UserID) {
			best = i
		}
	}
	return best
}
