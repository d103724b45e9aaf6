package services

import (
	"fmt"
	"math"

	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// SplitService turns one expense draft into a validated list of per-member
// owed amounts. It is a pure calculator: no side effects, deterministic for
// identical inputs.
type SplitService struct{}

// NewSplitService creates a new split service
func NewSplitService() *SplitService {
	return &SplitService{}
}

// ComputeSplits validates a draft against the group's member set and produces
// one split per participant according to the draft's split policy.
func (s *SplitService) ComputeSplits(draft models.ExpenseDraft, members []models.User) ([]models.Split, error) {
	if draft.Amount <= 0 {
		return nil, utils.ErrInvalidAmount
	}
	if len(draft.Participants) == 0 {
		return nil, utils.ErrEmptyParticipants
	}

	memberIDs := make(map[string]bool, len(members))
	for _, m := range members {
		memberIDs[m.ID] = true
	}

	if !memberIDs[draft.PaidBy] {
		return nil, fmt.Errorf("payer %s: %w", draft.PaidBy, utils.ErrUnknownParticipant)
	}

	seen := make(map[string]bool, len(draft.Participants))
	for _, userID := range draft.Participants {
		if !memberIDs[userID] {
			return nil, fmt.Errorf("participant %s: %w", userID, utils.ErrUnknownParticipant)
		}
		if seen[userID] {
			return nil, utils.NewValidationError(fmt.Sprintf("duplicate participant %s", userID))
		}
		seen[userID] = true
	}

	switch draft.SplitType {
	case utils.SplitTypeEqual:
		return s.computeEqualSplits(draft), nil
	case utils.SplitTypeExact:
		return s.computeExactSplits(draft)
	case utils.SplitTypePercentage:
		return s.computePercentageSplits(draft)
	}
	return nil, utils.NewValidationError(fmt.Sprintf("unsupported split type %q", draft.SplitType))
}

// computeEqualSplits divides the amount evenly. The share is computed once and
// assigned to every participant, so the naive sum may drift from the total by
// a few cents; an equal split does not re-validate its sum.
func (s *SplitService) computeEqualSplits(draft models.ExpenseDraft) []models.Split {
	share := utils.Round(draft.Amount / float64(len(draft.Participants)))

	splits := make([]models.Split, 0, len(draft.Participants))
	for _, userID := range draft.Participants {
		splits = append(splits, models.Split{
			UserID:     userID,
			OwedAmount: share,
		})
	}
	return splits
}

// computeExactSplits takes a caller-supplied owed amount per participant and
// requires the amounts to sum to the expense total within the tolerance.
func (s *SplitService) computeExactSplits(draft models.ExpenseDraft) ([]models.Split, error) {
	splits := make([]models.Split, 0, len(draft.Participants))
	var sum float64

	for _, userID := range draft.Participants {
		owed := draft.ExactAmounts[userID]
		if owed < 0 {
			return nil, fmt.Errorf("owed amount for %s: %w", userID, utils.ErrInvalidAmount)
		}
		owed = utils.Round(owed)
		sum += owed
		splits = append(splits, models.Split{
			UserID:     userID,
			OwedAmount: owed,
		})
	}

	if math.Abs(sum-draft.Amount) > utils.Epsilon {
		return nil, fmt.Errorf("splits sum to %.2f, expense amount is %.2f: %w",
			sum, draft.Amount, utils.ErrSplitMismatch)
	}
	return splits, nil
}

// computePercentageSplits takes a caller-supplied percentage per participant
// and requires the percentages to sum to 100 within the tolerance.
func (s *SplitService) computePercentageSplits(draft models.ExpenseDraft) ([]models.Split, error) {
	splits := make([]models.Split, 0, len(draft.Participants))
	var pctSum float64

	for _, userID := range draft.Participants {
		pct := draft.Percentages[userID]
		if pct < 0 {
			return nil, fmt.Errorf("percentage for %s: %w", userID, utils.ErrInvalidAmount)
		}
		pctSum += pct
		splits = append(splits, models.Split{
			UserID:     userID,
			OwedAmount: utils.Round(draft.Amount * pct / 100),
		})
	}

	if math.Abs(pctSum-100) > utils.Epsilon {
		return nil, fmt.Errorf("percentages sum to %.2f: %w", pctSum, utils.ErrPercentageMismatch)
	}
	return splits, nil
}
