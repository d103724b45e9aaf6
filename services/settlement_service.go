package services

import (
	"time"

	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/repository"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// SettlementService records payments between members. A settlement documents
// a transfer believed to have already happened in the real world; it is
// recorded, never escrowed.
type SettlementService struct {
	settlementRepo *repository.SettlementRepository
	groupRepo      *repository.GroupRepository
}

// NewSettlementService creates a new settlement service
func NewSettlementService(settlementRepo *repository.SettlementRepository,
	groupRepo *repository.GroupRepository) *SettlementService {
	return &SettlementService{
		settlementRepo: settlementRepo,
		groupRepo:      groupRepo,
	}
}

// CreateSettlement records a payment between two group members. Status
// defaults to SETTLED; a PENDING settlement is a proposal and does not touch
// balances until it is confirmed via MarkSettled.
func (s *SettlementService) CreateSettlement(req *models.CreateSettlementRequest) (*models.Settlement, error) {
	if req.FromUser == req.ToUser {
		return nil, utils.NewValidationError("cannot record a settlement to yourself")
	}
	if err := utils.ValidatePositive(req.Amount, "amount"); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = utils.SettlementSettled
	}
	if status != utils.SettlementPending && status != utils.SettlementSettled {
		return nil, utils.NewValidationError("status must be PENDING or SETTLED")
	}

	if _, err := s.groupRepo.GetGroupByID(req.GroupID); err != nil {
		return nil, utils.NewNotFoundError("Group")
	}
	for _, userID := range []string{req.FromUser, req.ToUser} {
		isMember, err := s.groupRepo.IsMember(req.GroupID, userID)
		if err != nil {
			return nil, utils.NewInternalError("Failed to check membership")
		}
		if !isMember {
			return nil, utils.NewValidationError("both parties must be members of the group")
		}
	}

	settlement := models.NewSettlement(req.GroupID, req.FromUser, req.ToUser,
		utils.Round(req.Amount), status)
	if err := s.settlementRepo.StoreSettlement(settlement); err != nil {
		return nil, utils.NewInternalError("Failed to store settlement")
	}
	return settlement, nil
}

// GetGroupSettlements returns all settlements recorded for a group
func (s *SettlementService) GetGroupSettlements(groupID string) ([]*models.Settlement, error) {
	if _, err := s.groupRepo.GetGroupByID(groupID); err != nil {
		return nil, utils.NewNotFoundError("Group")
	}
	settlements, err := s.settlementRepo.GetSettlementsByGroup(groupID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve settlements")
	}
	if settlements == nil {
		settlements = []*models.Settlement{}
	}
	return settlements, nil
}

// MarkSettled confirms a pending settlement. From that point on it counts
// against the group's net balances.
func (s *SettlementService) MarkSettled(settlementID string) (*models.Settlement, error) {
	settlement, err := s.settlementRepo.GetSettlementByID(settlementID)
	if err != nil {
		return nil, utils.NewNotFoundError("Settlement")
	}
	if settlement.Status == utils.SettlementSettled {
		return nil, utils.NewConflictError("Settlement already settled")
	}

	now := time.Now().UnixMilli()
	if err := s.settlementRepo.MarkSettled(settlementID, now); err != nil {
		return nil, utils.NewInternalError("Failed to update settlement")
	}

	settlement.Status = utils.SettlementSettled
	settlement.SettledAt = &now
	return settlement, nil
}
