package services

import (
	"github.com/fairsplit/fairsplit-backend/models"
	"github.com/fairsplit/fairsplit-backend/repository"
	"github.com/fairsplit/fairsplit-backend/utils"
)

// GroupService handles groups and their membership. Membership only grows:
// people join by invite token, nobody is ever removed.
type GroupService struct {
	groupRepo *repository.GroupRepository
	userRepo  *repository.UserRepository
}

// NewGroupService creates a new group service
func NewGroupService(groupRepo *repository.GroupRepository, userRepo *repository.UserRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// CreateGroup creates a group with the creator as its first member. The
// invite token is minted here, once, and never reused.
func (s *GroupService) CreateGroup(name, createdBy string, initialMembers []string) (*models.Group, error) {
	if err := utils.ValidateRequired(name, "group name"); err != nil {
		return nil, err
	}

	memberIDs := []string{createdBy}
	for _, userID := range initialMembers {
		if userID == createdBy {
			continue
		}
		if _, err := s.userRepo.GetUserByID(userID); err != nil {
			return nil, utils.NewNotFoundError("User")
		}
		memberIDs = append(memberIDs, userID)
	}

	group := models.NewGroup(name, createdBy)
	if err := s.groupRepo.StoreGroup(group, memberIDs); err != nil {
		return nil, utils.NewInternalError("Failed to store group")
	}
	return group, nil
}

// JoinGroup adds the user to the group behind the invite token
func (s *GroupService) JoinGroup(inviteToken, userID string) (*models.Group, error) {
	group, err := s.groupRepo.GetGroupByInviteToken(inviteToken)
	if err != nil {
		return nil, utils.NewNotFoundError("Group")
	}

	isMember, err := s.groupRepo.IsMember(group.ID, userID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to check membership")
	}
	if isMember {
		return nil, utils.NewConflictError("User already in group")
	}

	if err := s.groupRepo.AddMember(group.ID, userID); err != nil {
		return nil, utils.NewInternalError("Failed to add member")
	}
	return group, nil
}

// GetUserGroups returns all groups the user belongs to
func (s *GroupService) GetUserGroups(userID string) ([]models.Group, error) {
	groups, err := s.groupRepo.GetGroupsForUser(userID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve groups")
	}
	if groups == nil {
		groups = []models.Group{}
	}
	return groups, nil
}

// GetGroupByID retrieves a group by its ID
func (s *GroupService) GetGroupByID(groupID string) (*models.Group, error) {
	group, err := s.groupRepo.GetGroupByID(groupID)
	if err != nil {
		return nil, utils.NewNotFoundError("Group")
	}
	return group, nil
}

// GetMembers returns the authoritative member list of a group
func (s *GroupService) GetMembers(groupID string) ([]models.User, error) {
	if _, err := s.groupRepo.GetGroupByID(groupID); err != nil {
		return nil, utils.NewNotFoundError("Group")
	}
	members, err := s.groupRepo.GetMembers(groupID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to retrieve group members")
	}
	return members, nil
}
