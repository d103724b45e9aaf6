// repository/group_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/fairsplit/fairsplit-backend/models"
)

// GroupRepository handles database operations for groups and membership
type GroupRepository struct {
	DB *sql.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository() *GroupRepository {
	return &GroupRepository{
		DB: GetDB(),
	}
}

// StoreGroup saves a group and its initial members in one transaction
func (r *GroupRepository) StoreGroup(group *models.Group, memberIDs []string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO groups (id, name, invite_token, created_by, creation_time) VALUES ($1, $2, $3, $4, $5)",
		group.ID, group.Name, group.InviteToken, group.CreatedBy, group.CreationTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %v", err)
	}

	for _, userID := range memberIDs {
		_, err = tx.Exec(
			"INSERT INTO group_members (group_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			group.ID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %v", err)
		}
	}

	return tx.Commit()
}

// GetGroupByID retrieves a group by its ID
func (r *GroupRepository) GetGroupByID(id string) (*models.Group, error) {
	var group models.Group
	err := r.DB.QueryRow(
		"SELECT id, name, invite_token, created_by, creation_time FROM groups WHERE id = $1",
		id,
	).Scan(&group.ID, &group.Name, &group.InviteToken, &group.CreatedBy, &group.CreationTime)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("group not found")
		}
		return nil, fmt.Errorf("failed to get group: %v", err)
	}
	return &group, nil
}

// GetGroupByInviteToken retrieves a group by its invite token
func (r *GroupRepository) GetGroupByInviteToken(token string) (*models.Group, error) {
	var group models.Group
	err := r.DB.QueryRow(
		"SELECT id, name, invite_token, created_by, creation_time FROM groups WHERE invite_token = $1",
		token,
	).Scan(&group.ID, &group.Name, &group.InviteToken, &group.CreatedBy, &group.CreationTime)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("group not found")
		}
		return nil, fmt.Errorf("failed to get group: %v", err)
	}
	return &group, nil
}

// GetGroupsForUser retrieves all groups the user is a member of
func (r *GroupRepository) GetGroupsForUser(userID string) ([]models.Group, error) {
	rows, err := r.DB.Query(
		`SELECT g.id, g.name, g.invite_token, g.created_by, g.creation_time
         FROM groups g
         JOIN group_members gm ON gm.group_id = g.id
         WHERE gm.user_id = $1
         ORDER BY g.creation_time ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %v", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(&group.ID, &group.Name, &group.InviteToken, &group.CreatedBy, &group.CreationTime); err != nil {
			return nil, fmt.Errorf("failed to scan group: %v", err)
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// GetMembers retrieves all members of a group
func (r *GroupRepository) GetMembers(groupID string) ([]models.User, error) {
	rows, err := r.DB.Query(
		`SELECT u.id, u.name, u.email, u.creation_time
         FROM users u
         JOIN group_members gm ON gm.user_id = u.id
         WHERE gm.group_id = $1
         ORDER BY u.name ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %v", err)
	}
	defer rows.Close()

	var members []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreationTime); err != nil {
			return nil, fmt.Errorf("failed to scan member: %v", err)
		}
		members = append(members, user)
	}
	return members, rows.Err()
}

// IsMember reports whether the user belongs to the group
func (r *GroupRepository) IsMember(groupID, userID string) (bool, error) {
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM group_members WHERE group_id = $1 AND user_id = $2",
		groupID, userID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %v", err)
	}
	return count > 0, nil
}

// AddMember adds a user to a group if they are not a member already
func (r *GroupRepository) AddMember(groupID, userID string) error {
	_, err := r.DB.Exec(
		"INSERT INTO group_members (group_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		groupID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group member: %v", err)
	}
	return nil
}
