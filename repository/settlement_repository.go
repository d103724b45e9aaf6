// repository/settlement_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/fairsplit/fairsplit-backend/models"
)

// SettlementRepository handles database operations for settlements
type SettlementRepository struct {
	DB *sql.DB
}

// NewSettlementRepository creates a new SettlementRepository
func NewSettlementRepository() *SettlementRepository {
	return &SettlementRepository{
		DB: GetDB(),
	}
}

// StoreSettlement saves a settlement to the database
func (r *SettlementRepository) StoreSettlement(settlement *models.Settlement) error {
	_, err := r.DB.Exec(
		`INSERT INTO settlements
         (id, group_id, from_user, to_user, amount, status, creation_time, settled_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		settlement.ID, settlement.GroupID, settlement.FromUser, settlement.ToUser,
		settlement.Amount, settlement.Status, settlement.CreationTime, settlement.SettledAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %v", err)
	}
	return nil
}

// GetSettlementsByGroup retrieves all settlements for a group
func (r *SettlementRepository) GetSettlementsByGroup(groupID string) ([]*models.Settlement, error) {
	rows, err := r.DB.Query(
		`SELECT s.id, s.group_id, s.from_user, fu.name, s.to_user, tu.name,
                s.amount, s.status, s.creation_time, s.settled_at
         FROM settlements s
         JOIN users fu ON fu.id = s.from_user
         JOIN users tu ON tu.id = s.to_user
         WHERE s.group_id = $1
         ORDER BY s.creation_time ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get settlements: %v", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		var settlement models.Settlement
		var settledAt sql.NullInt64
		err = rows.Scan(
			&settlement.ID, &settlement.GroupID, &settlement.FromUser, &settlement.FromUserName,
			&settlement.ToUser, &settlement.ToUserName, &settlement.Amount, &settlement.Status,
			&settlement.CreationTime, &settledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %v", err)
		}
		if settledAt.Valid {
			settlement.SettledAt = &settledAt.Int64
		}
		settlements = append(settlements, &settlement)
	}
	return settlements, rows.Err()
}

// GetSettlementByID retrieves a settlement by its ID
func (r *SettlementRepository) GetSettlementByID(id string) (*models.Settlement, error) {
	var settlement models.Settlement
	var settledAt sql.NullInt64
	err := r.DB.QueryRow(
		`SELECT id, group_id, from_user, to_user, amount, status, creation_time, settled_at
         FROM settlements WHERE id = $1`,
		id,
	).Scan(
		&settlement.ID, &settlement.GroupID, &settlement.FromUser, &settlement.ToUser,
		&settlement.Amount, &settlement.Status, &settlement.CreationTime, &settledAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("settlement not found")
		}
		return nil, fmt.Errorf("failed to get settlement: %v", err)
	}
	if settledAt.Valid {
		settlement.SettledAt = &settledAt.Int64
	}
	return &settlement, nil
}

// MarkSettled transitions a settlement to SETTLED and records the timestamp
func (r *SettlementRepository) MarkSettled(id string, settledAt int64) error {
	result, err := r.DB.Exec(
		"UPDATE settlements SET status = 'SETTLED', settled_at = $2 WHERE id = $1 AND status = 'PENDING'",
		id, settledAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update settlement: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %v", err)
	}
	if affected == 0 {
		return fmt.Errorf("settlement not found or already settled")
	}
	return nil
}

// ExistsByGroup reports whether the group has any settlements recorded
func (r *SettlementRepository) ExistsByGroup(groupID string) (bool, error) {
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM settlements WHERE group_id = $1",
		groupID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check settlements: %v", err)
	}
	return count > 0, nil
}
