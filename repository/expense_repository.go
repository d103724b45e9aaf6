// repository/expense_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/fairsplit/fairsplit-backend/models"
)

// ExpenseRepository handles database operations for expenses and their splits
type ExpenseRepository struct {
	DB *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{
		DB: GetDB(),
	}
}

// StoreExpense saves an expense and its splits in one transaction
func (r *ExpenseRepository) StoreExpense(expense *models.Expense) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO expenses
         (id, group_id, description, amount, paid_by, created_by, split_type, creation_time)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		expense.ID, expense.GroupID, expense.Description, expense.Amount,
		expense.PaidBy, expense.CreatedBy, expense.SplitType, expense.CreationTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %v", err)
	}

	for _, split := range expense.Splits {
		_, err = tx.Exec(
			"INSERT INTO expense_splits (expense_id, user_id, owed_amount) VALUES ($1, $2, $3)",
			expense.ID, split.UserID, split.OwedAmount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %v", err)
		}
	}

	return tx.Commit()
}

// GetExpensesByGroup retrieves all expenses for a group, splits included
func (r *ExpenseRepository) GetExpensesByGroup(groupID string) ([]*models.Expense, error) {
	rows, err := r.DB.Query(
		`SELECT e.id, e.group_id, e.description, e.amount, e.paid_by, u.name, e.created_by,
                e.split_type, e.creation_time
         FROM expenses e
         JOIN users u ON u.id = e.paid_by
         WHERE e.group_id = $1
         ORDER BY e.creation_time ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %v", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var expense models.Expense
		err = rows.Scan(
			&expense.ID, &expense.GroupID, &expense.Description, &expense.Amount,
			&expense.PaidBy, &expense.PaidByName, &expense.CreatedBy,
			&expense.SplitType, &expense.CreationTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %v", err)
		}
		expenses = append(expenses, &expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %v", err)
	}

	for _, expense := range expenses {
		splits, err := r.getSplits(expense.ID)
		if err != nil {
			return nil, err
		}
		expense.Splits = splits
	}

	return expenses, nil
}

// GetExpenseByID retrieves a single expense with its splits
func (r *ExpenseRepository) GetExpenseByID(expenseID string) (*models.Expense, error) {
	var expense models.Expense
	err := r.DB.QueryRow(
		`SELECT id, group_id, description, amount, paid_by, created_by, split_type, creation_time
         FROM expenses WHERE id = $1`,
		expenseID,
	).Scan(
		&expense.ID, &expense.GroupID, &expense.Description, &expense.Amount,
		&expense.PaidBy, &expense.CreatedBy, &expense.SplitType, &expense.CreationTime,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("expense not found")
		}
		return nil, fmt.Errorf("failed to get expense: %v", err)
	}

	splits, err := r.getSplits(expense.ID)
	if err != nil {
		return nil, err
	}
	expense.Splits = splits
	return &expense, nil
}

func (r *ExpenseRepository) getSplits(expenseID string) ([]models.Split, error) {
	rows, err := r.DB.Query(
		`SELECT s.user_id, u.name, s.owed_amount
         FROM expense_splits s
         JOIN users u ON u.id = s.user_id
         WHERE s.expense_id = $1`,
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense splits: %v", err)
	}
	defer rows.Close()

	var splits []models.Split
	for rows.Next() {
		var split models.Split
		if err := rows.Scan(&split.UserID, &split.UserName, &split.OwedAmount); err != nil {
			return nil, fmt.Errorf("failed to scan split: %v", err)
		}
		splits = append(splits, split)
	}
	return splits, rows.Err()
}

// DeleteExpense removes an expense and its splits atomically. Splits go with
// the expense via ON DELETE CASCADE, so no partial state is ever visible.
func (r *ExpenseRepository) DeleteExpense(expenseID string) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM expenses WHERE id = $1", expenseID)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %v", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %v", err)
	}
	return affected > 0, nil
}
