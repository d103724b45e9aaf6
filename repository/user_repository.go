// repository/user_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/fairsplit/fairsplit-backend/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	DB *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		DB: GetDB(),
	}
}

// StoreUser saves a user to the database
func (r *UserRepository) StoreUser(user *models.User) error {
	_, err := r.DB.Exec(
		"INSERT INTO users (id, name, email, password_hash, creation_time) VALUES ($1, $2, $3, $4, $5)",
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreationTime,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %v", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID
func (r *UserRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRow(
		"SELECT id, name, email, password_hash, creation_time FROM users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreationTime)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by their email
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRow(
		"SELECT id, name, email, password_hash, creation_time FROM users WHERE email = $1",
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreationTime)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return &user, nil
}

// GetFriends retrieves all users who share at least one group with the given user
func (r *UserRepository) GetFriends(userID string) ([]models.User, error) {
	rows, err := r.DB.Query(
		`SELECT DISTINCT u.id, u.name, u.email, u.creation_time
         FROM users u
         JOIN group_members gm ON gm.user_id = u.id
         WHERE gm.group_id IN (SELECT group_id FROM group_members WHERE user_id = $1)
           AND u.id <> $1
         ORDER BY u.name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get friends: %v", err)
	}
	defer rows.Close()

	var friends []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreationTime); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %v", err)
		}
		friends = append(friends, user)
	}
	return friends, rows.Err()
}
