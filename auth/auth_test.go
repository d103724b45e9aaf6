package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fairsplit/fairsplit-backend/models"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	user := &models.User{ID: "user-1", Email: "alice@example.com"}
	token, err := manager.Generate(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := manager.Generate(&models.User{ID: "user-1"})
	assert.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)

	token, err := manager.Generate(&models.User{ID: "user-1"})
	assert.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	_, err := manager.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.NoError(t, CheckPassword(hash, "correct horse battery"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong password"), ErrInvalidCredentials)
}

func TestHashPassword_RejectsShortPassword(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}
