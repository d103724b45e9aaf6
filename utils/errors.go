package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Engine errors. These are deterministic caller-input failures from the split
// calculator, except ErrInternalConsistency which signals a bug in the
// aggregation itself (residual balance after debt simplification) and must
// never be reported as a user error.
var (
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrEmptyParticipants   = errors.New("at least one participant is required")
	ErrUnknownParticipant  = errors.New("participant is not a member of the group")
	ErrSplitMismatch       = errors.New("split amounts do not sum to the expense amount")
	ErrPercentageMismatch  = errors.New("percentages do not sum to 100")
	ErrInternalConsistency = errors.New("net balances do not sum to zero after simplification")
)

// AppError represents a custom application error
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common error constructors
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnauthorized,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsInputError reports whether err is one of the engine's caller-input errors.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrEmptyParticipants) ||
		errors.Is(err, ErrUnknownParticipant) ||
		errors.Is(err, ErrSplitMismatch) ||
		errors.Is(err, ErrPercentageMismatch)
}

// HandleError sends an appropriate HTTP response for an error
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	if IsInputError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errors.Is(err, ErrInternalConsistency) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Default to internal server error
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// HandleSuccess sends a success response
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
