package models

// RegisterRequest request model
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest request model
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse response model
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// CreateGroupRequest request model
type CreateGroupRequest struct {
	Name           string   `json:"name" binding:"required"`
	InitialMembers []string `json:"initialMembers"`
}

// JoinGroupRequest request model
type JoinGroupRequest struct {
	InviteToken string `json:"inviteToken" binding:"required"`
}

// SplitInput is the per-participant input for EXACT and PERCENTAGE splits
type SplitInput struct {
	UserID     string  `json:"userId" binding:"required"`
	OwedAmount float64 `json:"owedAmount"`
	Percentage float64 `json:"percentage"`
}

// CreateExpenseRequest request model
type CreateExpenseRequest struct {
	GroupID     string       `json:"groupId" binding:"required"`
	Description string       `json:"description" binding:"required"`
	Amount      float64      `json:"amount" binding:"required"`
	PaidBy      string       `json:"paidBy" binding:"required"`
	SplitType   string       `json:"splitType" binding:"required"`
	Splits      []SplitInput `json:"splits" binding:"required,min=1"`
}

// ToDraft converts the request into an immutable ExpenseDraft for validation.
func (r *CreateExpenseRequest) ToDraft(createdBy string) ExpenseDraft {
	draft := ExpenseDraft{
		GroupID:      r.GroupID,
		Description:  r.Description,
		Amount:       r.Amount,
		PaidBy:       r.PaidBy,
		CreatedBy:    createdBy,
		SplitType:    r.SplitType,
		Participants: make([]string, 0, len(r.Splits)),
		ExactAmounts: make(map[string]float64, len(r.Splits)),
		Percentages:  make(map[string]float64, len(r.Splits)),
	}
	for _, s := range r.Splits {
		draft.Participants = append(draft.Participants, s.UserID)
		draft.ExactAmounts[s.UserID] = s.OwedAmount
		draft.Percentages[s.UserID] = s.Percentage
	}
	return draft
}

// CreateSettlementRequest request model
type CreateSettlementRequest struct {
	GroupID  string  `json:"groupId" binding:"required"`
	FromUser string  `json:"fromUser" binding:"required"`
	ToUser   string  `json:"toUser" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Status   string  `json:"status"`
}

// BalanceSummary response model for a group's balances and suggested debts
type BalanceSummary struct {
	Balances []NetBalance `json:"balances"`
	Debts    []Debt       `json:"debts"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
