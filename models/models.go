// models/models.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Users are the members of groups; the
// engine only ever reads them, it never mutates the directory.
type User struct {
	ID           string `json:"id"`
	CreationTime int64  `json:"_creationTime"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Group represents a set of people sharing expenses. Membership only grows;
// the invite token is minted once at creation and never reused.
type Group struct {
	ID           string `json:"_id"`
	CreationTime int64  `json:"_creationTime"`
	Name         string `json:"name"`
	InviteToken  string `json:"inviteToken"`
	CreatedBy    string `json:"createdBy"`
}

// Expense represents a shared expense. Immutable after creation except for
// deletion, which removes the expense and all its splits atomically.
type Expense struct {
	ID           string  `json:"_id"`
	CreationTime int64   `json:"_creationTime"`
	GroupID      string  `json:"groupId"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	PaidBy       string  `json:"paidBy"`
	PaidByName   string  `json:"paidByName,omitempty"`
	CreatedBy    string  `json:"createdBy"`
	SplitType    string  `json:"splitType"`
	Splits       []Split `json:"splits"`
}

// Split is one member's owed share of a single expense. Exactly one split per
// participating member; split members are always a subset of the group.
type Split struct {
	UserID     string  `json:"userId"`
	UserName   string  `json:"userName,omitempty"`
	OwedAmount float64 `json:"owedAmount"`
}

// Settlement represents a real-world payment between two members, recorded
// after the fact. Only SETTLED settlements affect net balances.
type Settlement struct {
	ID           string  `json:"_id"`
	CreationTime int64   `json:"_creationTime"`
	GroupID      string  `json:"groupId"`
	FromUser     string  `json:"fromUser"`
	FromUserName string  `json:"fromUserName,omitempty"`
	ToUser       string  `json:"toUser"`
	ToUserName   string  `json:"toUserName,omitempty"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	SettledAt    *int64  `json:"settledAt,omitempty"`
}

// NetBalance is a member's aggregate position across a group. Positive means
// they are owed money, negative means they owe.
type NetBalance struct {
	UserID   string  `json:"userId"`
	UserName string  `json:"userName,omitempty"`
	Amount   float64 `json:"netBalance"`
}

// Debt is a suggested transfer produced by debt simplification. Applying all
// debts for a group drives every net balance to zero.
type Debt struct {
	FromUserID   string  `json:"fromUserId"`
	FromUserName string  `json:"fromUserName,omitempty"`
	ToUserID     string  `json:"toUserId"`
	ToUserName   string  `json:"toUserName,omitempty"`
	Amount       float64 `json:"amount"`
}

// ExpenseDraft carries one expense submission as an immutable value. It is
// validated in full by the split calculator at submission time; nothing is
// persisted until the draft passes.
type ExpenseDraft struct {
	GroupID      string
	Description  string
	Amount       float64
	PaidBy       string
	CreatedBy    string
	SplitType    string
	Participants []string
	ExactAmounts map[string]float64
	Percentages  map[string]float64
}

// NewUser creates a new User instance
func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:           uuid.NewString(),
		CreationTime: time.Now().UnixMilli(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// NewGroup creates a new Group instance with a freshly minted invite token
func NewGroup(name, createdBy string) *Group {
	return &Group{
		ID:           uuid.NewString(),
		CreationTime: time.Now().UnixMilli(),
		Name:         name,
		InviteToken:  uuid.NewString(),
		CreatedBy:    createdBy,
	}
}

// NewExpense creates a new Expense instance from a validated draft and its splits
func NewExpense(draft ExpenseDraft, splits []Split) *Expense {
	return &Expense{
		ID:           uuid.NewString(),
		CreationTime: time.Now().UnixMilli(),
		GroupID:      draft.GroupID,
		Description:  draft.Description,
		Amount:       draft.Amount,
		PaidBy:       draft.PaidBy,
		CreatedBy:    draft.CreatedBy,
		SplitType:    draft.SplitType,
		Splits:       splits,
	}
}

// NewSettlement creates a new Settlement instance
func NewSettlement(groupID, fromUser, toUser string, amount float64, status string) *Settlement {
	s := &Settlement{
		ID:           uuid.NewString(),
		CreationTime: time.Now().UnixMilli(),
		GroupID:      groupID,
		FromUser:     fromUser,
		ToUser:       toUser,
		Amount:       amount,
		Status:       status,
	}
	if status == "SETTLED" {
		now := time.Now().UnixMilli()
		s.SettledAt = &now
	}
	return s
}
