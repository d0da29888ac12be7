package models

import "github.com/shopspring/decimal"

// Expense is a payment made by one member on behalf of the participants.
type Expense struct {
	ExpenseID    int64                `json:"expenseId"`
	GroupID      int64                `json:"groupId"`
	PaidBy       User                 `json:"paidBy"`
	Amount       decimal.Decimal      `json:"amount"`
	Description  string               `json:"description"`
	ExpenseDate  Timestamp            `json:"expenseDate"`
	Participants []ExpenseParticipant `json:"participants"`
}

// ExpenseParticipant is one participant's share of an expense.
type ExpenseParticipant struct {
	ParticipantID int64           `json:"participantId"`
	User          User            `json:"user"`
	ShareAmount   decimal.Decimal `json:"shareAmount"`
}

// ExpenseRequest is the body of POST /api/expenses.
type ExpenseRequest struct {
	GroupID            int64
	PaidByUserID       int64
	Amount             decimal.Decimal
	Description        string
	ParticipantUserIDs []int64

	// ParticipantShareAmounts holds custom shares keyed by user id.
	// Empty means the backend splits the amount equally.
	ParticipantShareAmounts map[int64]decimal.Decimal
}
