package models

import "github.com/shopspring/decimal"

// Balance is one member's position within a group.
type Balance struct {
	UserID    int64           `json:"userId"`
	UserName  string          `json:"userName"`
	UserEmail string          `json:"userEmail"`
	TotalPaid decimal.Decimal `json:"totalPaid"`
	TotalOwed decimal.Decimal `json:"totalOwed"`

	// NetBalance is positive for creditors and negative for debtors.
	NetBalance decimal.Decimal `json:"netBalance"`
}
