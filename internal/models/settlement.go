package models

import "github.com/shopspring/decimal"

// Settlement is a payment from a debtor to a creditor that closes part of the
// debtor's obligation. Settlements are built per invocation and discarded once
// the backend has recorded them.
type Settlement struct {
	// FromUserID is the debtor making the payment.
	FromUserID int64

	// ToUserID is the creditor receiving the payment.
	ToUserID int64

	// Amount is always positive.
	Amount decimal.Decimal
}

// SettleResult is the body returned by POST /settle/{groupId}.
type SettleResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SettleStatusSuccess is the Status value the backend uses for an accepted batch.
const SettleStatusSuccess = "success"

// OK reports whether the backend accepted the settlements.
func (r SettleResult) OK() bool {
	return r.Status == SettleStatusSuccess
}
