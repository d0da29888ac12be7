package client

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitdesk/internal/models"
)

// amount renders money as a bare JSON number with cent precision.
func amount(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

type settlementPayload struct {
	FromUserID int64       `json:"fromUserId"`
	ToUserID   int64       `json:"toUserId"`
	Amount     json.Number `json:"amount"`
}

func toSettlementPayloads(settlements []models.Settlement) []settlementPayload {
	out := make([]settlementPayload, len(settlements))
	for i, s := range settlements {
		out[i] = settlementPayload{
			FromUserID: s.FromUserID,
			ToUserID:   s.ToUserID,
			Amount:     amount(s.Amount),
		}
	}
	return out
}

type expensePayload struct {
	GroupID                 int64                  `json:"groupId"`
	PaidByUserID            int64                  `json:"paidByUserId"`
	Amount                  json.Number            `json:"amount"`
	Description             string                 `json:"description"`
	ParticipantUserIDs      []int64                `json:"participantUserIds"`
	ParticipantShareAmounts map[string]json.Number `json:"participantShareAmounts,omitempty"`
}

func toExpensePayload(req models.ExpenseRequest) expensePayload {
	p := expensePayload{
		GroupID:            req.GroupID,
		PaidByUserID:       req.PaidByUserID,
		Amount:             amount(req.Amount),
		Description:        req.Description,
		ParticipantUserIDs: req.ParticipantUserIDs,
	}
	if len(req.ParticipantShareAmounts) > 0 {
		p.ParticipantShareAmounts = make(map[string]json.Number, len(req.ParticipantShareAmounts))
		for userID, share := range req.ParticipantShareAmounts {
			p.ParticipantShareAmounts[strconv.FormatInt(userID, 10)] = amount(share)
		}
	}
	return p
}
