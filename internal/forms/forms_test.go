package forms

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitdesk/internal/models"
)

func strPtr(s string) *string { return &s }

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name       string
		update     models.UserUpdate
		wantFields []string
	}{
		{
			name:   "valid with contact",
			update: models.UserUpdate{Name: "Alice", Email: "alice@example.com", ContactNo: strPtr("+1 555 0100")},
		},
		{
			name:   "valid without contact",
			update: models.UserUpdate{Name: "Bob", Email: "bob@example.com"},
		},
		{
			name:       "blank name",
			update:     models.UserUpdate{Name: "   ", Email: "bob@example.com"},
			wantFields: []string{"Name"},
		},
		{
			name:       "bad email",
			update:     models.UserUpdate{Name: "Bob", Email: "not-an-email"},
			wantFields: []string{"Email"},
		},
		{
			name: "everything too long",
			update: models.UserUpdate{
				Name:      strings.Repeat("n", 51),
				Email:     strings.Repeat("e", 95) + "@x.com",
				ContactNo: strPtr(strings.Repeat("1", 21)),
			},
			wantFields: []string{"Name", "Email", "Contact number"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser(tt.update)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrInvalid)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			for _, f := range tt.wantFields {
				assert.True(t, verr.Has(f), "expected %q to fail, got %v", f, verr.Fields)
			}
		})
	}
}

func TestValidateUser_Messages(t *testing.T) {
	err := ValidateUser(models.UserUpdate{Email: "bob@example.com"})
	require.Error(t, err)
	assert.Equal(t, "Name is required", err.Error())
}

func TestValidateExpense(t *testing.T) {
	valid := func() models.ExpenseRequest {
		return models.ExpenseRequest{
			GroupID:            1,
			PaidByUserID:       2,
			Amount:             decimal.RequireFromString("60"),
			Description:        "Groceries",
			ParticipantUserIDs: []int64{2, 3},
		}
	}

	tests := []struct {
		name       string
		mutate     func(r *models.ExpenseRequest)
		wantFields []string
	}{
		{
			name:   "valid equal split",
			mutate: func(r *models.ExpenseRequest) {},
		},
		{
			name: "valid custom shares",
			mutate: func(r *models.ExpenseRequest) {
				r.ParticipantShareAmounts = map[int64]decimal.Decimal{
					2: decimal.RequireFromString("40"),
					3: decimal.RequireFromString("20"),
				}
			},
		},
		{
			name:       "zero amount",
			mutate:     func(r *models.ExpenseRequest) { r.Amount = decimal.Zero },
			wantFields: []string{"Amount"},
		},
		{
			name:       "missing description",
			mutate:     func(r *models.ExpenseRequest) { r.Description = "" },
			wantFields: []string{"Description"},
		},
		{
			name:       "no participants",
			mutate:     func(r *models.ExpenseRequest) { r.ParticipantUserIDs = nil },
			wantFields: []string{"Participant"},
		},
		{
			name:       "missing group and payer",
			mutate:     func(r *models.ExpenseRequest) { r.GroupID, r.PaidByUserID = 0, 0 },
			wantFields: []string{"Group", "Paid by"},
		},
		{
			name: "shares do not add up",
			mutate: func(r *models.ExpenseRequest) {
				r.ParticipantShareAmounts = map[int64]decimal.Decimal{
					2: decimal.RequireFromString("10"),
					3: decimal.RequireFromString("20"),
				}
			},
			wantFields: []string{"Shares"},
		},
		{
			name: "share for outsider",
			mutate: func(r *models.ExpenseRequest) {
				r.ParticipantShareAmounts = map[int64]decimal.Decimal{
					2: decimal.RequireFromString("30"),
					9: decimal.RequireFromString("30"),
				}
			},
			wantFields: []string{"Shares"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := ValidateExpense(req)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			for _, f := range tt.wantFields {
				assert.True(t, verr.Has(f), "expected %q to fail, got %v", f, verr.Fields)
			}
		})
	}
}

func TestParticipantSelection(t *testing.T) {
	s := NewParticipantSelection([]int64{1, 2, 3})

	enabled, hint := s.SubmitState()
	assert.False(t, enabled)
	assert.Equal(t, NoParticipantsHint, hint)

	s.Toggle(2)
	s.Toggle(42) // not a candidate
	enabled, hint = s.SubmitState()
	assert.True(t, enabled)
	assert.Empty(t, hint)
	assert.Equal(t, []int64{2}, s.Selected())

	s.SelectAll(true)
	assert.Equal(t, []int64{1, 2, 3}, s.Selected())

	s.SelectAll(false)
	assert.Nil(t, s.Selected())
	enabled, _ = s.SubmitState()
	assert.False(t, enabled)
}
