package calculator

import (
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitdesk/internal/models"
)

func bal(userID int64, amount string) models.Balance {
	return models.Balance{UserID: userID, NetBalance: decimal.RequireFromString(amount)}
}

func settlement(from, to int64, amount string) models.Settlement {
	return models.Settlement{FromUserID: from, ToUserID: to, Amount: decimal.RequireFromString(amount)}
}

// requireSameSettlements compares settlements by value; decimal equality is
// numeric, not structural.
func requireSameSettlements(t *testing.T, want, got []models.Settlement) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].FromUserID, got[i].FromUserID, "settlement %d from", i)
		assert.Equal(t, want[i].ToUserID, got[i].ToUserID, "settlement %d to", i)
		assert.True(t, want[i].Amount.Equal(got[i].Amount),
			"settlement %d amount: want %s, got %s", i, want[i].Amount, got[i].Amount)
	}
}

func TestComputeSettlements(t *testing.T) {
	tests := []struct {
		name     string
		balances []models.Balance
		want     []models.Settlement
	}{
		{
			name:     "one debtor pays two creditors",
			balances: []models.Balance{bal(1, "30"), bal(2, "10"), bal(3, "-40")},
			want:     []models.Settlement{settlement(3, 1, "30"), settlement(3, 2, "10")},
		},
		{
			name:     "single pair",
			balances: []models.Balance{bal(1, "20"), bal(2, "-20")},
			want:     []models.Settlement{settlement(2, 1, "20")},
		},
		{
			name:     "all settled",
			balances: []models.Balance{bal(1, "0"), bal(2, "0"), bal(3, "0")},
			want:     nil,
		},
		{
			name:     "no debtors",
			balances: []models.Balance{bal(1, "15"), bal(2, "0")},
			want:     nil,
		},
		{
			name:     "empty input",
			balances: nil,
			want:     nil,
		},
		{
			name: "largest debt meets largest credit first",
			balances: []models.Balance{
				bal(1, "-10"), bal(2, "25"), bal(3, "-50"), bal(4, "35"),
			},
			want: []models.Settlement{
				settlement(3, 4, "35"),
				settlement(3, 2, "15"),
				settlement(1, 2, "10"),
			},
		},
		{
			name:     "ties keep input order",
			balances: []models.Balance{bal(1, "10"), bal(2, "10"), bal(3, "-10"), bal(4, "-10")},
			want:     []models.Settlement{settlement(3, 1, "10"), settlement(4, 2, "10")},
		},
		{
			name:     "dust within tolerance is ignored",
			balances: []models.Balance{bal(1, "0.004"), bal(2, "12.50"), bal(3, "-12.50"), bal(4, "-0.004")},
			want:     []models.Settlement{settlement(3, 2, "12.50")},
		},
		{
			name:     "unbalanced input leaves residue",
			balances: []models.Balance{bal(1, "50"), bal(2, "-20")},
			want:     []models.Settlement{settlement(2, 1, "20")},
		},
		{
			name:     "thirds do not loop forever",
			balances: []models.Balance{bal(1, "33.33"), bal(2, "33.33"), bal(3, "-66.66")},
			want:     []models.Settlement{settlement(3, 1, "33.33"), settlement(3, 2, "33.33")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSettlements(tt.balances)
			requireSameSettlements(t, tt.want, got)
		})
	}
}

func TestComputeSettlements_DoesNotMutateInput(t *testing.T) {
	balances := []models.Balance{bal(1, "30"), bal(2, "10"), bal(3, "-40")}

	first := ComputeSettlements(balances)
	second := ComputeSettlements(balances)

	requireSameSettlements(t, first, second)
	assert.True(t, balances[0].NetBalance.Equal(decimal.NewFromInt(30)))
	assert.True(t, balances[2].NetBalance.Equal(decimal.NewFromInt(-40)))
	assert.Equal(t, int64(1), balances[0].UserID, "input order must be kept")
}

// randomZeroSum builds n balances in whole cents that add up to zero.
func randomZeroSum(r *rand.Rand, n int) []models.Balance {
	balances := make([]models.Balance, n)
	sum := decimal.Zero
	for i := 0; i < n-1; i++ {
		amount := decimal.New(r.Int64N(20001)-10000, -2)
		balances[i] = models.Balance{UserID: int64(i + 1), NetBalance: amount}
		sum = sum.Add(amount)
	}
	balances[n-1] = models.Balance{UserID: int64(n), NetBalance: sum.Neg()}
	return balances
}

func TestComputeSettlements_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 200; round++ {
		balances := randomZeroSum(r, 2+r.IntN(12))
		creditors, debtors := Partition(balances)

		settlements := ComputeSettlements(balances)

		for _, s := range settlements {
			require.True(t, s.Amount.IsPositive(), "round %d: non-positive amount %s", round, s.Amount)
			require.NotEqual(t, s.FromUserID, s.ToUserID)
		}

		if len(creditors)+len(debtors) > 0 {
			require.LessOrEqual(t, len(settlements), len(creditors)+len(debtors)-1, "round %d", round)
		}

		for _, b := range ApplySettlements(balances, settlements) {
			require.True(t, b.NetBalance.IsZero(), "round %d: user %d left with %s", round, b.UserID, b.NetBalance)
		}
	}
}

func TestApplySettlements(t *testing.T) {
	balances := []models.Balance{bal(1, "30"), bal(2, "-30")}

	after := ApplySettlements(balances, []models.Settlement{
		settlement(2, 1, "10"),
		settlement(9, 1, "100"), // unknown payer is ignored
	})

	assert.True(t, after[0].NetBalance.Equal(decimal.NewFromInt(20)))
	assert.True(t, after[1].NetBalance.Equal(decimal.NewFromInt(-20)))
	assert.True(t, balances[0].NetBalance.Equal(decimal.NewFromInt(30)), "input must not change")
}

func TestPartition(t *testing.T) {
	creditors, debtors := Partition([]models.Balance{
		bal(1, "5"), bal(2, "-3"), bal(3, "0.001"), bal(4, "-2"),
	})

	require.Len(t, creditors, 1)
	require.Len(t, debtors, 2)
	assert.Equal(t, int64(1), creditors[0].UserID)
	assert.Equal(t, []int64{2, 4}, []int64{debtors[0].UserID, debtors[1].UserID})
}

func TestSummarize(t *testing.T) {
	s := Summarize([]models.Balance{bal(1, "40"), bal(2, "-25"), bal(3, "-15"), bal(4, "0")})

	assert.Equal(t, 1, s.Creditors)
	assert.Equal(t, 2, s.Debtors)
	assert.Equal(t, 1, s.Settled)
	assert.True(t, s.Outstanding.Equal(decimal.NewFromInt(40)))
	assert.False(t, s.AllSettled())

	assert.True(t, Summarize([]models.Balance{bal(1, "0")}).AllSettled())
}
