package money_test

import (
	"testing"

	"github.com/finbook/bookkeeping_app/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantDiag bool
	}{
		{name: "plain integer", input: "100", want: "100"},
		{name: "decimal fraction", input: "99.95", want: "99.95"},
		{name: "negative amount", input: "-42.50", want: "-42.5"},
		{name: "surrounding whitespace", input: "  12.34  ", want: "12.34"},
		{name: "empty string", input: "", want: "0", wantDiag: true},
		{name: "whitespace only", input: "   ", want: "0", wantDiag: true},
		{name: "garbage", input: "abc", want: "0", wantDiag: true},
		{name: "double decimal point", input: "1.2.3", want: "0", wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diag := money.Parse(tt.input)
			assert.Equal(t, tt.want, got.String())
			if tt.wantDiag {
				require.NotNil(t, diag)
				assert.Equal(t, tt.input, diag.Input)
				assert.NotEmpty(t, diag.Reason)
			} else {
				assert.Nil(t, diag)
			}
		})
	}
}

func TestParseOrZero(t *testing.T) {
	assert.Equal(t, "12.5", money.ParseOrZero("12.5").String())
	assert.True(t, money.ParseOrZero("not a number").IsZero())
}

func TestDivide_ByZeroYieldsZero(t *testing.T) {
	got, diag := money.Divide(decimal.NewFromInt(10), decimal.Zero)
	assert.True(t, got.IsZero())
	require.NotNil(t, diag)
	assert.Contains(t, diag.Reason, "division by zero")
}

func TestDivide_PrecisionSurvivesRoundTrip(t *testing.T) {
	// 1/3*3 must come back to 1 within well over 20 significant digits.
	third, diag := money.Divide(decimal.NewFromInt(1), decimal.NewFromInt(3))
	require.Nil(t, diag)
	back := third.Mul(decimal.NewFromInt(3))
	diff := decimal.NewFromInt(1).Sub(back).Abs()
	tolerance, err := decimal.NewFromString("0.00000000000000000001") // 1e-20
	require.NoError(t, err)
	assert.True(t, diff.LessThan(tolerance), "round trip drifted by %s", diff)
}

func TestPercentOf(t *testing.T) {
	got := money.PercentOf(decimal.NewFromInt(25), decimal.NewFromInt(200))
	assert.True(t, got.Equal(decimal.NewFromFloat(12.5)), "got %s", got)

	// Zero total must not panic and must yield zero.
	assert.True(t, money.PercentOf(decimal.NewFromInt(25), decimal.Zero).IsZero())
}

func TestApplyRate(t *testing.T) {
	got := money.ApplyRate(decimal.NewFromInt(1000), decimal.NewFromInt(15))
	assert.True(t, got.Equal(decimal.NewFromInt(150)), "got %s", got)

	assert.True(t, money.ApplyRate(decimal.Zero, decimal.NewFromInt(15)).IsZero())
}

func TestSum(t *testing.T) {
	values := []decimal.Decimal{
		decimal.NewFromFloat(0.1),
		decimal.NewFromFloat(0.2),
		decimal.NewFromFloat(0.3),
	}
	// Exact decimal arithmetic: no float drift allowed.
	assert.True(t, money.Sum(values).Equal(decimal.NewFromFloat(0.6)))
	assert.True(t, money.Sum(nil).IsZero())
}

func TestSumBy(t *testing.T) {
	type line struct {
		amount decimal.Decimal
	}
	lines := []line{
		{amount: decimal.NewFromInt(10)},
		{amount: decimal.NewFromInt(-4)},
	}
	total := money.SumBy(lines, func(l line) decimal.Decimal { return l.amount })
	assert.True(t, total.Equal(decimal.NewFromInt(6)))
}

func TestGroupAndSum(t *testing.T) {
	type line struct {
		key    string
		amount decimal.Decimal
	}
	lines := []line{
		{key: "a", amount: decimal.NewFromInt(1)},
		{key: "b", amount: decimal.NewFromInt(2)},
		{key: "a", amount: decimal.NewFromInt(3)},
	}
	groups := money.GroupAndSum(lines,
		func(l line) string { return l.key },
		func(l line) decimal.Decimal { return l.amount },
	)
	require.Len(t, groups, 2)
	assert.True(t, groups["a"].Equal(decimal.NewFromInt(4)))
	assert.True(t, groups["b"].Equal(decimal.NewFromInt(2)))
}
