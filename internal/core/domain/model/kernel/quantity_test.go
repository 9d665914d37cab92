package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewQuantity(t *testing.T) {
	t.Run("accepts zero and positive values", func(t *testing.T) {
		zero, err := kernel.NewQuantity(decimal.Zero)
		require.NoError(t, err)
		assert.True(t, zero.IsZero())

		q, err := kernel.QuantityFromString("2.5")
		require.NoError(t, err)
		assert.Equal(t, "2.5", q.String())
		assert.True(t, q.IsPositive())
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := kernel.QuantityFromString("-0.1")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects malformed text", func(t *testing.T) {
		_, err := kernel.QuantityFromString("two")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is a valid zero", func(t *testing.T) {
		var q kernel.Quantity
		assert.True(t, q.IsZero())
		assert.True(t, q.Equal(kernel.ZeroQuantity()))
	})
}

func TestQuantity_Arithmetic(t *testing.T) {
	t.Run("times multiplies by whole factor", func(t *testing.T) {
		q := kernel.MustQuantity("0.25")

		assert.True(t, q.Times(3).Equal(kernel.MustQuantity("0.75")))
		assert.True(t, q.Times(0).IsZero())
	})

	t.Run("sub floor clamps and reports deficit", func(t *testing.T) {
		q := kernel.MustQuantity("5")

		rest, deficit := q.SubFloor(kernel.MustQuantity("2"))
		assert.True(t, rest.Equal(kernel.MustQuantity("3")))
		assert.True(t, deficit.IsZero())

		rest, deficit = q.SubFloor(kernel.MustQuantity("8"))
		assert.True(t, rest.IsZero())
		assert.True(t, deficit.Equal(decimal.NewFromInt(3)))
	})

	t.Run("diff is signed", func(t *testing.T) {
		assert.True(t, kernel.MustQuantity("1").Diff(kernel.MustQuantity("4")).Equal(decimal.NewFromInt(-3)))
	})

	t.Run("comparisons", func(t *testing.T) {
		small := kernel.MustQuantity("1")
		big := kernel.MustQuantity("1.5")

		assert.True(t, small.LessThan(big))
		assert.False(t, big.LessThan(small))
		assert.True(t, small.LessThanOrEqual(small))
	})
}

func TestQuantity_SubFloorNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := kernel.MustQuantity(decimal.NewFromInt(rapid.Int64Range(0, 1_000_000).Draw(t, "a")).Shift(-2).String())
		b := kernel.MustQuantity(decimal.NewFromInt(rapid.Int64Range(0, 1_000_000).Draw(t, "b")).Shift(-2).String())

		rest, deficit := a.SubFloor(b)

		if rest.Decimal().IsNegative() || deficit.IsNegative() {
			t.Fatalf("negative result: rest=%s deficit=%s", rest, deficit)
		}
		if !rest.Decimal().Sub(deficit).Equal(a.Decimal().Sub(b.Decimal())) {
			t.Fatalf("rest - deficit must equal a - b: %s - %s != %s - %s", rest, deficit, a, b)
		}
	})
}

func TestQuantity_TextRoundTrip(t *testing.T) {
	q := kernel.MustQuantity("12.125")

	text, err := q.MarshalText()
	require.NoError(t, err)

	var parsed kernel.Quantity
	require.NoError(t, parsed.UnmarshalText(text))
	assert.True(t, parsed.Equal(q))
}
