//go:build unit

package bid_test

import (
	"math"
	"strings"
	"testing"

	"syncro-backend/internal/domain/bid"
	"syncro-backend/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BidBuilder)
	errIs  error
}

func TestDraft(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		d, err := builder.NewBidBuilder().BuildDraft()
		require.NoError(t, err)

		assert.EqualValues(t, 7, d.RequestID())
		assert.EqualValues(t, 42, d.SellerID())
		assert.True(t, d.Amount().Decimal().Equal(decimal.RequireFromString("1500.5")))
		require.NotNil(t, d.Message())
		assert.Equal(t, "Can deliver in three days", *d.Message())
	})

	t.Run("identifiers", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "missing request", mutate: func(b *builder.BidBuilder) { b.WithRequestID(0) }, errIs: bid.ErrRequestRequired},
			{name: "negative request", mutate: func(b *builder.BidBuilder) { b.WithRequestID(-3) }, errIs: bid.ErrRequestRequired},
			{name: "missing seller", mutate: func(b *builder.BidBuilder) { b.WithSellerID(0) }, errIs: bid.ErrSellerRequired},
		})
	})

	t.Run("amount", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "smallest positive", mutate: func(b *builder.BidBuilder) { b.WithAmount(0.01) }},
			{name: "zero", mutate: func(b *builder.BidBuilder) { b.WithAmount(0) }, errIs: bid.ErrInvalidAmount},
			{name: "negative", mutate: func(b *builder.BidBuilder) { b.WithAmount(-10) }, errIs: bid.ErrInvalidAmount},
			{name: "NaN", mutate: func(b *builder.BidBuilder) { b.WithAmount(math.NaN()) }, errIs: bid.ErrInvalidAmount},
			{name: "infinity", mutate: func(b *builder.BidBuilder) { b.WithAmount(math.Inf(1)) }, errIs: bid.ErrInvalidAmount},
		})
	})

	t.Run("message", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "absent", mutate: func(b *builder.BidBuilder) { b.WithoutMessage() }},
			{
				name:   "at maximum length",
				mutate: func(b *builder.BidBuilder) { b.Message = ptrTo(strings.Repeat("あ", bid.MaxMessageLength)) },
			},
			{
				name:   "over maximum length",
				mutate: func(b *builder.BidBuilder) { b.Message = ptrTo(strings.Repeat("a", bid.MaxMessageLength+1)) },
				errIs:  bid.ErrMessageTooLong,
			},
			{
				name:   "NUL character",
				mutate: func(b *builder.BidBuilder) { b.Message = ptrTo("hi\x00there") },
				errIs:  bid.ErrInvalidMessage,
			},
			{
				name:   "invalid UTF-8",
				mutate: func(b *builder.BidBuilder) { b.Message = ptrTo("caf\xe9") },
				errIs:  bid.ErrInvalidMessage,
			},
		})
	})

	t.Run("blank message is stored as absent", func(t *testing.T) {
		d, err := builder.NewBidBuilder().With(func(b *builder.BidBuilder) { b.Message = ptrTo("   ") }).BuildDraft()
		require.NoError(t, err)
		assert.Nil(t, d.Message())
	})
}

func TestAmount(t *testing.T) {
	a, err := bid.NewAmount(1234.56)
	require.NoError(t, err)
	assert.Equal(t, "1234.56", a.String())
	assert.InDelta(t, 1234.56, a.Float64(), 1e-9)

	_, err = bid.NewAmountFromDecimal(decimal.Zero)
	assert.ErrorIs(t, err, bid.ErrInvalidAmount)
}

func TestReconstruct(t *testing.T) {
	b := builder.NewBidBuilder().WithID(9).BuildDomain()
	assert.EqualValues(t, 9, b.ID())
	assert.EqualValues(t, 7, b.RequestID())
	assert.Equal(t, builder.NewBidBuilder().CreatedAt, b.CreatedAt())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBidBuilder().With(c.mutate).BuildDraft()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func ptrTo(s string) *string { return &s }
