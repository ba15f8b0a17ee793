//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"syncro-backend/internal/domain/order"
	"syncro-backend/internal/domain/review"
	"syncro-backend/internal/pkg/ptr"
	"syncro-backend/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Zero(t, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Excellent service!", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "below minimum rating", mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) }, errIs: review.ErrInvalidRating},
			{name: "minimum valid rating", mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) }},
			{name: "maximum valid rating", mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) }},
			{name: "above maximum rating", mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) }, errIs: review.ErrInvalidRating},
			{name: "negative rating", mutate: func(b *builder.ReviewBuilder) { b.WithRating(-1) }, errIs: review.ErrInvalidRating},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "no comment", mutate: func(b *builder.ReviewBuilder) { b.WithoutComment() }},
			{name: "minimum length comment", mutate: func(b *builder.ReviewBuilder) { b.WithComment("a") }},
			{
				name:   "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength)) },
			},
			{name: "empty comment", mutate: func(b *builder.ReviewBuilder) { b.WithComment("") }, errIs: review.ErrEmptyComment},
			{name: "whitespace only comment", mutate: func(b *builder.ReviewBuilder) { b.WithComment("   ") }, errIs: review.ErrEmptyComment},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		r, err := review.NewReview(1, 2, 3, 4, ptr.Of("  Trimmed comment  "), time.Now())
		require.NoError(t, err)
		assert.Equal(t, "Trimmed comment", r.Comment().String())
		assert.Equal(t, "Trimmed comment", *r.Comment().Ptr())
	})
}

func TestForOrder(t *testing.T) {
	now := time.Now()
	b := builder.NewReviewBuilder()
	completed := b.BuildCompletedOrder()

	t.Run("buyer reviews the seller", func(t *testing.T) {
		r, err := review.ForOrder(completed, completed.BuyerID(), 5, nil, now)
		require.NoError(t, err)
		assert.Equal(t, completed.SellerID(), r.RevieweeID())
		assert.Equal(t, completed.ID(), r.OrderID())
		assert.Nil(t, r.Comment().Ptr())
	})

	t.Run("seller reviews the buyer", func(t *testing.T) {
		r, err := review.ForOrder(completed, completed.SellerID(), 4, nil, now)
		require.NoError(t, err)
		assert.Equal(t, completed.BuyerID(), r.RevieweeID())
	})

	t.Run("outsider cannot review", func(t *testing.T) {
		_, err := review.ForOrder(completed, 999, 4, nil, now)
		assert.ErrorIs(t, err, order.ErrNotParticipant)
	})

	t.Run("pending order is not eligible", func(t *testing.T) {
		pending := order.Reconstruct(1, 2, 3, nil, "Logo", decimal.NewFromInt(10), order.StatusPending, now, nil)
		_, err := review.ForOrder(pending, 2, 4, nil, now)
		assert.ErrorIs(t, err, review.ErrOrderNotEligible)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
