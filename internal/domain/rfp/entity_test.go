//go:build unit

package rfp_test

import (
	"strings"
	"testing"
	"time"

	"syncro-backend/internal/domain/rfp"
	"syncro-backend/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.RequestBuilder)
		errIs  error
	}{
		{name: "valid request"},
		{name: "empty title", mutate: func(b *builder.RequestBuilder) { b.WithTitle("   ") }, errIs: rfp.ErrEmptyTitle},
		{
			name:   "title at maximum length",
			mutate: func(b *builder.RequestBuilder) { b.WithTitle(strings.Repeat("a", rfp.MaxTitleLength)) },
		},
		{
			name:   "title too long",
			mutate: func(b *builder.RequestBuilder) { b.WithTitle(strings.Repeat("a", rfp.MaxTitleLength+1)) },
			errIs:  rfp.ErrTitleTooLong,
		},
		{name: "empty description", mutate: func(b *builder.RequestBuilder) { b.WithDescription("") }, errIs: rfp.ErrEmptyDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewRequestBuilder()
			if tt.mutate != nil {
				b.With(tt.mutate)
			}
			r, err := b.BuildNew()
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, rfp.StatusOpen, r.Status())
			assert.True(t, r.AcceptsBids())
			assert.Nil(t, r.ClosedAt())
		})
	}
}

func TestRequestClose(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("buyer cancels an open request", func(t *testing.T) {
		r := builder.NewRequestBuilder().BuildDomain()
		require.NoError(t, r.Cancel(r.BuyerID(), now))

		assert.Equal(t, rfp.StatusClosed, r.Status())
		assert.False(t, r.AcceptsBids())
		assert.Nil(t, r.AcceptedBidID())
		require.NotNil(t, r.ClosedAt())
		assert.Equal(t, now, *r.ClosedAt())
	})

	t.Run("buyer accepts a bid on the request", func(t *testing.T) {
		r := builder.NewRequestBuilder().BuildDomain()
		require.NoError(t, r.Accept(r.BuyerID(), 55, r.ID(), now))

		assert.Equal(t, rfp.StatusClosed, r.Status())
		require.NotNil(t, r.AcceptedBidID())
		assert.EqualValues(t, 55, *r.AcceptedBidID())
	})

	t.Run("bid from another request is rejected", func(t *testing.T) {
		r := builder.NewRequestBuilder().BuildDomain()
		err := r.Accept(r.BuyerID(), 55, r.ID()+1, now)
		assert.ErrorIs(t, err, rfp.ErrBidMismatch)
		assert.True(t, r.AcceptsBids())
	})

	t.Run("only the buyer may close", func(t *testing.T) {
		r := builder.NewRequestBuilder().BuildDomain()
		assert.ErrorIs(t, r.Cancel(r.BuyerID()+1, now), rfp.ErrNotOwner)
		assert.ErrorIs(t, r.Accept(r.BuyerID()+1, 55, r.ID(), now), rfp.ErrNotOwner)
	})

	t.Run("closed request stays closed", func(t *testing.T) {
		r := builder.NewRequestBuilder().AsClosed().BuildDomain()
		assert.ErrorIs(t, r.Cancel(r.BuyerID(), now), rfp.ErrAlreadyClosed)
		assert.ErrorIs(t, r.Accept(r.BuyerID(), 55, r.ID(), now), rfp.ErrAlreadyClosed)
	})
}

func TestRequestID(t *testing.T) {
	assert.True(t, rfp.RequestID(1).Valid())
	assert.False(t, rfp.RequestID(0).Valid())
	assert.EqualValues(t, 12, rfp.RequestID(12).Int64())
	assert.True(t, rfp.StatusClosed.IsValid())
	assert.False(t, rfp.Status("pending").IsValid())
}
