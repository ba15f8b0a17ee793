//go:build unit

package order_test

import (
	"testing"
	"time"

	"syncro-backend/internal/domain/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	buyerID  int64 = 1
	sellerID int64 = 2
	outsider int64 = 3
)

func pendingOrder() *order.Order {
	return order.Reconstruct(10, buyerID, sellerID, nil, "Logo design", decimal.NewFromInt(3000), order.StatusPending, time.Now(), nil)
}

func TestNewOrder(t *testing.T) {
	tests := []struct {
		name    string
		buyer   int64
		service string
		amount  decimal.Decimal
		errIs   error
	}{
		{name: "valid", buyer: buyerID, service: "Logo design", amount: decimal.NewFromInt(100)},
		{name: "self order", buyer: sellerID, service: "Logo design", amount: decimal.NewFromInt(100), errIs: order.ErrSelfOrder},
		{name: "blank service", buyer: buyerID, service: "  ", amount: decimal.NewFromInt(100), errIs: order.ErrEmptyService},
		{name: "zero amount", buyer: buyerID, service: "Logo design", amount: decimal.Zero, errIs: order.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := order.NewOrder(tt.buyer, sellerID, nil, tt.service, tt.amount)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.StatusPending, o.Status())
		})
	}
}

func TestOrderTransitions(t *testing.T) {
	now := time.Now()

	t.Run("seller completes", func(t *testing.T) {
		o := pendingOrder()
		require.NoError(t, o.Complete(sellerID, now))
		assert.Equal(t, order.StatusCompleted, o.Status())
		require.NotNil(t, o.CompletedAt())
	})

	t.Run("buyer cannot complete", func(t *testing.T) {
		assert.ErrorIs(t, pendingOrder().Complete(buyerID, now), order.ErrNotSeller)
	})

	t.Run("outsider cannot complete or cancel", func(t *testing.T) {
		assert.ErrorIs(t, pendingOrder().Complete(outsider, now), order.ErrNotParticipant)
		assert.ErrorIs(t, pendingOrder().Cancel(outsider), order.ErrNotParticipant)
	})

	t.Run("either party cancels", func(t *testing.T) {
		for _, actor := range []int64{buyerID, sellerID} {
			o := pendingOrder()
			require.NoError(t, o.Cancel(actor))
			assert.Equal(t, order.StatusCancelled, o.Status())
		}
	})

	t.Run("finished order cannot move again", func(t *testing.T) {
		o := pendingOrder()
		require.NoError(t, o.Cancel(buyerID))
		assert.ErrorIs(t, o.Complete(sellerID, now), order.ErrNotPending)
		assert.ErrorIs(t, o.Cancel(sellerID), order.ErrNotPending)
	})

	t.Run("counterpart", func(t *testing.T) {
		o := pendingOrder()
		other, err := o.Counterpart(buyerID)
		require.NoError(t, err)
		assert.Equal(t, sellerID, other)
		_, err = o.Counterpart(outsider)
		assert.ErrorIs(t, err, order.ErrNotParticipant)
	})
}
