//go:build unit

package uow

import (
	"testing"
	"time"

	"syncro-backend/internal/infra"
	"syncro-backend/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "deadlock between bid append and accept", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "wrapped deadlock", err: infra.WrapRepoErr("insert bid", &pgconn.PgError{Code: "40P01"}), want: true},
		{name: "marked commit failure", err: errs.Mark(&pgconn.PgError{Code: "40001"}, errTransactionCommit), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "bad encoding in bid message", err: &pgconn.PgError{Code: "22021"}, want: false},
		{name: "closed request", err: infra.WrapRepoErr("request does not accept bids", nil, infra.KindNotFound), want: false},
		{name: "plain error", err: errs.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestRetryPolicyBackoff(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		floor := time.Duration(1<<attempt) * p.base
		for range 20 {
			got := p.backoff(attempt)
			assert.GreaterOrEqual(t, got, floor, "attempt %d", attempt)
			assert.Less(t, got, floor+floor/5, "attempt %d", attempt)
		}
	}

	t.Run("zero base never sleeps", func(t *testing.T) {
		assert.Zero(t, retryPolicy{}.backoff(2))
	})
}
