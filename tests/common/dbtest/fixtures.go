//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"syncro-backend/internal/pkg/password"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TestPassword is the plain-text password behind the fixture hash.
const TestPassword = "password123"

var (
	passwordHashOnce sync.Once
	passwordHash     string
	passwordHashErr  error
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	passwordHashOnce.Do(func() {
		passwordHash, passwordHashErr = password.HashPassword(TestPassword)
	})
	require.NoError(t, passwordHashErr)
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name, active_role, is_active)
		VALUES ($1, $2, 'Test', 'User', $3, true)
		ON CONFLICT (email) DO UPDATE SET active_role = EXCLUDED.active_role
		RETURNING id`,
		email, testPasswordHash(t), role).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func DeactivateTestUser(t *testing.T, db DBLike, email string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

func CreateTestRequest(t *testing.T, db DBLike, buyerID int64, title string) int64 {
	t.Helper()

	var requestID int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO requests (buyer_id, title, description) VALUES ($1, $2, 'fixture request') RETURNING id",
		buyerID, title).Scan(&requestID)
	require.NoError(t, err)

	return requestID
}

// CreateTestBid writes a bid row with an explicit timestamp, bypassing the request lock.
// Callers use it to lay down history in an order different from id order.
func CreateTestBid(t *testing.T, db DBLike, requestID, sellerID int64, amount string, at time.Time) int64 {
	t.Helper()

	var bidID int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO bids (request_id, seller_id, amount, created_at) VALUES ($1, $2, $3::numeric, $4) RETURNING id",
		requestID, sellerID, amount, at).Scan(&bidID)
	require.NoError(t, err)

	return bidID
}

// CreateTestOrder inserts an order directly in the given status; completed orders get a completion time.
func CreateTestOrder(t *testing.T, db DBLike, buyerID, sellerID int64, status string) int64 {
	t.Helper()

	var orderID int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO orders (buyer_id, seller_id, service_name, amount, status, completed_at)
		VALUES ($1, $2, 'Logo design', 120.00, $3, CASE WHEN $3 = 'completed' THEN now() END)
		RETURNING id`,
		buyerID, sellerID, status).Scan(&orderID)
	require.NoError(t, err)

	return orderID
}

func CategoryID(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), "SELECT id FROM categories WHERE name = $1", name).Scan(&id)
	require.NoError(t, err)

	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (name) VALUES
		    ('Design'),
		    ('Development'),
		    ('Writing')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
