package shared

import (
	"syncro-backend/internal/domain/rfp"

	"github.com/shopspring/decimal"
)

// Minimal snapshots for command read operations

type UserSnapshot struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	ActiveRole   string
	IsActive     bool
}

type BidSnapshot struct {
	ID        int64
	RequestID rfp.RequestID
	SellerID  int64
	Amount    decimal.Decimal
}
