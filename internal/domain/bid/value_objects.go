package bid

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const MaxMessageLength = 500

var (
	ErrInvalidAmount   = errors.New("amount must be a positive finite number")
	ErrMessageTooLong  = errors.New("message exceeds maximum length")
	ErrInvalidMessage  = errors.New("message must be valid UTF-8 without NUL characters")
	ErrSellerRequired  = errors.New("seller_id is required")
	ErrRequestRequired = errors.New("request_id is required")
)

// Amount is a strictly positive money value kept in decimal form end to end.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(v float64) (Amount, error) {
	// decimal.NewFromFloat panics on NaN and Inf
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Amount{}, ErrInvalidAmount
	}
	return NewAmountFromDecimal(decimal.NewFromFloat(v))
}

func NewAmountFromDecimal(d decimal.Decimal) (Amount, error) {
	if !d.IsPositive() {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: d}, nil
}

func (a Amount) Decimal() decimal.Decimal { return a.value }

func (a Amount) Float64() float64 { return a.value.InexactFloat64() }

func (a Amount) String() string { return a.value.String() }

// Message is the optional free text attached to a bid.
type Message struct {
	text  string
	valid bool
}

// NewMessage treats nil and whitespace-only input as absent.
func NewMessage(s *string) (Message, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return Message{}, nil
	}
	// Postgres text cannot hold NUL or invalid UTF-8
	if !utf8.ValidString(*s) || strings.ContainsRune(*s, 0) {
		return Message{}, ErrInvalidMessage
	}
	if utf8.RuneCountInString(*s) > MaxMessageLength {
		return Message{}, ErrMessageTooLong
	}
	return Message{text: *s, valid: true}, nil
}

func (m Message) Ptr() *string {
	if !m.valid {
		return nil
	}
	t := m.text
	return &t
}
