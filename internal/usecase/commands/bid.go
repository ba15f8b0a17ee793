package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"syncro-backend/internal/domain/bid"
	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/infra"
	"syncro-backend/internal/pkg/config"
	"syncro-backend/internal/realtime"
	"syncro-backend/internal/usecase/shared"
)

type BidErrorKind string

const (
	KindValidation       BidErrorKind = "validation_error"
	KindRequestClosed    BidErrorKind = "request_closed"
	KindStoreUnavailable BidErrorKind = "store_unavailable"
)

var (
	ErrSellerRoleRequired = errors.New("active role must be seller to bid")
	ErrSellerMismatch     = errors.New("seller_id does not match the authenticated user")
	ErrAmountRequired     = errors.New("amount is required")
)

// BidError is the only error SubmitBid returns. It is reported to the submitter only.
type BidError struct {
	Kind BidErrorKind
	Err  error
}

func (e *BidError) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *BidError) Unwrap() error { return e.Err }

// Retryable reports whether resubmitting the same bid may succeed.
func (e *BidError) Retryable() bool {
	return e.Kind == KindStoreUnavailable
}

// PublicMessage is safe to show the submitter. Store details stay in the logs.
func (e *BidError) PublicMessage() string {
	switch e.Kind {
	case KindRequestClosed:
		return "request does not exist or is closed"
	case KindStoreUnavailable:
		return "bid could not be stored, try again"
	default:
		return e.Err.Error()
	}
}

func AsBidError(err error) (*BidError, bool) {
	var be *BidError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

type SubmitBidInput struct {
	RequestID int64
	SellerID  int64
	Amount    *float64
	Message   *string
}

type SubmitBidResult struct {
	Bid      *bid.Bid
	Warnings []DeliveryWarning
}

type BidCommands interface {
	SubmitBid(ctx context.Context, conn realtime.ConnID, identity user.Identity, in SubmitBidInput) (*SubmitBidResult, error)
}

type bidEngine struct {
	store         shared.BidStore
	fanout        *Fanout
	appendTimeout time.Duration
	metrics       *realtime.Metrics
}

func NewBidEngine(store shared.BidStore, fanout *Fanout, cfg config.RealtimeConfig, metrics *realtime.Metrics) BidCommands {
	if metrics == nil {
		metrics = realtime.NopMetrics()
	}
	return &bidEngine{
		store:         store,
		fanout:        fanout,
		appendTimeout: cfg.AppendTimeout,
		metrics:       metrics,
	}
}

// SubmitBid validates, persists, and broadcasts one bid. Once validation
// passes it is not cancelled by the caller: the append and the fan-out run
// to completion under their own deadlines.
func (e *bidEngine) SubmitBid(ctx context.Context, conn realtime.ConnID, identity user.Identity, in SubmitBidInput) (*SubmitBidResult, error) {
	draft, err := validateBid(identity, in)
	if err != nil {
		return nil, e.reject(KindValidation, err)
	}

	ctx = context.WithoutCancel(ctx)

	stored, err := e.append(ctx, draft)
	if err != nil {
		kind := classifyAppendErr(err)
		slog.Info("bid rejected",
			slog.String("conn_id", conn.String()),
			slog.Int64("request_id", in.RequestID),
			slog.Int64("seller_id", in.SellerID),
			slog.String("kind", string(kind)),
			slog.Any("error", err))
		return nil, e.reject(kind, err)
	}
	e.metrics.BidsAccepted.Add(1)

	warnings := e.fanout.Broadcast(ctx, stored.RequestID(), realtime.EventBidAdded, realtime.NewBidPayload(stored))

	return &SubmitBidResult{Bid: stored, Warnings: warnings}, nil
}

func (e *bidEngine) append(ctx context.Context, draft *bid.Draft) (*bid.Bid, error) {
	actx, cancel := context.WithTimeout(ctx, e.appendTimeout)
	defer cancel()

	started := time.Now()
	defer func() { e.metrics.AppendDuration.Observe(time.Since(started).Seconds()) }()

	return e.store.AppendBid(actx, draft)
}

func (e *bidEngine) reject(kind BidErrorKind, err error) error {
	e.metrics.BidsRejected.With("kind", string(kind)).Add(1)
	return &BidError{Kind: kind, Err: err}
}

func validateBid(identity user.Identity, in SubmitBidInput) (*bid.Draft, error) {
	if !identity.IsSeller() {
		return nil, ErrSellerRoleRequired
	}
	if in.SellerID <= 0 {
		return nil, bid.ErrSellerRequired
	}
	if in.SellerID != identity.UserID {
		return nil, ErrSellerMismatch
	}
	if in.Amount == nil {
		return nil, ErrAmountRequired
	}
	return bid.NewDraft(rfp.RequestID(in.RequestID), in.SellerID, *in.Amount, in.Message)
}

func classifyAppendErr(err error) BidErrorKind {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return KindRequestClosed
	case infra.IsKind(err, infra.KindForeignKeyViolated), infra.IsKind(err, infra.KindCheckViolated),
		infra.IsKind(err, infra.KindInvalidData):
		return KindValidation
	default:
		return KindStoreUnavailable
	}
}
