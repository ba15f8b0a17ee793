package commands

import (
	"context"

	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/infra"
	"syncro-backend/internal/pkg/clock"
	"syncro-backend/internal/pkg/errs"
	"syncro-backend/internal/realtime"
	"syncro-backend/internal/usecase/shared"
)

var (
	ErrRequestNotFound  = errs.New("request not found")
	ErrBidNotFound      = errs.New("bid not found")
	ErrClientRoleNeeded = errs.New("active role must be client to post a request")
)

type CreateRequestInput struct {
	Title       string
	Description string
}

type RequestCommands interface {
	Create(ctx context.Context, identity user.Identity, in CreateRequestInput) (rfp.RequestID, error)
	Cancel(ctx context.Context, identity user.Identity, id rfp.RequestID) (*rfp.Request, error)
	Accept(ctx context.Context, identity user.Identity, id rfp.RequestID, bidID int64) (*rfp.Request, error)
}

type requestCommandsImpl struct {
	uow    shared.UnitOfWork
	fanout *Fanout
	clock  clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, fanout *Fanout, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{uow: uow, fanout: fanout, clock: clk}
}

func (c *requestCommandsImpl) Create(ctx context.Context, identity user.Identity, in CreateRequestInput) (rfp.RequestID, error) {
	if identity.Role != user.RoleClient {
		return 0, ErrClientRoleNeeded
	}
	req, err := rfp.NewRequest(identity.UserID, in.Title, in.Description)
	if err != nil {
		return 0, err
	}

	var id rfp.RequestID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var cerr error
		id, cerr = tx.Requests().Create(ctx, tx.DB(), req)
		return cerr
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (c *requestCommandsImpl) Cancel(ctx context.Context, identity user.Identity, id rfp.RequestID) (*rfp.Request, error) {
	return c.close(ctx, id, func(_ context.Context, _ shared.Tx, req *rfp.Request) error {
		return req.Cancel(identity.UserID, c.clock.Now())
	})
}

// Accept closes the request with the chosen bid. The bid must belong to the request.
func (c *requestCommandsImpl) Accept(ctx context.Context, identity user.Identity, id rfp.RequestID, bidID int64) (*rfp.Request, error) {
	return c.close(ctx, id, func(ctx context.Context, tx shared.Tx, req *rfp.Request) error {
		snap, err := tx.Reads().BidByID(ctx, bidID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBidNotFound
			}
			return err
		}
		return req.Accept(identity.UserID, snap.ID, snap.RequestID, c.clock.Now())
	})
}

// close locks the request, applies the transition, persists it, and only
// after commit tells the room that bidding is over.
func (c *requestCommandsImpl) close(ctx context.Context, id rfp.RequestID, transition func(context.Context, shared.Tx, *rfp.Request) error) (*rfp.Request, error) {
	var closed *rfp.Request
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Requests().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if err := transition(ctx, tx, req); err != nil {
			return err
		}
		if err := tx.Requests().Close(ctx, tx.DB(), req); err != nil {
			return err
		}
		closed = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.fanout.Broadcast(context.WithoutCancel(ctx), id, realtime.EventRequestClosed, realtime.NewRequestClosedPayload(closed))
	return closed, nil
}
