package gateway

import (
	"encoding/json"
	"errors"
	"log/slog"

	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/realtime"
	"syncro-backend/internal/usecase/commands"
)

var errMalformedPayload = errors.New("malformed payload")

func (c *connection) dispatch(raw []byte) {
	var env realtime.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.replyError("", commands.KindValidation, "message is not a valid envelope", false)
		return
	}

	switch env.Type {
	case realtime.EventJoinRoom:
		c.handleJoin(env.Payload)
	case realtime.EventLeaveRoom:
		c.handleLeave(env.Payload)
	case realtime.EventSubmitBid:
		c.handleSubmitBid(env.Payload)
	default:
		c.replyError(env.Type, commands.KindValidation, "unknown event type", false)
	}
}

func decodeRoom(payload json.RawMessage) (rfp.RequestID, error) {
	var p realtime.RoomPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return 0, err
	}
	id := rfp.RequestID(p.RequestID)
	if !id.Valid() {
		return 0, errMalformedPayload
	}
	return id, nil
}

// handleJoin subscribes first and lists second, so a bid committed in between
// is seen at least once. Clients de-duplicate by bid id.
func (c *connection) handleJoin(payload json.RawMessage) {
	requestID, err := decodeRoom(payload)
	if err != nil {
		c.replyError(realtime.EventJoinRoom, commands.KindValidation, "request_id is required", false)
		return
	}

	c.gw.rooms.Join(c.session.ID(), requestID)

	bids, err := c.gw.history.ListBids(c.ctx, requestID)
	if err != nil {
		c.log.Warn("bid history unavailable", slog.Int64("request_id", requestID.Int64()), slog.Any("error", err))
		c.replyError(realtime.EventJoinRoom, commands.KindStoreUnavailable, "bid history is temporarily unavailable", true)
		return
	}
	c.reply(realtime.EventBidList, realtime.NewBidListPayload(requestID, bids))
}

func (c *connection) handleLeave(payload json.RawMessage) {
	requestID, err := decodeRoom(payload)
	if err != nil {
		c.replyError(realtime.EventLeaveRoom, commands.KindValidation, "request_id is required", false)
		return
	}
	c.gw.rooms.Leave(c.session.ID(), requestID)
}

func (c *connection) handleSubmitBid(payload json.RawMessage) {
	var p realtime.SubmitBidPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		c.replyError(realtime.EventSubmitBid, commands.KindValidation, "malformed submit_bid payload", false)
		return
	}

	result, err := c.gw.bids.SubmitBid(c.ctx, c.session.ID(), c.session.Identity(), commands.SubmitBidInput{
		RequestID: p.RequestID,
		SellerID:  p.SellerID,
		Amount:    p.Amount,
		Message:   p.Message,
	})
	if err != nil {
		if be, ok := commands.AsBidError(err); ok {
			c.replyError(realtime.EventSubmitBid, be.Kind, be.PublicMessage(), be.Retryable())
			return
		}
		c.replyError(realtime.EventSubmitBid, commands.KindStoreUnavailable, "bid could not be stored", true)
		return
	}

	c.reply(realtime.EventBidSubmitted, realtime.NewBidPayload(result.Bid))
}

func (c *connection) replyError(event string, kind commands.BidErrorKind, message string, retryable bool) {
	c.reply(realtime.EventError, realtime.ErrorPayload{
		Event:     event,
		Kind:      string(kind),
		Message:   message,
		Retryable: retryable,
	})
}
