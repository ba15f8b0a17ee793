package realtime

import (
	"encoding/json"
	"time"

	"syncro-backend/internal/domain/bid"
	"syncro-backend/internal/domain/rfp"
)

// Inbound events
const (
	EventJoinRoom  = "join_room"
	EventLeaveRoom = "leave_room"
	EventSubmitBid = "submit_bid"
)

// Outbound events
const (
	EventBidAdded      = "bid_added"
	EventBidList       = "bid_list"
	EventBidSubmitted  = "bid_submitted"
	EventRequestClosed = "request_closed"
	EventError         = "error"
)

// Envelope is the frame exchanged in both directions.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func Encode(event string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: event, Payload: raw})
}

type RoomPayload struct {
	RequestID int64 `json:"request_id"`
}

type SubmitBidPayload struct {
	RequestID int64    `json:"request_id"`
	SellerID  int64    `json:"seller_id"`
	Amount    *float64 `json:"amount"`
	Message   *string  `json:"message"`
}

// BidPayload is the normalized wire form of a stored bid.
type BidPayload struct {
	ID        int64       `json:"id"`
	RequestID int64       `json:"request_id"`
	SellerID  int64       `json:"seller_id"`
	Amount    json.Number `json:"amount"`
	Message   *string     `json:"message"`
	Timestamp string      `json:"timestamp"`
}

func NewBidPayload(b *bid.Bid) BidPayload {
	return BidPayload{
		ID:        b.ID(),
		RequestID: b.RequestID().Int64(),
		SellerID:  b.SellerID(),
		Amount:    json.Number(b.Amount().String()),
		Message:   b.Message(),
		Timestamp: b.CreatedAt().UTC().Format(time.RFC3339Nano),
	}
}

type BidListPayload struct {
	RequestID int64        `json:"request_id"`
	Bids      []BidPayload `json:"bids"`
}

func NewBidListPayload(requestID rfp.RequestID, bids []*bid.Bid) BidListPayload {
	payloads := make([]BidPayload, len(bids))
	for i, b := range bids {
		payloads[i] = NewBidPayload(b)
	}
	return BidListPayload{RequestID: requestID.Int64(), Bids: payloads}
}

type RequestClosedPayload struct {
	RequestID     int64  `json:"request_id"`
	Status        string `json:"status"`
	AcceptedBidID *int64 `json:"accepted_bid_id"`
}

func NewRequestClosedPayload(r *rfp.Request) RequestClosedPayload {
	return RequestClosedPayload{
		RequestID:     r.ID().Int64(),
		Status:        string(r.Status()),
		AcceptedBidID: r.AcceptedBidID(),
	}
}

type ErrorPayload struct {
	Event     string `json:"event"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}
