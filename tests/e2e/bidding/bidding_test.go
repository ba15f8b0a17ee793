//go:build e2e

package bidding_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/handler/dto/request"
	resdto "syncro-backend/internal/handler/dto/response"
	"syncro-backend/internal/pkg/ptr"
	"syncro-backend/internal/realtime"
	"syncro-backend/tests/common/authtest"
	"syncro-backend/tests/common/dbtest"
	"syncro-backend/tests/common/httptest"
	"syncro-backend/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const bidsPerSeller = 5

type biddingSuite struct {
	e2e.SharedSuite

	buyer   authtest.LoggedInUser
	sellerA authtest.LoggedInUser
	sellerB authtest.LoggedInUser
	wsURL   string
}

func TestBiddingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(biddingSuite))
}

func (s *biddingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	srv := s.StartServer()
	s.wsURL = "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func (s *biddingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.buyer = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "buyer@example.com", string(user.RoleClient))
	s.sellerA = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "seller-a@example.com", string(user.RoleSeller))
	s.sellerB = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "seller-b@example.com", string(user.RoleSeller))
}

// ------------------------------------------------------------
// websocketクライアントのヘルパー
// ------------------------------------------------------------
type client struct {
	t  *testing.T
	ws *websocket.Conn
}

func (s *biddingSuite) dial(u authtest.LoggedInUser) *client {
	t := s.T()
	ws, resp, err := websocket.DefaultDialer.Dial(s.wsURL+"?token="+u.Token, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = ws.Close() })
	return &client{t: t, ws: ws}
}

func (c *client) send(event string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.ws.WriteJSON(realtime.Envelope{Type: event, Payload: raw})
}

func (c *client) read() (realtime.Envelope, error) {
	var env realtime.Envelope
	if err := c.ws.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return env, err
	}
	err := c.ws.ReadJSON(&env)
	return env, err
}

// until reads frames until one of the given type arrives, skipping the rest.
func (c *client) until(event string) realtime.Envelope {
	c.t.Helper()
	for {
		env, err := c.read()
		require.NoError(c.t, err, "waiting for %s", event)
		if env.Type == event {
			return env
		}
	}
}

func (c *client) join(requestID int64) realtime.BidListPayload {
	c.t.Helper()
	require.NoError(c.t, c.send(realtime.EventJoinRoom, realtime.RoomPayload{RequestID: requestID}))
	env := c.until(realtime.EventBidList)
	var list realtime.BidListPayload
	require.NoError(c.t, json.Unmarshal(env.Payload, &list))
	return list
}

// collectBidAdded returns the ids of the first n bid_added frames in arrival order.
func (c *client) collectBidAdded(n int) ([]int64, error) {
	ids := make([]int64, 0, n)
	for len(ids) < n {
		env, err := c.read()
		if err != nil {
			return ids, fmt.Errorf("after %d bid_added frames: %w", len(ids), err)
		}
		if env.Type != realtime.EventBidAdded {
			continue
		}
		var p realtime.BidPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return ids, err
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (s *biddingSuite) createRequest() int64 {
	t := s.T()
	body := request.CreateRequestRequest{Title: "Mobile app prototype", Description: "Clickable prototype for a delivery app"}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/requests", body, s.buyer.Token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var res resdto.RequestResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.ID
}

func (s *biddingSuite) listBids(requestID int64) []resdto.BidResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/requests/%d/bids", requestID), nil, s.buyer.Token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var bids []resdto.BidResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &bids))
	return bids
}

func (s *biddingSuite) TestConcurrentBidsReachEveryone() {
	s.Run("同時入札が全員に配信され、保存順と一致すること", func() {
		t := s.T()
		requestID := s.createRequest()

		buyer := s.dial(s.buyer)
		sellerA := s.dial(s.sellerA)
		sellerB := s.dial(s.sellerB)
		for _, c := range []*client{buyer, sellerA, sellerB} {
			require.Empty(t, c.join(requestID).Bids)
		}

		submit := func(c *client, seller authtest.LoggedInUser, base float64) error {
			for i := range bidsPerSeller {
				err := c.send(realtime.EventSubmitBid, realtime.SubmitBidPayload{
					RequestID: requestID,
					SellerID:  seller.ID,
					Amount:    ptr.Of(base + float64(i)),
				})
				if err != nil {
					return err
				}
			}
			return nil
		}

		total := 2 * bidsPerSeller
		observed := make([][]int64, 3)
		var g errgroup.Group
		g.Go(func() error { return submit(sellerA, s.sellerA, 100) })
		g.Go(func() error { return submit(sellerB, s.sellerB, 200) })
		for i, c := range []*client{buyer, sellerA, sellerB} {
			g.Go(func() error {
				ids, err := c.collectBidAdded(total)
				observed[i] = ids
				return err
			})
		}
		require.NoError(t, g.Wait())

		stored := s.listBids(requestID)
		require.Len(t, stored, total)
		storedIDs := make([]int64, len(stored))
		for i, b := range stored {
			storedIDs[i] = b.ID
		}
		requireCommittedOrder(t, stored)

		// 到着順は揺れうるが、全員が同じ集合を一度ずつ受け取る
		for i, ids := range observed {
			require.Empty(t, cmp.Diff(storedIDs, ids, cmpopts.SortSlices(func(a, b int64) bool { return a < b })), "observer %d", i)
		}

		// 各セラーの入札は送信順のまま保存される
		for _, seller := range []authtest.LoggedInUser{s.sellerA, s.sellerB} {
			var amounts []string
			for _, b := range stored {
				if b.SellerID == seller.ID {
					amounts = append(amounts, b.Amount)
				}
			}
			require.Len(t, amounts, bidsPerSeller)
			require.IsIncreasing(t, toFloats(t, amounts))
		}

		// 後から参加したクライアントも同じ順序の履歴を受け取る
		late := s.dial(s.sellerA)
		history := late.join(requestID)
		lateIDs := make([]int64, len(history.Bids))
		for i, b := range history.Bids {
			lateIDs[i] = b.ID
		}
		require.Empty(t, cmp.Diff(storedIDs, lateIDs))
	})
}

func (s *biddingSuite) TestJoinReturnsStoredHistory() {
	s.Run("参加時の履歴は挿入順ではなく(時刻, id)順で返ること", func() {
		t := s.T()
		room := s.SeedBidRoom("Logo refresh", "seller-c@example.com")
		seller := room.Sellers[0]

		base := time.Now().UTC().Truncate(time.Millisecond)
		late := dbtest.CreateTestBid(t, s.DB, room.RequestID, seller.ID, "300", base.Add(2*time.Second))
		early := dbtest.CreateTestBid(t, s.DB, room.RequestID, seller.ID, "250.50", base)
		tied := dbtest.CreateTestBid(t, s.DB, room.RequestID, seller.ID, "275", base)

		list := s.dial(seller).join(room.RequestID)
		require.Equal(t, room.RequestID, list.RequestID)
		got := make([]int64, 0, len(list.Bids))
		for _, b := range list.Bids {
			got = append(got, b.ID)
		}
		require.Equal(t, []int64{early, tied, late}, got)
		require.Equal(t, "250.5", list.Bids[0].Amount.String())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/requests/%d/bids", room.RequestID), nil, room.Buyer.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var stored []resdto.BidResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &stored))
		requireCommittedOrder(t, stored)
		require.Len(t, stored, 3)
		require.Equal(t, early, stored[0].ID)
	})
}

func (s *biddingSuite) TestSubmitterAcknowledgement() {
	s.Run("入札者にはbid_submittedが返り、金額は正規化されること", func() {
		t := s.T()
		requestID := s.createRequest()
		seller := s.dial(s.sellerA)
		seller.join(requestID)

		require.NoError(t, seller.send(realtime.EventSubmitBid, realtime.SubmitBidPayload{
			RequestID: requestID,
			SellerID:  s.sellerA.ID,
			Amount:    ptr.Of(1500.50),
			Message:   ptr.Of("  Can start tomorrow  "),
		}))

		env := seller.until(realtime.EventBidSubmitted)
		var ack realtime.BidPayload
		require.NoError(t, json.Unmarshal(env.Payload, &ack))
		require.Equal(t, "1500.5", ack.Amount.String())
		require.Equal(t, requestID, ack.RequestID)
		require.NotEmpty(t, ack.Timestamp)

		stored := s.listBids(requestID)
		require.Len(t, stored, 1)
		require.Equal(t, ack.ID, stored[0].ID)
	})
}

func (s *biddingSuite) TestRejectedBids() {
	s.Run("不正な入札は入札者だけにエラーが返り、保存されないこと", func() {
		t := s.T()
		requestID := s.createRequest()
		buyer := s.dial(s.buyer)
		buyer.join(requestID)
		seller := s.dial(s.sellerA)
		seller.join(requestID)

		cases := []struct {
			name    string
			payload realtime.SubmitBidPayload
			kind    string
		}{
			{name: "金額が0", payload: realtime.SubmitBidPayload{RequestID: requestID, SellerID: s.sellerA.ID, Amount: ptr.Of(0.0)}, kind: "validation_error"},
			{name: "金額なし", payload: realtime.SubmitBidPayload{RequestID: requestID, SellerID: s.sellerA.ID}, kind: "validation_error"},
			{name: "他人のseller_id", payload: realtime.SubmitBidPayload{RequestID: requestID, SellerID: s.sellerB.ID, Amount: ptr.Of(10.0)}, kind: "validation_error"},
			{name: "存在しないリクエスト", payload: realtime.SubmitBidPayload{RequestID: requestID + 1000, SellerID: s.sellerA.ID, Amount: ptr.Of(10.0)}, kind: "request_closed"},
		}
		for _, tc := range cases {
			require.NoError(t, seller.send(realtime.EventSubmitBid, tc.payload), tc.name)
			env := seller.until(realtime.EventError)
			var p realtime.ErrorPayload
			require.NoError(t, json.Unmarshal(env.Payload, &p))
			require.Equal(t, tc.kind, p.Kind, tc.name)
			require.False(t, p.Retryable, tc.name)
		}

		require.Empty(t, s.listBids(requestID))
	})

	s.Run("clientロールの接続からは入札できないこと", func() {
		t := s.T()
		requestID := s.createRequest()
		buyer := s.dial(s.buyer)
		buyer.join(requestID)

		require.NoError(t, buyer.send(realtime.EventSubmitBid, realtime.SubmitBidPayload{
			RequestID: requestID, SellerID: s.buyer.ID, Amount: ptr.Of(10.0),
		}))
		env := buyer.until(realtime.EventError)
		var p realtime.ErrorPayload
		require.NoError(t, json.Unmarshal(env.Payload, &p))
		require.Equal(t, "validation_error", p.Kind)
	})
}

func (s *biddingSuite) TestAcceptClosesRoom() {
	s.Run("入札を採用するとルームにrequest_closedが届き、以降の入札は拒否されること", func() {
		t := s.T()
		requestID := s.createRequest()
		buyer := s.dial(s.buyer)
		buyer.join(requestID)
		seller := s.dial(s.sellerA)
		seller.join(requestID)

		require.NoError(t, seller.send(realtime.EventSubmitBid, realtime.SubmitBidPayload{
			RequestID: requestID, SellerID: s.sellerA.ID, Amount: ptr.Of(300.0),
		}))
		ack := seller.until(realtime.EventBidSubmitted)
		var bid realtime.BidPayload
		require.NoError(t, json.Unmarshal(ack.Payload, &bid))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/requests/%d/accept", requestID),
			request.AcceptBidRequest{BidID: bid.ID}, s.buyer.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		for _, c := range []*client{buyer, seller} {
			env := c.until(realtime.EventRequestClosed)
			var closed realtime.RequestClosedPayload
			require.NoError(t, json.Unmarshal(env.Payload, &closed))
			require.Equal(t, "closed", closed.Status)
			require.NotNil(t, closed.AcceptedBidID)
			require.Equal(t, bid.ID, *closed.AcceptedBidID)
		}

		require.NoError(t, seller.send(realtime.EventSubmitBid, realtime.SubmitBidPayload{
			RequestID: requestID, SellerID: s.sellerA.ID, Amount: ptr.Of(250.0),
		}))
		env := seller.until(realtime.EventError)
		var p realtime.ErrorPayload
		require.NoError(t, json.Unmarshal(env.Payload, &p))
		require.Equal(t, "request_closed", p.Kind)

		// クローズ済みのリクエストはキャンセルできない
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/requests/%d/cancel", requestID), nil, s.buyer.Token)
		require.Equal(t, http.StatusConflict, w.Code)

		require.Len(t, s.listBids(requestID), 1)
	})
}

// requireCommittedOrder asserts (timestamp, id) ascending order.
func requireCommittedOrder(t *testing.T, bids []resdto.BidResponse) {
	t.Helper()
	for i := 1; i < len(bids); i++ {
		prev, err := time.Parse(time.RFC3339Nano, bids[i-1].Timestamp)
		require.NoError(t, err)
		cur, err := time.Parse(time.RFC3339Nano, bids[i].Timestamp)
		require.NoError(t, err)
		require.False(t, cur.Before(prev), "bid %d precedes bid %d", bids[i].ID, bids[i-1].ID)
		if cur.Equal(prev) {
			require.Greater(t, bids[i].ID, bids[i-1].ID)
		}
	}
}

func toFloats(t *testing.T, amounts []string) []float64 {
	t.Helper()
	out := make([]float64, len(amounts))
	for i, a := range amounts {
		_, err := fmt.Sscan(a, &out[i])
		require.NoError(t, err)
	}
	return out
}
