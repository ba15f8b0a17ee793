//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"testing"

	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/handler/dto/request"
	resdto "syncro-backend/internal/handler/dto/response"
	"syncro-backend/internal/pkg/ptr"
	"syncro-backend/tests/common/authtest"
	"syncro-backend/tests/common/dbtest"
	"syncro-backend/tests/common/httptest"
	"syncro-backend/tests/e2e"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type reviewSuite struct {
	e2e.SharedSuite

	buyer  authtest.LoggedInUser
	seller authtest.LoggedInUser
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reviewSuite))
}

func (s *reviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.buyer = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "buyer@example.com", string(user.RoleClient))
	s.seller = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "seller@example.com", string(user.RoleSeller))
}

func reviewsURL(orderID int64) string {
	return fmt.Sprintf("/api/orders/%d/reviews", orderID)
}

func (s *reviewSuite) TestOrderLifecycleToReview() {
	s.Run("出品から注文、完了、レビューまで一連で動作すること", func() {
		t := s.T()

		listingBody := request.CreateListingRequest{
			CategoryID:  dbtest.CategoryID(t, s.DB, "Design"),
			Title:       "Logo design",
			Description: "Three concepts and two revisions",
			Price:       decimal.RequireFromString("120.00"),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/listings", listingBody, s.seller.Token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var listing resdto.ListingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listing))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orders", request.CreateOrderRequest{ListingID: listing.ID}, s.buyer.Token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var order resdto.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &order))
		require.Equal(t, "pending", order.Status)
		require.Equal(t, "120.00", order.Amount)

		// 未完了の注文はレビューできない
		review := request.CreateReviewRequest{Rating: 5, Comment: ptr.Of("Great work")}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(order.ID), review, s.buyer.Token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// 購入者は完了できない
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/orders/%d/complete", order.ID), nil, s.buyer.Token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf("/api/orders/%d/complete", order.ID), nil, s.seller.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(order.ID), review, s.buyer.Token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created resdto.ReviewResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, s.buyer.ID, created.ReviewerID)
		require.Equal(t, s.seller.ID, created.RevieweeID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/orders/%d", order.ID), nil, s.buyer.Token)
		require.Equal(t, http.StatusOK, w.Code)
		var reloaded resdto.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reloaded))
		require.True(t, reloaded.HasReview)
	})
}

func (s *reviewSuite) TestCreate() {
	tests := []struct {
		name           string
		status         string
		reviewer       func() authtest.LoggedInUser
		body           request.CreateReviewRequest
		expectedStatus int
		description    string
	}{
		{
			name:           "購入者によるレビュー",
			status:         "completed",
			reviewer:       func() authtest.LoggedInUser { return s.buyer },
			body:           request.CreateReviewRequest{Rating: 4},
			expectedStatus: http.StatusCreated,
			description:    "コメントなしでもレビューできること",
		},
		{
			name:           "出品者によるレビュー",
			status:         "completed",
			reviewer:       func() authtest.LoggedInUser { return s.seller },
			body:           request.CreateReviewRequest{Rating: 5, Comment: ptr.Of("Clear brief")},
			expectedStatus: http.StatusCreated,
			description:    "出品者も購入者をレビューできること",
		},
		{
			name:           "キャンセル済みの注文",
			status:         "cancelled",
			reviewer:       func() authtest.LoggedInUser { return s.buyer },
			body:           request.CreateReviewRequest{Rating: 3},
			expectedStatus: http.StatusConflict,
			description:    "完了していない注文はレビューできないこと",
		},
		{
			name:           "評価が範囲外",
			status:         "completed",
			reviewer:       func() authtest.LoggedInUser { return s.buyer },
			body:           request.CreateReviewRequest{Rating: 6},
			expectedStatus: http.StatusBadRequest,
			description:    "評価は1から5まで",
		},
		{
			name:           "空白のみのコメント",
			status:         "completed",
			reviewer:       func() authtest.LoggedInUser { return s.buyer },
			body:           request.CreateReviewRequest{Rating: 3, Comment: ptr.Of("   ")},
			expectedStatus: http.StatusBadRequest,
			description:    "空白のみのコメントは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			orderID := dbtest.CreateTestOrder(t, s.DB, s.buyer.ID, s.seller.ID, tt.status)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(orderID), tt.body, tt.reviewer().Token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description+": "+w.Body.String())
		})
	}

	s.Run("同じ注文を二度レビューできないこと", func() {
		t := s.T()
		orderID := dbtest.CreateTestOrder(t, s.DB, s.buyer.ID, s.seller.ID, "completed")
		body := request.CreateReviewRequest{Rating: 5}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(orderID), body, s.buyer.Token)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(orderID), body, s.buyer.Token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "You have already reviewed this order")
	})

	s.Run("注文の当事者以外はレビューできないこと", func() {
		t := s.T()
		orderID := dbtest.CreateTestOrder(t, s.DB, s.buyer.ID, s.seller.ID, "completed")
		stranger := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleClient))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(orderID), request.CreateReviewRequest{Rating: 1}, stranger.Token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("存在しない注文", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(999999), request.CreateReviewRequest{Rating: 5}, s.buyer.Token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Order not found")
	})
}

func (s *reviewSuite) TestListByUser() {
	s.Run("受け取ったレビューを新しい順にページングできること", func() {
		t := s.T()
		for range 3 {
			orderID := dbtest.CreateTestOrder(t, s.DB, s.buyer.ID, s.seller.ID, "completed")
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL(orderID), request.CreateReviewRequest{Rating: 5}, s.buyer.Token)
			require.Equal(t, http.StatusCreated, w.Code)
		}

		url := fmt.Sprintf("/api/users/%d/reviews?limit=2", s.seller.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.buyer.Token)
		require.Equal(t, http.StatusOK, w.Code)
		var page resdto.ReviewListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Items, 2)
		require.NotEmpty(t, page.NextCursor)
		require.Greater(t, page.Items[0].ID, page.Items[1].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url+"&after="+page.NextCursor, nil, s.buyer.Token)
		require.Equal(t, http.StatusOK, w.Code)
		var rest resdto.ReviewListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rest))
		require.Len(t, rest.Items, 1)
		require.Empty(t, rest.NextCursor)
		require.Less(t, rest.Items[0].ID, page.Items[1].ID)
	})

	s.Run("不正なカーソルは400になること", func() {
		t := s.T()
		url := fmt.Sprintf("/api/users/%d/reviews?after=not-a-cursor", s.seller.ID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.buyer.Token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")
	})
}
