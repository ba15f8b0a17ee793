//go:build e2e

package catalog_test

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

type catalogSuite struct {
	e2e.SharedSuite

	seller authtest.LoggedInUser
	other  authtest.LoggedInUser
	buyer  authtest.LoggedInUser
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.seller = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "seller@example.com", string(user.RoleSeller))
	s.other = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other-seller@example.com", string(user.RoleSeller))
	s.buyer = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "buyer@example.com", string(user.RoleClient))
}

func (s *catalogSuite) createListing(token string, categoryID int64, title string) *resdto.ListingResponse {
	t := s.T()
	body := request.CreateListingRequest{
		CategoryID:  categoryID,
		Title:       title,
		Description: "Two concepts and one revision round",
		Price:       decimal.RequireFromString("1500"),
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/listings", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var res resdto.ListingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return &res
}

func (s *catalogSuite) TestHealth() {
	s.Run("ヘルスチェックが200を返すこと", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code)
		require.Contains(s.T(), w.Body.String(), `"status":"ok"`)
	})
}

func (s *catalogSuite) TestListings() {
	s.Run("出品を作成・取得・フィルタできること", func() {
		t := s.T()
		design := dbtest.CategoryID(t, s.DB, "Design")
		dev := dbtest.CategoryID(t, s.DB, "Development")

		logo := s.createListing(s.seller.Token, design, "Logo design")
		require.Equal(t, "1500.00", logo.Price)
		require.Equal(t, s.seller.ID, logo.SellerID)
		s.createListing(s.other.Token, dev, "Landing page")

		// 公開エンドポイントなのでトークン不要
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/listings/%d", logo.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		cases := []struct {
			name  string
			query string
			want  int
		}{
			{name: "全件", query: "", want: 2},
			{name: "カテゴリ", query: fmt.Sprintf("?category_id=%d", design), want: 1},
			{name: "セラー", query: fmt.Sprintf("?seller_id=%d", s.other.ID), want: 1},
			{name: "該当なし", query: fmt.Sprintf("?category_id=%d&seller_id=%d", dev, s.seller.ID), want: 0},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/listings"+tc.query, nil, "")
			require.Equal(t, http.StatusOK, w.Code, tc.name)
			var page resdto.ListingListResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
			require.Len(t, page.Items, tc.want, tc.name)
		}
	})

	s.Run("作成時のバリデーションとロール制御", func() {
		t := s.T()
		design := dbtest.CategoryID(t, s.DB, "Design")

		cases := []struct {
			name   string
			token  string
			body   request.CreateListingRequest
			status int
		}{
			{
				name:   "clientロールは出品できない",
				token:  s.buyer.Token,
				body:   request.CreateListingRequest{CategoryID: design, Title: "x", Description: "y", Price: decimal.NewFromInt(10)},
				status: http.StatusForbidden,
			},
			{
				name:   "価格が0",
				token:  s.seller.Token,
				body:   request.CreateListingRequest{CategoryID: design, Title: "x", Description: "y", Price: decimal.Zero},
				status: http.StatusBadRequest,
			},
			{
				name:   "存在しないカテゴリ",
				token:  s.seller.Token,
				body:   request.CreateListingRequest{CategoryID: design + 1000, Title: "x", Description: "y", Price: decimal.NewFromInt(10)},
				status: http.StatusBadRequest,
			},
		}
		for _, tc := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/listings", tc.body, tc.token)
			require.Equal(t, tc.status, w.Code, "%s: %s", tc.name, w.Body.String())
		}
	})

	s.Run("部分更新は所有者だけが行え、未指定の項目は維持されること", func() {
		t := s.T()
		listing := s.createListing(s.seller.Token, dbtest.CategoryID(t, s.DB, "Writing"), "Blog post")
		path := fmt.Sprintf("/api/listings/%d", listing.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, path, request.UpdateListingRequest{Title: ptr.Of("Hijacked")}, s.other.Token)
		require.Equal(t, http.StatusForbidden, w.Code)

		newPrice := decimal.RequireFromString("2000.5")
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, path, request.UpdateListingRequest{Price: &newPrice}, s.seller.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated resdto.ListingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "2000.50", updated.Price)
		require.Equal(t, listing.Title, updated.Title)
		require.Equal(t, listing.Description, updated.Description)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, "/api/listings/999999", request.UpdateListingRequest{Title: ptr.Of("x")}, s.seller.Token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *catalogSuite) TestProfiles() {
	s.Run("プロフィールを作成・更新・公開取得できること", func() {
		t := s.T()
		path := fmt.Sprintf("/api/profiles/%d", s.seller.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)

		first := request.UpsertProfileRequest{DisplayName: "Studio Aki", Website: ptr.Of("https://studio.example.com")}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/profiles/me", first, s.seller.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		second := request.UpsertProfileRequest{DisplayName: "Studio Aki Inc.", Phone: ptr.Of("+81-3-0000-0000")}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/profiles/me", second, s.seller.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var res resdto.ProfileResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, s.seller.ID, res.UserID)
		require.Equal(t, "Studio Aki Inc.", res.DisplayName)
		require.Equal(t, ptr.Of("+81-3-0000-0000"), res.Phone)
	})

	s.Run("入力不正とトークンなしは拒否されること", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/profiles/me", request.UpsertProfileRequest{DisplayName: ""}, s.seller.Token)
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/profiles/me", request.UpsertProfileRequest{DisplayName: "x", Website: ptr.Of("not a url")}, s.seller.Token)
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/profiles/me", request.UpsertProfileRequest{DisplayName: "x"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
