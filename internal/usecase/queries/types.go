package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}

type RequestView struct {
	ID             int64      `json:"id"`
	BuyerID        int64      `json:"buyer_id"`
	BuyerFirstName string     `json:"buyer_first_name"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	AcceptedBidID  *int64     `json:"accepted_bid_id,omitempty"`
	BidCount       int64      `json:"bid_count"`
	CreatedAt      time.Time  `json:"created_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
}

type BidView struct {
	ID        int64           `json:"id"`
	RequestID int64           `json:"request_id"`
	SellerID  int64           `json:"seller_id"`
	Amount    decimal.Decimal `json:"amount"`
	Message   *string         `json:"message"`
	CreatedAt time.Time       `json:"created_at"`
}

type ListingView struct {
	ID           int64           `json:"id"`
	SellerID     int64           `json:"seller_id"`
	CategoryID   int64           `json:"category_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	DeliveryTime *string         `json:"delivery_time,omitempty"`
	ImageURL     *string         `json:"image_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type OrderView struct {
	ID          int64           `json:"id"`
	BuyerID     int64           `json:"buyer_id"`
	SellerID    int64           `json:"seller_id"`
	ListingID   *int64          `json:"listing_id,omitempty"`
	ServiceName string          `json:"service_name"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	HasReview   bool            `json:"has_review"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

type ReviewView struct {
	ID                int64     `json:"id"`
	OrderID           int64     `json:"order_id"`
	ReviewerID        int64     `json:"reviewer_id"`
	ReviewerFirstName string    `json:"reviewer_first_name"`
	RevieweeID        int64     `json:"reviewee_id"`
	Rating            int       `json:"rating"`
	Comment           *string   `json:"comment,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type ProfileView struct {
	UserID      int64     `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Description *string   `json:"description,omitempty"`
	Address     *string   `json:"address,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Website     *string   `json:"website,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
