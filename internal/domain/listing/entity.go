package listing

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const MaxTitleLength = 100

var (
	ErrEmptyTitle       = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title exceeds maximum length")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrCategoryRequired = errors.New("category is required")
	ErrNotOwner         = errors.New("only the seller who owns the listing can change it")
)

type Listing struct {
	id           int64
	sellerID     int64
	categoryID   int64
	title        string
	description  string
	price        decimal.Decimal
	deliveryTime *string
	createdAt    time.Time
	updatedAt    time.Time
}

type Content struct {
	CategoryID   int64
	Title        string
	Description  string
	Price        decimal.Decimal
	DeliveryTime *string
}

func (c Content) validate() (Content, error) {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)

	if c.CategoryID <= 0 {
		return c, ErrCategoryRequired
	}
	if c.Title == "" {
		return c, ErrEmptyTitle
	}
	if utf8.RuneCountInString(c.Title) > MaxTitleLength {
		return c, ErrTitleTooLong
	}
	if c.Description == "" {
		return c, ErrEmptyDescription
	}
	if !c.Price.IsPositive() {
		return c, ErrInvalidPrice
	}
	return c, nil
}

func NewListing(sellerID int64, content Content) (*Listing, error) {
	c, err := content.validate()
	if err != nil {
		return nil, err
	}
	l := &Listing{sellerID: sellerID}
	l.apply(c)
	return l, nil
}

func Reconstruct(id, sellerID int64, content Content, createdAt, updatedAt time.Time) *Listing {
	l := &Listing{id: id, sellerID: sellerID, createdAt: createdAt, updatedAt: updatedAt}
	l.apply(content)
	return l
}

// Update replaces the editable fields. Only the owning seller may call it.
func (l *Listing) Update(actorID int64, content Content) error {
	if actorID != l.sellerID {
		return ErrNotOwner
	}
	c, err := content.validate()
	if err != nil {
		return err
	}
	l.apply(c)
	return nil
}

func (l *Listing) apply(c Content) {
	l.categoryID = c.CategoryID
	l.title = c.Title
	l.description = c.Description
	l.price = c.Price
	l.deliveryTime = c.DeliveryTime
}

func (l *Listing) ID() int64              { return l.id }
func (l *Listing) SellerID() int64        { return l.sellerID }
func (l *Listing) CategoryID() int64      { return l.categoryID }
func (l *Listing) Title() string          { return l.title }
func (l *Listing) Description() string    { return l.description }
func (l *Listing) Price() decimal.Decimal { return l.price }
func (l *Listing) DeliveryTime() *string  { return l.deliveryTime }
func (l *Listing) CreatedAt() time.Time   { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time   { return l.updatedAt }
