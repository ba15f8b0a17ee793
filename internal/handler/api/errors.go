package api

import (
	"errors"
	"net/http"

	"syncro-backend/internal/domain/auth"
	"syncro-backend/internal/domain/bid"
	"syncro-backend/internal/domain/listing"
	"syncro-backend/internal/domain/order"
	"syncro-backend/internal/domain/profile"
	"syncro-backend/internal/domain/review"
	"syncro-backend/internal/domain/rfp"
	"syncro-backend/internal/domain/user"
	"syncro-backend/internal/handler/httperr"
	"syncro-backend/internal/pkg/errs"
	"syncro-backend/internal/usecase/commands"
	"syncro-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// Most specific first; the first match wins.
var errorMappings = []errorMapping{
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{auth.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{commands.ErrEmailTaken, http.StatusConflict, "Email is already registered"},

	{commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{commands.ErrRequestNotFound, http.StatusNotFound, "Request not found"},
	{queries.ErrRequestNotFound, http.StatusNotFound, "Request not found"},
	{commands.ErrBidNotFound, http.StatusNotFound, "Bid not found"},
	{commands.ErrListingNotFound, http.StatusNotFound, "Listing not found"},
	{queries.ErrListingNotFound, http.StatusNotFound, "Listing not found"},
	{commands.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{queries.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{queries.ErrReviewNotFound, http.StatusNotFound, "Review not found"},
	{queries.ErrProfileNotFound, http.StatusNotFound, "Profile not found"},

	{queries.ErrOrderAccess, http.StatusForbidden, "Order access denied"},
	{commands.ErrClientRoleNeeded, http.StatusForbidden, "Switch your active role to client to do this"},
	{commands.ErrSellerRoleRequired, http.StatusForbidden, "Switch your active role to seller to do this"},
	{rfp.ErrNotOwner, http.StatusForbidden, "Only the buyer who posted the request can do this"},
	{listing.ErrNotOwner, http.StatusForbidden, "Only the seller who owns the listing can do this"},
	{order.ErrNotParticipant, http.StatusForbidden, "You are not a participant of this order"},
	{order.ErrNotSeller, http.StatusForbidden, "Only the seller can complete the order"},

	{rfp.ErrAlreadyClosed, http.StatusConflict, "Request is already closed"},
	{order.ErrNotPending, http.StatusConflict, "Order is no longer pending"},
	{review.ErrReviewAlreadyExists, http.StatusConflict, "You have already reviewed this order"},
	{review.ErrOrderNotEligible, http.StatusConflict, "Only completed orders can be reviewed"},

	{rfp.ErrBidMismatch, http.StatusBadRequest, "Bid does not belong to this request"},
	{commands.ErrCategoryNotFound, http.StatusBadRequest, "Category does not exist"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{order.ErrSelfOrder, http.StatusBadRequest, "You cannot order your own listing"},
}

// Value-object validation failures are client errors with the domain message.
var validationErrors = []error{
	user.ErrInvalidEmail, user.ErrPasswordTooWeak, user.ErrPasswordTooLong, user.ErrInvalidName,
	rfp.ErrEmptyTitle, rfp.ErrTitleTooLong, rfp.ErrEmptyDescription,
	listing.ErrEmptyTitle, listing.ErrTitleTooLong, listing.ErrEmptyDescription, listing.ErrInvalidPrice, listing.ErrCategoryRequired,
	order.ErrEmptyService, order.ErrInvalidAmount,
	review.ErrInvalidRating, review.ErrEmptyComment, review.ErrCommentTooLong,
	profile.ErrEmptyDisplayName, profile.ErrDisplayNameTooLong, profile.ErrDescriptionTooLong,
	bid.ErrInvalidAmount, bid.ErrMessageTooLong, bid.ErrInvalidMessage,
}

// abortWithMappedError translates usecase and domain errors into an HTTP error response.
func abortWithMappedError(c *gin.Context, err error, fallback string) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	for _, v := range validationErrors {
		if errs.Is(err, v) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, v.Error(), nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}

func unauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}

var errUnauthenticated = errors.New("no authenticated identity in context")
