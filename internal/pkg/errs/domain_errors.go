package errs

import "errors"

// Domain-specific sentinel errors shared by the CQRS usecase layers
var (
	// Request (RFP) errors
	ErrRequestNotFound = errors.New("request not found")
	ErrRequestClosed   = errors.New("request closed")

	// Ownership / role errors
	ErrForbidden      = errors.New("forbidden")
	ErrRoleRequired   = errors.New("active role does not allow this action")
	ErrNotParticipant = errors.New("user is not a participant")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
