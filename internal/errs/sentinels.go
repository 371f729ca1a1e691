// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrVersionConflict indicates optimistic concurrency failure (base version mismatch).
	ErrVersionConflict = errors.New("version conflict")

	// ErrUnauthorized indicates failed authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyExists indicates a unique constraint violation.
	ErrAlreadyExists = errors.New("already exists")

	// ErrValidation marks malformed input (negative price, empty id, ...).
	ErrValidation = errors.New("validation")
)

// Authorization failures. Match ErrForbidden for the class.
var (
	ErrForbidden = errors.New("forbidden")
	ErrNotOwner  = fmt.Errorf("%w: actor is not the owner", ErrForbidden)
	ErrSelfBid   = fmt.Errorf("%w: owner cannot bid on own property", ErrForbidden)
)

// State machine rejections. Match ErrInvalidTransition for the class.
var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrAlreadyTokenized  = fmt.Errorf("%w: already tokenized", ErrInvalidTransition)
	ErrAlreadyListed     = fmt.Errorf("%w: already listed", ErrInvalidTransition)
	ErrNotListed         = fmt.Errorf("%w: not listed", ErrInvalidTransition)
	ErrNotTokenized      = fmt.Errorf("%w: not tokenized", ErrInvalidTransition)
	ErrAuctionInProgress = fmt.Errorf("%w: auction window still open", ErrInvalidTransition)
)

// Auction rejections. Match ErrBidRejected for the class.
var (
	ErrBidRejected       = errors.New("bid rejected")
	ErrAuctionNotEnabled = fmt.Errorf("%w: auction not enabled", ErrBidRejected)
	ErrAuctionEnded      = fmt.Errorf("%w: auction ended", ErrBidRejected)
	ErrBidTooLow         = fmt.Errorf("%w: bid must exceed current bid", ErrBidRejected)
	ErrBelowMinimum      = fmt.Errorf("%w: bid below minimum", ErrBidRejected)
)

// Validation builds an ErrValidation-wrapped error, rendered as "validation: <detail>".
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
