// Package devserver is an in-memory stand-in for the club, court, reservation
// and user services, enough to drive the client end to end.
package devserver

import "courtbook/internal/pkg/errs"

var (
	ErrNotFound           = errs.New("not found")
	ErrUserNotFound       = errs.New("user not found")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrEmailTaken         = errs.New("email already registered")
	ErrTokenValidation    = errs.New("token validation failed")
	ErrForbidden          = errs.New("insufficient permissions")

	ErrClubNameTaken = errs.New("club name already exists")
	ErrCourtInactive = errs.New("court is not active")
	ErrClubClosed    = errs.New("club is closed at the requested time")

	ErrSlotTaken           = errs.New("time slot conflict")
	ErrAlreadyCancelled    = errs.New("reservation already cancelled")
	ErrIdempotencyMismatch = errs.New("duplicate reservation request with different parameters")
)
