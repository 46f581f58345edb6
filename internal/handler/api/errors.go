package api

import (
	"errors"
	"net/http"

	"courtbook/internal/devserver"
	"courtbook/internal/domain/auth"
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	"courtbook/internal/domain/user"
	"courtbook/internal/handler/dto/request"
	"courtbook/internal/handler/httperr"
	"courtbook/internal/pkg/errs"
	"courtbook/internal/pkg/id"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidFormat = errors.New("invalid request format")
	errInvalidID     = errors.New("invalid id")
	errNoIdentity    = errors.New("handler reached without identity")
)

// respondError maps use case errors to status codes. The message is what
// the client shows to the user.
func respondError(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, "Internal server error"
	switch {
	case errs.Is(err, devserver.ErrNotFound), errs.Is(err, devserver.ErrUserNotFound):
		status, msg = http.StatusNotFound, "Not found"
	case errs.Is(err, devserver.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, "Invalid email or password"
	case errs.Is(err, devserver.ErrForbidden):
		status, msg = http.StatusForbidden, "Insufficient permissions"
	case errs.Is(err, devserver.ErrEmailTaken):
		status, msg = http.StatusConflict, "Email already registered"
	case errs.Is(err, devserver.ErrClubNameTaken):
		status, msg = http.StatusConflict, "A club with this name already exists"
	case errs.Is(err, devserver.ErrSlotTaken):
		status, msg = http.StatusConflict, "This time slot is already booked"
	case errs.Is(err, devserver.ErrIdempotencyMismatch):
		status, msg = http.StatusConflict, "Duplicate reservation request with different parameters"
	case errs.Is(err, devserver.ErrAlreadyCancelled):
		status, msg = http.StatusConflict, "Reservation is already cancelled"
	case errs.Is(err, devserver.ErrClubClosed):
		status, msg = http.StatusBadRequest, "The club is closed at the requested time"
	case errs.Is(err, devserver.ErrCourtInactive):
		status, msg = http.StatusBadRequest, "This court is not accepting reservations"
	case errs.Is(err, reservation.ErrMissingClub):
		status, msg = http.StatusBadRequest, "This court does not belong to a club"
	case errs.Is(err, reservation.ErrInvalidTimeSlot):
		status, msg = http.StatusBadRequest, "Invalid time slot"
	case errs.Is(err, user.ErrInvalidEmail), errs.Is(err, user.ErrInvalidRole),
		errs.Is(err, user.ErrPasswordTooWeak), errs.Is(err, user.ErrPasswordTooLong), errs.Is(err, auth.ErrNameRequired),
		errs.Is(err, auth.ErrInvalidCredentials), errs.Is(err, court.ErrInvalidCourtType),
		errs.Is(err, reservation.ErrInvalidAmount), errs.Is(err, reservation.ErrInvalidDate),
		errs.Is(err, reservation.ErrInvalidTimeOfDay), errs.Is(err, request.ErrInvalidOpeningHours):
		status, msg = http.StatusBadRequest, err.Error()
	}
	httperr.AbortWithError(c, status, err, msg, nil)
}

func badRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidFormat), "Invalid request format", nil)
}

func pathID(c *gin.Context) (id.ID, bool) {
	v, err := id.Parse(c.Param("id"))
	if err != nil || v.IsZero() {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid id", nil)
		return id.Zero, false
	}
	return v, true
}

// queryID returns zero for an absent parameter and false for a malformed one.
func queryID(c *gin.Context, key string) (id.ID, bool) {
	raw := c.Query(key)
	if raw == "" {
		return id.Zero, true
	}
	v, err := id.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid "+key, nil)
		return id.Zero, false
	}
	return v, true
}
