package api

import (
	"net/http"

	"courtbook/internal/devserver"
	"courtbook/internal/domain/reservation"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/handler/httperr"
	"courtbook/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

const headerIdempotencyKey = "Idempotency-Key"

type ReservationHandler struct {
	reservationUseCase devserver.ReservationUseCase
}

func NewReservationHandler(reservationUseCase devserver.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

func actorOrAbort(c *gin.Context) (devserver.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoIdentity, "Internal server error", nil)
	}
	return actor, ok
}

// CreateReservation answers 201 for a new reservation and 200 when the
// Idempotency-Key replays an earlier identical request.
//
// @Summary Create reservation
// @Description Create a pending reservation; a repeated Idempotency-Key replays the original
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.ReservationRequest true "Reservation"
// @Success 201 {object} reservation.Reservation
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	created, replayed, err := h.reservationUseCase.CreateReservation(
		c.Request.Context(), actor, req.ToParams(), c.GetHeader(headerIdempotencyKey))
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}
	c.JSON(status, created)
}

// ListReservations filters by userId, courtId, clubId, status, startDate and endDate.
// Plain users only ever see their own reservations.
//
// @Summary List reservations
// @Description List reservations visible to the caller
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param userId query int false "User ID"
// @Param courtId query int false "Court ID"
// @Param clubId query int false "Club ID"
// @Param status query string false "PENDING, CONFIRMED or CANCELLED"
// @Param startDate query string false "2006-01-02"
// @Param endDate query string false "2006-01-02"
// @Success 200 {array} reservation.Reservation
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var q devserver.ReservationQuery
	if q.UserID, ok = queryID(c, "userId"); !ok {
		return
	}
	if q.CourtID, ok = queryID(c, "courtId"); !ok {
		return
	}
	if q.ClubID, ok = queryID(c, "clubId"); !ok {
		return
	}
	if raw := c.Query("status"); raw != "" {
		st := reservation.Status(raw)
		if !st.IsValid() {
			badRequest(c, errInvalidFormat)
			return
		}
		q.Status = st
	}
	if raw := c.Query("startDate"); raw != "" {
		d, err := reservation.ParseDate(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		q.From = d.Time()
	}
	if raw := c.Query("endDate"); raw != "" {
		d, err := reservation.ParseDate(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		q.Until = d.AddDays(1).Time()
	}

	c.JSON(http.StatusOK, h.reservationUseCase.ListReservations(c.Request.Context(), actor, q))
}

// @Summary My reservations
// @Description List the caller's reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} reservation.Reservation
// @Failure 401 {object} httperr.Response
// @Router /reservations/my-reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.reservationUseCase.GetUserReservations(c.Request.Context(), actor.UserID))
}

// @Summary Get reservation
// @Description Get a reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} reservation.Reservation
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	reservationID, ok := pathID(c)
	if !ok {
		return
	}

	r, err := h.reservationUseCase.GetReservation(c.Request.Context(), actor, reservationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// UpdateReservation moves a live reservation; status fields in the body are ignored.
//
// @Summary Update reservation
// @Description Replace the slot of a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.ReservationRequest true "Reservation"
// @Success 200 {object} reservation.Reservation
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [put]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	reservationID, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.reservationUseCase.UpdateReservation(c.Request.Context(), actor, reservationID, req.ToParams())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Cancel reservation
// @Description Cancel a reservation that has not started
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	reservationID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.reservationUseCase.CancelReservation(c.Request.Context(), actor, reservationID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
