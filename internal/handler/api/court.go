package api

import (
	"net/http"
	"strconv"

	"courtbook/internal/devserver"
	"courtbook/internal/domain/court"
	"courtbook/internal/domain/reservation"
	reqdto "courtbook/internal/handler/dto/request"

	"github.com/gin-gonic/gin"
)

type CourtHandler struct {
	catalog devserver.CatalogUseCase
}

func NewCourtHandler(catalog devserver.CatalogUseCase) *CourtHandler {
	return &CourtHandler{catalog: catalog}
}

// List accepts clubId, type and limit filters.
//
// @Summary List courts
// @Description List courts, optionally filtered
// @Tags courts
// @Produce json
// @Param clubId query int false "Club ID"
// @Param type query string false "INDOOR or OUTDOOR"
// @Param limit query int false "Maximum number of courts"
// @Success 200 {array} court.Court
// @Failure 400 {object} httperr.Response
// @Router /courts [get]
func (h *CourtHandler) List(c *gin.Context) {
	var q devserver.CourtQuery
	var ok bool
	if q.ClubID, ok = queryID(c, "clubId"); !ok {
		return
	}
	if raw := c.Query("type"); raw != "" {
		t, err := court.NewType(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		q.Type = t
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(c, errInvalidFormat)
			return
		}
		q.Limit = n
	}
	c.JSON(http.StatusOK, h.catalog.ListCourts(c.Request.Context(), q))
}

// @Summary Get court
// @Description Get a court by ID
// @Tags courts
// @Produce json
// @Param id path int true "Court ID"
// @Success 200 {object} court.Court
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courts/{id} [get]
func (h *CourtHandler) Get(c *gin.Context) {
	courtID, ok := pathID(c)
	if !ok {
		return
	}
	ct, err := h.catalog.GetCourt(c.Request.Context(), courtID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// Available returns start times as ["09:00", "09:30", ...].
//
// @Summary Available slots
// @Description List free start times of a court on a date
// @Tags courts
// @Produce json
// @Param id path int true "Court ID"
// @Param date query string true "2006-01-02"
// @Success 200 {array} string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courts/{id}/available [get]
func (h *CourtHandler) Available(c *gin.Context) {
	courtID, ok := pathID(c)
	if !ok {
		return
	}
	date, err := reservation.ParseDate(c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	slots, err := h.catalog.AvailableSlots(c.Request.Context(), courtID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// @Summary Create court
// @Description Create a court
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CourtRequest true "Court"
// @Success 201 {object} court.Court
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /courts [post]
func (h *CourtHandler) Create(c *gin.Context) {
	var req reqdto.CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ct, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	created, err := h.catalog.CreateCourt(c.Request.Context(), ct)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update court
// @Description Replace a court
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Court ID"
// @Param request body reqdto.CourtRequest true "Court"
// @Success 200 {object} court.Court
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courts/{id} [put]
func (h *CourtHandler) Update(c *gin.Context) {
	courtID, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	ct, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	ct.ID = courtID
	updated, err := h.catalog.UpdateCourt(c.Request.Context(), ct)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete court
// @Description Delete a court
// @Tags courts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Court ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courts/{id} [delete]
func (h *CourtHandler) Delete(c *gin.Context) {
	courtID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteCourt(c.Request.Context(), courtID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
