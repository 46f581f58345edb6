package api

import (
	"net/http"

	"courtbook/internal/devserver"
	"courtbook/internal/domain/user"
	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/handler/httperr"
	"courtbook/internal/handler/middleware"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/id"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	catalog devserver.CatalogUseCase
}

func NewClubHandler(catalog devserver.CatalogUseCase) *ClubHandler {
	return &ClubHandler{catalog: catalog}
}

// @Summary List clubs
// @Description List all clubs
// @Tags clubs
// @Produce json
// @Success 200 {array} court.Club
// @Router /clubs [get]
func (h *ClubHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListClubs(c.Request.Context()))
}

// @Summary Get club
// @Description Get a club by ID
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} court.Club
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /clubs/{id} [get]
func (h *ClubHandler) Get(c *gin.Context) {
	clubID, ok := pathID(c)
	if !ok {
		return
	}
	club, err := h.catalog.GetClub(c.Request.Context(), clubID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

// GetWithUser adds the administrator's contact details.
//
// @Summary Get club with admin
// @Description Get a club together with its admin user
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 200 {object} court.Club
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /clubs/{id}/with-user [get]
func (h *ClubHandler) GetWithUser(c *gin.Context) {
	clubID, ok := pathID(c)
	if !ok {
		return
	}
	club, err := h.catalog.GetClubWithAdmin(c.Request.Context(), clubID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

// Create makes the caller the club admin unless adminId is given.
//
// @Summary Create club
// @Description Create a club; the caller becomes admin unless adminId is given
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ClubRequest true "Club"
// @Success 201 {object} court.Club
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /clubs [post]
func (h *ClubHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoIdentity, "Internal server error", nil)
		return
	}

	var req reqdto.ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	club, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	if club.AdminID.IsZero() {
		club.AdminID = actor.UserID
	}

	created, err := h.catalog.CreateClub(c.Request.Context(), club)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update club
// @Description Replace a club the caller manages
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Param request body reqdto.ClubRequest true "Club"
// @Success 200 {object} court.Club
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /clubs/{id} [put]
func (h *ClubHandler) Update(c *gin.Context) {
	clubID, ok := pathID(c)
	if !ok {
		return
	}
	if !h.canManage(c, clubID) {
		return
	}

	var req reqdto.ClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	club, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}
	club.ID = clubID
	if club.AdminID.IsZero() {
		current, err := h.catalog.GetClub(c.Request.Context(), clubID)
		if err != nil {
			respondError(c, err)
			return
		}
		club.AdminID = current.AdminID
	}

	updated, err := h.catalog.UpdateClub(c.Request.Context(), club)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete club
// @Description Delete a club; its courts lose their club
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Club ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /clubs/{id} [delete]
func (h *ClubHandler) Delete(c *gin.Context) {
	clubID, ok := pathID(c)
	if !ok {
		return
	}
	if !h.canManage(c, clubID) {
		return
	}
	if err := h.catalog.DeleteClub(c.Request.Context(), clubID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// canManage lets admins through and club owners only for their own clubs.
func (h *ClubHandler) canManage(c *gin.Context, clubID id.ID) bool {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoIdentity, "Internal server error", nil)
		return false
	}
	if actor.Role == user.RoleAdmin {
		return true
	}
	club, err := h.catalog.GetClub(c.Request.Context(), clubID)
	if err != nil {
		respondError(c, err)
		return false
	}
	if club.AdminID != actor.UserID {
		respondError(c, devserver.ErrForbidden)
		return false
	}
	return true
}

// @Summary Club name exists
// @Description Check whether a club name is taken
// @Tags clubs
// @Produce json
// @Param name query string true "Club name"
// @Success 200 {boolean} bool
// @Failure 400 {object} httperr.Response
// @Router /clubs/exists [get]
func (h *ClubHandler) ExistsByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		badRequest(c, errInvalidFormat)
		return
	}
	c.JSON(http.StatusOK, h.catalog.ClubNameExists(c.Request.Context(), name))
}

// @Summary Club exists
// @Description Check whether a club exists
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {boolean} bool
// @Failure 400 {object} httperr.Response
// @Router /clubs/{id}/exists [get]
func (h *ClubHandler) ExistsByID(c *gin.Context) {
	clubID, ok := pathID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.catalog.ClubExists(c.Request.Context(), clubID))
}

// IsOpen expects dateTime as 2006-01-02T15:04:05.
//
// @Summary Club is open
// @Description Check whether a club is open at a date-time
// @Tags clubs
// @Produce json
// @Param id path int true "Club ID"
// @Param dateTime query string true "2006-01-02T15:04:05"
// @Success 200 {boolean} bool
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /clubs/{id}/is-open [get]
func (h *ClubHandler) IsOpen(c *gin.Context) {
	clubID, ok := pathID(c)
	if !ok {
		return
	}
	at, err := clock.ParseDateTime(c.Query("dateTime"))
	if err != nil {
		badRequest(c, err)
		return
	}
	open, err := h.catalog.IsClubOpen(c.Request.Context(), clubID, at.Time)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, open)
}
