package api

import (
	"net/http"

	reqdto "parking-api/internal/handler/dto/request"
	resdto "parking-api/internal/handler/dto/response"
	"parking-api/internal/handler/httperr"
	"parking-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionCommands commands.SessionCommands
}

func NewSessionHandler(sessionCommands commands.SessionCommands) *SessionHandler {
	return &SessionHandler{sessionCommands: sessionCommands}
}

// @Summary Start parking session
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Param request body reqdto.SessionRequest true "Vehicle plate"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /parking-lots/{id}/sessions/start [post]
func (h *SessionHandler) Start(c *gin.Context) {
	userID, lotID, plate, ok := h.bind(c)
	if !ok {
		return
	}

	s, err := h.sessionCommands.StartSession(c.Request.Context(), userID, lotID, plate)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSession(s))
}

// @Summary Stop parking session
// @Description Closes the vehicle's open session at the lot and bills it
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Param request body reqdto.SessionRequest true "Vehicle plate"
// @Success 200 {object} resdto.StopSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /parking-lots/{id}/sessions/stop [post]
func (h *SessionHandler) Stop(c *gin.Context) {
	userID, lotID, plate, ok := h.bind(c)
	if !ok {
		return
	}

	result, err := h.sessionCommands.StopSession(c.Request.Context(), userID, lotID, plate)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStopResult(result))
}

func (h *SessionHandler) bind(c *gin.Context) (userID, lotID int64, plate string, ok bool) {
	if userID, ok = callerID(c); !ok {
		return
	}
	if lotID, ok = pathInt64(c, "id"); !ok {
		return
	}

	var req reqdto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return 0, 0, "", false
	}
	return userID, lotID, req.LicensePlate, true
}
