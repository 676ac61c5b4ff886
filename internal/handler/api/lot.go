package api

import (
	"net/http"

	reqdto "parking-api/internal/handler/dto/request"
	resdto "parking-api/internal/handler/dto/response"
	"parking-api/internal/handler/httperr"
	"parking-api/internal/usecase/commands"
	"parking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LotHandler struct {
	lotCommands commands.LotCommands
	lotQueries  queries.LotQueries
}

func NewLotHandler(lotCommands commands.LotCommands, lotQueries queries.LotQueries) *LotHandler {
	return &LotHandler{
		lotCommands: lotCommands,
		lotQueries:  lotQueries,
	}
}

// @Summary List parking lots
// @Tags parking-lots
// @Produce json
// @Success 200 {array} resdto.LotResponse
// @Router /parking-lots [get]
func (h *LotHandler) List(c *gin.Context) {
	views, err := h.lotQueries.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	res, err := resdto.FromLotViews(views)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get parking lot
// @Tags parking-lots
// @Produce json
// @Param id path int true "Lot ID"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parking-lots/{id} [get]
func (h *LotHandler) Get(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}

	view, err := h.lotQueries.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	res, err := resdto.FromLotView(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create parking lot
// @Tags parking-lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLotRequest true "Lot"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /parking-lots [post]
func (h *LotHandler) Create(c *gin.Context) {
	var req reqdto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}

	id, err := h.lotCommands.CreateLot(c.Request.Context(), cmd)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update parking lot
// @Tags parking-lots
// @Accept json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Param request body reqdto.UpdateLotRequest true "Changed fields"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parking-lots/{id} [put]
func (h *LotHandler) Update(c *gin.Context) {
	id, ok := pathInt64(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}

	if err := h.lotCommands.UpdateLot(c.Request.Context(), id, cmd); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
