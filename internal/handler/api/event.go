package api

import (
	"net/http"

	resdto "github.com/KingCastle/Javan/internal/handler/dto/response"
	"github.com/KingCastle/Javan/internal/handler/httperr"
	"github.com/KingCastle/Javan/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	q queries.EventQueries
}

func NewEventHandler(q queries.EventQueries) *EventHandler {
	return &EventHandler{q: q}
}

// @Summary List upcoming events
// @Description Events that have not finished yet, with seats remaining
// @Tags events
// @Produce json
// @Success 200 {object} resdto.EventListResponse
// @Router /api/events [get]
func (h *EventHandler) List(c *gin.Context) {
	views, err := h.q.ListUpcoming(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}

// @Summary Get event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventView(view))
}
