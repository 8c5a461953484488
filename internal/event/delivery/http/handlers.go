package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github-webhook-events/pkg/response"
)

// List godoc
// @Summary     List recent events
// @Description Returns the most recently received events, newest first.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       limit query int false "Max events to return (1-100, default: 10)"
// @Success     200 {array}  eventResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processListReq(c)

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, http.StatusInternalServerError, h.mapError(err))
		return
	}

	// The dashboard polls this endpoint and expects a bare array, empty
	// included — an error body is reserved for a store failure.
	c.JSON(http.StatusOK, newListResp(output))
}
