package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processListReq parses the optional limit query parameter. A missing or
// non-numeric limit is never an error for the caller; it falls back to
// the use case default.
func (h *handler) processListReq(c *gin.Context) listReq {
	raw := c.Query("limit")
	if raw == "" {
		return listReq{}
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		h.l.Debugf(c.Request.Context(), "unparsable limit %q, using default", raw)
		return listReq{}
	}
	return listReq{Limit: limit}
}
