package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceName identifies the service in health responses.
const ServiceName = "github-webhook-events"

// healthCheck reports whether the service and its store are usable.
// @Summary Health Check
// @Description Check API and database connectivity
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Failure 503 {object} map[string]interface{} "Database unreachable"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	if err := srv.eventUC.Healthy(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
			"service":  ServiceName,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
		"service":  ServiceName,
	})
}

// readyCheck reports readiness — the process is up and routing.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"service": ServiceName,
	})
}

// liveCheck reports liveness.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}
