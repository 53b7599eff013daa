package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lokchandra12/ZooPrediction/internal/session"
)

type HealthHandler struct {
	Sessions *session.Manager
}

func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", h.health)
	r.GET("/readyz", h.ready)
}

func (h *HealthHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ready reports whether a dataset has been loaded; the service is usable
// either way, this is informational for probes.
func (h *HealthHandler) ready(c *gin.Context) {
	if h.Sessions == nil || h.Sessions.Current() == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dataset_loaded": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "dataset_loaded": true})
}
