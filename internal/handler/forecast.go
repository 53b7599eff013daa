package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lokchandra12/ZooPrediction/internal/config"
	"github.com/lokchandra12/ZooPrediction/internal/forecast"
	"github.com/lokchandra12/ZooPrediction/internal/report"
	"github.com/lokchandra12/ZooPrediction/internal/session"
)

type ForecastHandler struct {
	Sessions *session.Manager
	Cfg      config.Config
	Log      *zap.Logger
}

func (h *ForecastHandler) Register(r *gin.Engine) {
	group := r.Group("/api/forecast")
	group.GET("", h.daily)
	group.GET("/monthly", h.monthly)
	group.GET("/report", h.report)
}

func (h *ForecastHandler) daily(c *gin.Context) {
	preds, ok := h.predictions(c)
	if !ok {
		return
	}
	Ok(c, preds, map[string]any{"days": len(preds)})
}

func (h *ForecastHandler) monthly(c *gin.Context) {
	preds, ok := h.predictions(c)
	if !ok {
		return
	}
	Ok(c, forecast.SummarizeMonthly(preds), map[string]any{"days": len(preds)})
}

func (h *ForecastHandler) report(c *gin.Context) {
	preds, ok := h.predictions(c)
	if !ok {
		return
	}
	Ok(c, report.BuildForecast(preds), nil)
}

// predictions resolves the horizon, checks it against the configured set and
// generates (or reuses) the prediction frame. On failure it writes the error
// response and returns ok=false.
func (h *ForecastHandler) predictions(c *gin.Context) ([]forecast.Prediction, bool) {
	sess := h.Sessions.Current()
	if sess == nil {
		Error(c, http.StatusNotFound, "no dataset loaded", templateMeta())
		return nil, false
	}

	days := intQuery(c, "days", h.defaultHorizon())
	if days > 0 && !h.allowedHorizon(days) {
		Error(c, http.StatusBadRequest, fmt.Sprintf("unsupported horizon %d", days),
			map[string]any{"horizons": h.Cfg.Forecast.Horizons})
		return nil, false
	}

	preds, err := sess.Forecast(days)
	if err != nil {
		if fitUnavailable(err) {
			Error(c, http.StatusUnprocessableEntity, err.Error(), nil)
			return nil, false
		}
		h.Log.Warn("forecast failed", zap.Int("days", days), zap.Error(err))
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return nil, false
	}
	return preds, true
}

func (h *ForecastHandler) defaultHorizon() int {
	if len(h.Cfg.Forecast.Horizons) > 0 {
		return h.Cfg.Forecast.Horizons[0]
	}
	return 30
}

func (h *ForecastHandler) allowedHorizon(days int) bool {
	if len(h.Cfg.Forecast.Horizons) == 0 {
		return true
	}
	for _, d := range h.Cfg.Forecast.Horizons {
		if d == days {
			return true
		}
	}
	return false
}
