package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lokchandra12/ZooPrediction/internal/config"
	"github.com/lokchandra12/ZooPrediction/internal/dataset"
	"github.com/lokchandra12/ZooPrediction/internal/forecast"
	"github.com/lokchandra12/ZooPrediction/internal/ingest"
	"github.com/lokchandra12/ZooPrediction/internal/report"
	"github.com/lokchandra12/ZooPrediction/internal/session"
)

const templatePath = "/api/dataset/template"

// templateTSV is the downloadable sample in the booking-system export layout.
const templateTSV = "Booking Date\tAdult Tickets\tChild Tickets\tForeigner Tickets\tCamera Tickets\tH-END Camera Tickets\tTotal Amount (INR)\n" +
	"1/15/2024 9:30:00 AM\t120\t45\t8\t12\t2\t4375.00\n" +
	"1/16/2024 10:05:00 AM\t98\t52\t5\t9\t1\t3750.00\n" +
	"1/17/2024 9:45:00 AM\t134\t61\t11\t15\t3\t5265.00\n"

type DatasetHandler struct {
	Sessions *session.Manager
	Cfg      config.Config
	Log      *zap.Logger
}

func (h *DatasetHandler) Register(r *gin.Engine) {
	group := r.Group("/api/dataset")
	group.POST("", h.upload)
	group.GET("/historical", h.historical)
	group.GET("/report", h.report)
	group.GET("/template", h.template)
}

// uploadSummary is the response body for a successful dataset load.
type uploadSummary struct {
	Source            string   `json:"source"`
	Profile           string   `json:"profile"`
	Rows              int      `json:"rows"`
	StartDate         string   `json:"start_date,omitempty"`
	EndDate           string   `json:"end_date,omitempty"`
	DroppedDates      int      `json:"dropped_dates"`
	ZeroFilled        []string `json:"zero_filled,omitempty"`
	Warnings          []string `json:"warnings,omitempty"`
	YearlySeasonality bool     `json:"yearly_seasonality"`
}

func (h *DatasetHandler) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		Error(c, http.StatusBadRequest, "multipart field \"file\" required", nil)
		return
	}
	if max := h.Cfg.Upload.MaxBytes; max > 0 && file.Size > max {
		Error(c, http.StatusRequestEntityTooLarge, "file too large", map[string]any{"max_bytes": max})
		return
	}

	src, err := file.Open()
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	defer src.Close()
	raw, err := io.ReadAll(src)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	table, err := h.parse(file.Filename, raw)
	if err != nil {
		h.Log.Warn("dataset parse rejected", zap.String("file", file.Filename), zap.Error(err))
		Error(c, http.StatusBadRequest, err.Error(), templateMeta())
		return
	}

	mapping, err := ingest.MapColumns(table)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), templateMeta())
		return
	}

	defaults := dataset.DefaultsFromConfig(h.Cfg.Prices)
	frame := ingest.Normalize(table, mapping, ingest.Options{
		DefaultAdultPrice: defaults.Adult,
		DefaultChildPrice: defaults.Child,
	})
	result, err := ingest.Validate(frame)
	if err != nil {
		Error(c, http.StatusBadRequest, err.Error(), templateMeta())
		return
	}

	records := dataset.Enrich(result.Rows, defaults)

	models, fitErr := forecast.Fit(records, forecast.ConfigFromApp(h.Cfg.Forecast))

	sess := session.New(file.Filename, mapping.Profile, records, models)
	sess.DroppedDates = result.DroppedDates
	sess.Warnings = result.Warnings
	h.Sessions.Replace(sess)

	summary := uploadSummary{
		Source:       file.Filename,
		Profile:      string(mapping.Profile),
		Rows:         len(records),
		DroppedDates: result.DroppedDates,
		ZeroFilled:   frame.ZeroFilled,
		Warnings:     result.Warnings,
	}
	if len(records) > 0 {
		summary.StartDate = records[0].Date.Format("2006-01-02")
		summary.EndDate = records[len(records)-1].Date.Format("2006-01-02")
	}

	if fitErr != nil {
		// The historical frame is kept; only forecasting is unavailable.
		h.Log.Warn("model fit failed", zap.String("file", file.Filename), zap.Error(fitErr))
		Error(c, http.StatusUnprocessableEntity, fitErr.Error(), map[string]any{"summary": summary})
		return
	}
	summary.YearlySeasonality = models.YearlySeasonality()

	h.Log.Info("dataset loaded",
		zap.String("file", file.Filename),
		zap.String("profile", string(mapping.Profile)),
		zap.Int("rows", len(records)),
		zap.Int("dropped_dates", result.DroppedDates),
	)
	Ok(c, summary, nil)
}

func (h *DatasetHandler) parse(name string, raw []byte) (*ingest.Table, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return ingest.ParseSpreadsheet(raw)
	default:
		table, _, _, err := ingest.ParseDelimited(raw)
		return table, err
	}
}

func (h *DatasetHandler) historical(c *gin.Context) {
	sess := h.Sessions.Current()
	if sess == nil {
		Error(c, http.StatusNotFound, "no dataset loaded", templateMeta())
		return
	}
	meta := map[string]any{
		"source":        sess.SourceName,
		"profile":       string(sess.Profile),
		"dropped_dates": sess.DroppedDates,
	}
	if len(sess.Warnings) > 0 {
		meta["warnings"] = sess.Warnings
	}
	Ok(c, sess.Records, meta)
}

func (h *DatasetHandler) report(c *gin.Context) {
	sess := h.Sessions.Current()
	if sess == nil {
		Error(c, http.StatusNotFound, "no dataset loaded", templateMeta())
		return
	}
	Ok(c, report.BuildHistorical(sess.Records), nil)
}

func (h *DatasetHandler) template(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="visitor_ledger_template.tsv"`)
	c.Data(http.StatusOK, "text/tab-separated-values; charset=utf-8", []byte(templateTSV))
}

func templateMeta() map[string]any {
	return map[string]any{"template_url": templatePath}
}

// fitUnavailable distinguishes "no models" from a bad horizon request.
func fitUnavailable(err error) bool {
	var insufficient *forecast.InsufficientDataError
	return errors.As(err, &insufficient)
}
