package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aayush1982/universal-timeline-viewer/internal/chart"
	"github.com/aayush1982/universal-timeline-viewer/internal/ingest"
	"github.com/aayush1982/universal-timeline-viewer/internal/model"
	"github.com/aayush1982/universal-timeline-viewer/internal/service/dashboard"
	"github.com/aayush1982/universal-timeline-viewer/internal/session"
)

type DashboardHandler struct {
	svc    *dashboard.Service
	logger *zap.Logger
}

func NewDashboardHandler(svc *dashboard.Service, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, logger: logger}
}

// Upload handles POST /api/upload: multipart file plus optional sheet name.
func (h *DashboardHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	defer file.Close()

	result, err := h.svc.Upload(c.Request.Context(), header.Filename, file, c.PostForm("sheet"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Sheets handles GET /api/sessions/:id/sheets.
func (h *DashboardHandler) Sheets(c *gin.Context) {
	sheets, err := h.svc.Sheets(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sheets": sheets})
}

// GetOptions handles GET /api/sessions/:id/options.
func (h *DashboardHandler) GetOptions(c *gin.Context) {
	opts, err := h.svc.Options(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// SetOptions handles PUT /api/sessions/:id/options.
func (h *DashboardHandler) SetOptions(c *gin.Context) {
	var opts model.ViewOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid options payload"})
		return
	}
	if err := normalizeOptions(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.SetOptions(c.Request.Context(), c.Param("id"), opts); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// View handles GET /api/sessions/:id/view — the full recomputed dashboard.
func (h *DashboardHandler) View(c *gin.Context) {
	v, err := h.svc.View(c.Request.Context(), c.Param("id"), time.Now().UTC())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// ExportCSV handles GET /api/sessions/:id/export/csv.
func (h *DashboardHandler) ExportCSV(c *gin.Context) {
	data, err := h.svc.ExportCSV(c.Request.Context(), c.Param("id"), time.Now().UTC())
	if err != nil {
		h.fail(c, err)
		return
	}
	download(c, "timeline_filtered.csv", "text/csv; charset=utf-8", data)
}

// ExportExcel handles GET /api/sessions/:id/export/xlsx.
func (h *DashboardHandler) ExportExcel(c *gin.Context) {
	data, err := h.svc.ExportExcel(c.Request.Context(), c.Param("id"), time.Now().UTC())
	if err != nil {
		h.fail(c, err)
		return
	}
	download(c, "timeline_filtered.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportChartHTML handles GET /api/sessions/:id/export/chart.html.
func (h *DashboardHandler) ExportChartHTML(c *gin.Context) {
	data, err := h.svc.ChartHTML(c.Request.Context(), c.Param("id"), time.Now().UTC())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// ExportChartPNG handles GET /api/sessions/:id/export/chart.png.
func (h *DashboardHandler) ExportChartPNG(c *gin.Context) {
	data, err := h.svc.ChartPNG(c.Request.Context(), c.Param("id"), time.Now().UTC())
	if err != nil {
		h.fail(c, err)
		return
	}
	download(c, "timeline_chart.png", "image/png", data)
}

// Template handles GET /api/template — the starter workbook download.
func (h *DashboardHandler) Template(c *gin.Context) {
	data, err := h.svc.Template()
	if err != nil {
		h.fail(c, err)
		return
	}
	download(c, "milestone_template.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// fail maps domain errors onto HTTP statuses. Everything recoverable stays
// an inline message; only genuinely unexpected errors become 500s.
func (h *DashboardHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
	case errors.Is(err, ingest.ErrUnreadableFile),
		errors.Is(err, ingest.ErrMissingColumn),
		errors.Is(err, ingest.ErrEmptyDataset):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, chart.ErrRasterDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "PNG export is disabled; enable export.png_enabled to use it"})
	default:
		h.logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func download(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// normalizeOptions canonicalizes the enum-ish fields and rejects values
// that parse to nothing, so stored options are always renderable.
func normalizeOptions(opts *model.ViewOptions) error {
	g, err := model.ParseGranularity(string(opts.Granularity))
	if err != nil {
		return err
	}
	opts.Granularity = g

	a, err := model.ParseAnchorMode(string(opts.AnchorMode))
	if err != nil {
		return err
	}
	opts.AnchorMode = a

	switch opts.TickFormat {
	case model.TickMmmYY, model.TickMonYYYY, model.TickISO:
	case "":
		opts.TickFormat = model.TickMmmYY
	default:
		return errors.New("invalid tick format: " + string(opts.TickFormat))
	}

	for i, s := range opts.StatusFilter {
		parsed, err := model.ParseStatus(string(s))
		if err != nil {
			return err
		}
		opts.StatusFilter[i] = parsed
	}
	return nil
}
