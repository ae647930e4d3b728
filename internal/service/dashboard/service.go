// Package dashboard orchestrates the upload → classify → render → export
// flow. Handlers stay thin; everything stateful goes through the session
// store and everything computed goes through timeline.Build.
package dashboard

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/aayush1982/universal-timeline-viewer/internal/chart"
	"github.com/aayush1982/universal-timeline-viewer/internal/export"
	"github.com/aayush1982/universal-timeline-viewer/internal/ingest"
	"github.com/aayush1982/universal-timeline-viewer/internal/model"
	"github.com/aayush1982/universal-timeline-viewer/internal/session"
	"github.com/aayush1982/universal-timeline-viewer/internal/timeline"
	"github.com/aayush1982/universal-timeline-viewer/pkg/metrics"
)

type Service struct {
	store    session.Store
	raster   *chart.Rasterizer
	defaults model.ViewOptions
	logger   *zap.Logger
}

func NewService(store session.Store, raster *chart.Rasterizer, defaults model.ViewOptions, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		raster:   raster,
		defaults: defaults,
		logger:   logger,
	}
}

// UploadResult is what the UI needs to populate its mapping dropdowns
// after an upload: the new session, the sheet list, the headers and the
// guessed column mapping.
type UploadResult struct {
	SessionID string              `json:"session_id"`
	Filename  string              `json:"filename"`
	Sheet     string              `json:"sheet,omitempty"`
	Sheets    []string            `json:"sheets,omitempty"`
	Headers   []string            `json:"headers"`
	Mapping   model.ColumnMapping `json:"mapping"`
	RowCount  int                 `json:"row_count"`
	Warnings  []string            `json:"warnings,omitempty"`
}

// Upload parses the file, opens a session around the raw dataset and
// preselects a column mapping.
func (s *Service) Upload(ctx context.Context, filename string, r io.Reader, sheet string) (*UploadResult, error) {
	ds, err := ingest.Read(filename, r, sheet)
	if err != nil {
		metrics.IncrementUpload("failed")
		return nil, err
	}

	opts := s.defaults
	opts.Mapping = ingest.GuessMapping(ds.Headers)

	sess, err := s.store.Create(ctx, ds, opts)
	if err != nil {
		metrics.IncrementUpload("failed")
		metrics.IncrementSessionOp("create", "failed")
		return nil, err
	}
	metrics.IncrementUpload("success")
	metrics.IncrementSessionOp("create", "success")
	metrics.UploadRows.Observe(float64(len(ds.Rows)))

	s.logger.Info("dataset uploaded",
		zap.String("session_id", sess.ID),
		zap.String("filename", ds.Filename),
		zap.String("sheet", ds.Sheet),
		zap.Int("rows", len(ds.Rows)),
	)

	return &UploadResult{
		SessionID: sess.ID,
		Filename:  ds.Filename,
		Sheet:     ds.Sheet,
		Sheets:    ds.Sheets,
		Headers:   ds.Headers,
		Mapping:   opts.Mapping,
		RowCount:  len(ds.Rows),
		Warnings:  ds.Warnings,
	}, nil
}

// Sheets lists the workbook's sheet names for the sheet picker.
func (s *Service) Sheets(ctx context.Context, id string) ([]string, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return sess.Dataset.Sheets, nil
}

// Options returns the session's current view configuration.
func (s *Service) Options(ctx context.Context, id string) (model.ViewOptions, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return model.ViewOptions{}, err
	}
	return sess.Options, nil
}

// SetOptions replaces the session's view configuration.
func (s *Service) SetOptions(ctx context.Context, id string, opts model.ViewOptions) error {
	if err := s.store.SetOptions(ctx, id, opts); err != nil {
		metrics.IncrementSessionOp("set_options", "failed")
		return err
	}
	metrics.IncrementSessionOp("set_options", "success")
	return nil
}

// View recomputes the full dashboard state for a session: extract
// milestones with the current mapping, classify, bucket, filter,
// aggregate. Dataset and extraction warnings ride along in the view.
func (s *Service) View(ctx context.Context, id string, today time.Time) (*timeline.View, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.viewFrom(sess, today)
}

// viewFrom recomputes the view for an already-fetched session, so callers
// that also need the session itself pay for one store round-trip only.
func (s *Service) viewFrom(sess *session.Session, today time.Time) (*timeline.View, error) {
	start := time.Now()
	ms, warnings, err := ingest.ExtractMilestones(sess.Dataset, sess.Options.Mapping)
	if err != nil {
		return nil, err
	}

	v := timeline.Build(ms, sess.Options, today)
	v.Warnings = append(append(append([]string{}, sess.Dataset.Warnings...), warnings...), v.Warnings...)
	metrics.BuildDuration.Observe(time.Since(start).Seconds())
	return &v, nil
}

// ExportCSV renders the current filtered view as CSV bytes.
func (s *Service) ExportCSV(ctx context.Context, id string, today time.Time) ([]byte, error) {
	v, err := s.View(ctx, id, today)
	if err != nil {
		metrics.IncrementExport("csv", "failed")
		return nil, err
	}
	data, err := export.CSV(v.Rows)
	metrics.IncrementExport("csv", outcome(err))
	return data, err
}

// ExportExcel renders the current filtered view as a workbook.
func (s *Service) ExportExcel(ctx context.Context, id string, today time.Time) ([]byte, error) {
	v, err := s.View(ctx, id, today)
	if err != nil {
		metrics.IncrementExport("xlsx", "failed")
		return nil, err
	}
	data, err := export.Excel(v.Rows)
	metrics.IncrementExport("xlsx", outcome(err))
	return data, err
}

// ChartHTML renders the interactive chart as a self-contained page.
func (s *Service) ChartHTML(ctx context.Context, id string, today time.Time) ([]byte, error) {
	fig, err := s.figure(ctx, id, today)
	if err != nil {
		metrics.IncrementExport("html", "failed")
		return nil, err
	}
	data, err := chart.RenderHTML(*fig)
	metrics.IncrementExport("html", outcome(err))
	return data, err
}

// ChartPNG rasterizes the chart. Fails with chart.ErrRasterDisabled when
// the raster path is switched off; nothing else is affected.
func (s *Service) ChartPNG(ctx context.Context, id string, today time.Time) ([]byte, error) {
	if !s.raster.Available() {
		metrics.IncrementExport("png", "disabled")
		return nil, chart.ErrRasterDisabled
	}
	fig, err := s.figure(ctx, id, today)
	if err != nil {
		metrics.IncrementExport("png", "failed")
		return nil, err
	}
	data, err := s.raster.Render(*fig)
	metrics.IncrementExport("png", outcome(err))
	return data, err
}

// PNGAvailable reports whether the raster export path is on.
func (s *Service) PNGAvailable() bool {
	return s.raster.Available()
}

// Template returns the downloadable starter workbook.
func (s *Service) Template() ([]byte, error) {
	return ingest.Template()
}

func (s *Service) figure(ctx context.Context, id string, today time.Time) (*chart.Figure, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	v, err := s.viewFrom(sess, today)
	if err != nil {
		return nil, err
	}
	fig := chart.NewFigure(*v, sess.Options)
	return &fig, nil
}

func outcome(err error) string {
	if err != nil {
		return "failed"
	}
	return "success"
}
