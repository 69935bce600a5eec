package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dtroode/cogedon-server/internal/heatmap"
	"github.com/dtroode/cogedon-server/internal/logger"
	"github.com/dtroode/cogedon-server/internal/metrics"
	"github.com/dtroode/cogedon-server/internal/model"
)

// OwnerResolver supplies the report owner when the caller has no session
// token.
type OwnerResolver interface {
	CurrentUser(ctx context.Context) (int64, error)
}

// ReportsConfig holds report defaults.
type ReportsConfig struct {
	Country      string
	RequireToken bool
	HeatmapLevel int
}

// Reports ingests and queries incident reports.
type Reports struct {
	reportStore model.ReportStore
	owners      OwnerResolver
	storage     model.Storage
	logger      *logger.Logger
	cfg         ReportsConfig
	now         func() time.Time
}

func NewReports(
	reportStore model.ReportStore,
	owners OwnerResolver,
	storage model.Storage,
	logger *logger.Logger,
	cfg ReportsConfig,
) *Reports {
	if cfg.Country == "" {
		cfg.Country = model.DefaultCountry
	}

	return &Reports{
		reportStore: reportStore,
		owners:      owners,
		storage:     storage,
		logger:      logger,
		cfg:         cfg,
		now:         time.Now,
	}
}

// SubmitReport persists a report and its optional image. When the insert
// fails after the image was stored, the image is removed again.
func (s *Reports) SubmitReport(ctx context.Context, params model.SubmitReportParams) (model.Report, error) {
	owner, err := s.resolveOwner(ctx, params.Owner)
	if err != nil {
		return model.Report{}, err
	}

	longitude, err := parseCoordinate("longitude", params.Longitude)
	if err != nil {
		return model.Report{}, err
	}
	latitude, err := parseCoordinate("latitude", params.Latitude)
	if err != nil {
		return model.Report{}, err
	}

	report := model.Report{
		UserID:    owner,
		Longitude: longitude,
		Latitude:  latitude,
		Comment:   params.Comment,
		Status:    model.ReportStatusActive,
		Country:   s.cfg.Country,
		WasteCode: params.WasteCode,
		Province:  params.Province,
	}

	var key string
	if params.File != nil {
		key = objectKey(owner, params.File.Name)
		report.ImagePath, err = s.storage.Upload(ctx, key, params.File.Reader, params.File.Size, params.File.ContentType)
		if err != nil {
			metrics.UploadFailures.Inc()
			s.logger.Error("Reports service: failed to upload image",
				"user_id", owner,
				"key", key,
				"error", err.Error())
			return model.Report{}, fmt.Errorf("failed to upload image: %w: %w", model.ErrPersistence, err)
		}
	}

	report.ReportedAt = s.now().UTC()

	saved, err := s.reportStore.Create(ctx, report)
	if err != nil {
		if key != "" {
			if derr := s.storage.Delete(context.WithoutCancel(ctx), key); derr != nil {
				s.logger.Error("Reports service: failed to delete orphaned image",
					"key", key,
					"error", derr.Error())
			}
		}
		s.logger.Error("Reports service: failed to create report",
			"user_id", owner,
			"error", err.Error())
		if !errors.Is(err, model.ErrPersistence) {
			err = fmt.Errorf("%w: %w", model.ErrPersistence, err)
		}
		return model.Report{}, fmt.Errorf("failed to create report: %w", err)
	}

	metrics.RecordReportSubmitted(key != "")
	s.logger.Info("Reports service: report created",
		"report_id", saved.ID,
		"user_id", owner,
		"with_image", key != "")

	return saved, nil
}

// FilterReports returns reports with reported_at in [from, to] ordered by
// report number. The sequence queries the store each time it is ranged over.
func (s *Reports) FilterReports(ctx context.Context, from, to time.Time) (iter.Seq2[model.ReportSummary, error], error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	s.logger.Debug("Reports service: filtering reports",
		"from", from,
		"to", to)

	return s.reportStore.FilterByDate(ctx, from, to), nil
}

// Heatmap aggregates report locations in [from, to] into weighted points.
func (s *Reports) Heatmap(ctx context.Context, from, to time.Time) ([]model.HeatPoint, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	agg := heatmap.NewAggregator(s.cfg.HeatmapLevel)
	for loc, err := range s.reportStore.LocationsByDate(ctx, from, to) {
		if err != nil {
			return nil, fmt.Errorf("failed to load report locations: %w", err)
		}
		agg.Add(loc.Latitude, loc.Longitude)
	}

	return agg.Points(), nil
}

func (s *Reports) resolveOwner(ctx context.Context, owner int64) (int64, error) {
	if owner != 0 {
		return owner, nil
	}
	if s.cfg.RequireToken {
		return 0, model.ErrNoActiveSession
	}

	owner, err := s.owners.CurrentUser(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrNoActiveSession) {
			s.logger.Error("Reports service: failed to resolve current user", "error", err.Error())
		}
		return 0, err
	}

	return owner, nil
}

func parseCoordinate(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, model.NewValidationError(field, "required")
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, model.NewValidationError(field, "not a number")
	}

	return d, nil
}

func validateRange(from, to time.Time) error {
	if from.After(to) {
		return model.NewValidationError("fechaDesde", "must not be after fechaHasta")
	}
	return nil
}

func objectKey(owner int64, filename string) string {
	return fmt.Sprintf("reports/%d/%s%s", owner, uuid.NewString(), strings.ToLower(filepath.Ext(filename)))
}
