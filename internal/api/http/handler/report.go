package handler

import (
	"context"
	"errors"
	"iter"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/cogedon-server/internal/logger"
	"github.com/dtroode/cogedon-server/internal/model"
)

// ReportService defines report ingestion and query operations.
type ReportService interface {
	SubmitReport(ctx context.Context, params model.SubmitReportParams) (model.Report, error)
	FilterReports(ctx context.Context, from, to time.Time) (iter.Seq2[model.ReportSummary, error], error)
	Heatmap(ctx context.Context, from, to time.Time) ([]model.HeatPoint, error)
}

// Report handles report endpoints.
type Report struct {
	reportService  ReportService
	contextManager model.ContextManager
	logger         *logger.Logger
	maxUpload      int64
}

// NewReport creates a new Report handler. Request bodies of report
// submissions are capped at maxUpload bytes.
func NewReport(reportService ReportService, contextManager model.ContextManager, logger *logger.Logger, maxUpload int64) *Report {
	return &Report{
		reportService:  reportService,
		contextManager: contextManager,
		logger:         logger,
		maxUpload:      maxUpload,
	}
}

type submitResponse struct {
	Message   string `json:"message"`
	ReportID  int64  `json:"reportId"`
	ImagePath string `json:"imagePath"`
}

// Submit accepts a multipart or urlencoded report with an optional image.
func (h *Report) Submit(c *gin.Context) {
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}

	fh, err := formFile(c, "file", "imageUpload")
	if err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusInternalServerError {
			status, msg = http.StatusBadRequest, msgInvalidBody
		}
		c.AbortWithStatusJSON(status, errorResponse{Message: msg})
		return
	}

	params := model.SubmitReportParams{
		Longitude: c.PostForm("longitude"),
		Latitude:  c.PostForm("latitude"),
		Comment:   c.PostForm("comment"),
		WasteCode: firstNonEmpty(c.PostForm("wasteCode"), c.PostForm("enubasu")),
		Province:  c.PostForm("province"),
	}
	if session, ok := h.contextManager.GetSessionFromContext(c.Request.Context()); ok {
		params.Owner = session.UserID
	}

	if fh != nil {
		f, err := fh.Open()
		if err != nil {
			handleError(c, h.logger, err)
			return
		}
		defer f.Close()

		params.File = &model.Upload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Reader:      f,
		}
	}

	report, err := h.reportService.SubmitReport(c.Request.Context(), params)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, submitResponse{
		Message:   "Reporte guardado con éxito",
		ReportID:  report.ID,
		ImagePath: report.ImagePath,
	})
}

type filterRequest struct {
	From string `json:"fechaDesde" form:"fechaDesde"`
	To   string `json:"fechaHasta" form:"fechaHasta"`
}

type reportSummaryResponse struct {
	ReportNumber int64     `json:"numeroReporte"`
	FullName     string    `json:"nombreApellido"`
	Status       string    `json:"estatus"`
	Address      string    `json:"direccion"`
	ReportedAt   time.Time `json:"fechaReporte"`
	Comment      string    `json:"comentario"`
}

// Filter returns reports created within [fechaDesde, fechaHasta].
func (h *Report) Filter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Message: msgInvalidBody})
		return
	}

	from, to, err := parseRange(req.From, req.To)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	seq, err := h.reportService.FilterReports(c.Request.Context(), from, to)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	out := make([]reportSummaryResponse, 0)
	for s, err := range seq {
		if err != nil {
			handleError(c, h.logger, err)
			return
		}
		out = append(out, reportSummaryResponse{
			ReportNumber: s.ReportNumber,
			FullName:     s.FullName,
			Status:       s.Status,
			Address:      s.Address,
			ReportedAt:   s.ReportedAt,
			Comment:      s.Comment,
		})
	}

	c.JSON(http.StatusOK, out)
}

type heatPointResponse struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Intensity float64 `json:"intensity"`
}

// Heatmap returns weighted points for the dashboard heat layer. Missing
// bounds are unbounded.
func (h *Report) Heatmap(c *gin.Context) {
	from, to, err := parseOpenRange(c.Query("fechaDesde"), c.Query("fechaHasta"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	points, err := h.reportService.Heatmap(c.Request.Context(), from, to)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	out := make([]heatPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, heatPointResponse{Lat: p.Latitude, Lng: p.Longitude, Intensity: p.Intensity})
	}

	c.JSON(http.StatusOK, out)
}

// formFile returns the first file found under any of names, or nil when the
// request carries none.
func formFile(c *gin.Context, names ...string) (*multipart.FileHeader, error) {
	for _, name := range names {
		fh, err := c.FormFile(name)
		if err == nil {
			return fh, nil
		}
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			continue
		}
		return nil, err
	}
	return nil, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
