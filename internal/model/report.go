package model

import (
	"context"
	"io"
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// ReportStatusActive is the status assigned to every new report.
	ReportStatusActive = "ACT"
	// DefaultCountry is used when no country is configured.
	DefaultCountry = "Republica Dominicana"
)

// ReportStore defines persistence operations for reports.
type ReportStore interface {
	Create(ctx context.Context, report Report) (Report, error)
	// FilterByDate yields reports with reported_at in [from, to] ordered by id.
	// Every range over the sequence runs the query again.
	FilterByDate(ctx context.Context, from, to time.Time) iter.Seq2[ReportSummary, error]
	LocationsByDate(ctx context.Context, from, to time.Time) iter.Seq2[Location, error]
}

// Report represents a persisted incident report.
type Report struct {
	ID         int64
	UserID     int64
	Longitude  decimal.Decimal
	Latitude   decimal.Decimal
	Comment    string
	ImagePath  string
	ReportedAt time.Time
	Status     string
	Country    string
	WasteCode  string
	Province   string
}

// ReportSummary is a report joined with its owner's profile.
type ReportSummary struct {
	ReportNumber int64
	FullName     string
	Status       string
	Address      string
	ReportedAt   time.Time
	Comment      string
}

// Location is a bare report coordinate.
type Location struct {
	Latitude  float64
	Longitude float64
}

// HeatPoint is a weighted point for the dashboard heat layer. Intensity is
// in (0, 1].
type HeatPoint struct {
	Latitude  float64
	Longitude float64
	Intensity float64
}

// Upload is a file attached to a report submission.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// SubmitReportParams contains raw fields of a report submission.
// Owner is zero when the caller presented no session token.
type SubmitReportParams struct {
	Owner     int64
	Longitude string
	Latitude  string
	Comment   string
	WasteCode string
	Province  string
	File      *Upload
}
