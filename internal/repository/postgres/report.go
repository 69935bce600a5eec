package postgres

import (
	"context"
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dtroode/cogedon-server/internal/model"
)

var _ model.ReportStore = (*ReportRepository)(nil)

type ReportRepository struct {
	db *Connection
}

func NewReportRepository(db *Connection) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

func (r *ReportRepository) Create(ctx context.Context, report model.Report) (model.Report, error) {
	query := `INSERT INTO reports (user_id, longitude, latitude, comment, image_path, reported_at, status, country, waste_code, province)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		report.UserID, report.Longitude, report.Latitude, report.Comment, report.ImagePath,
		report.ReportedAt, report.Status, report.Country, report.WasteCode, report.Province,
	).Scan(&report.ID)
	if err != nil {
		return model.Report{}, wrapError("create report", err)
	}

	return report, nil
}

func (r *ReportRepository) FilterByDate(ctx context.Context, from, to time.Time) iter.Seq2[model.ReportSummary, error] {
	query := `SELECT r.id, u.name || ' ' || u.surname, r.status, u.address, r.reported_at, r.comment
			  FROM reports r JOIN users u ON u.id = r.user_id
			  WHERE r.reported_at BETWEEN $1 AND $2
			  ORDER BY r.id`

	return func(yield func(model.ReportSummary, error) bool) {
		rows, err := r.db.QueryContext(ctx, query, from, to)
		if err != nil {
			yield(model.ReportSummary{}, wrapError("filter reports", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var s model.ReportSummary
			err := rows.Scan(&s.ReportNumber, &s.FullName, &s.Status, &s.Address, &s.ReportedAt, &s.Comment)
			if err != nil {
				yield(model.ReportSummary{}, wrapError("scan report", err))
				return
			}
			if !yield(s, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(model.ReportSummary{}, wrapError("iterate reports", err))
		}
	}
}

func (r *ReportRepository) LocationsByDate(ctx context.Context, from, to time.Time) iter.Seq2[model.Location, error] {
	query := `SELECT latitude, longitude
			  FROM reports
			  WHERE reported_at BETWEEN $1 AND $2`

	return func(yield func(model.Location, error) bool) {
		rows, err := r.db.QueryContext(ctx, query, from, to)
		if err != nil {
			yield(model.Location{}, wrapError("load report locations", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var lat, lng decimal.Decimal
			if err := rows.Scan(&lat, &lng); err != nil {
				yield(model.Location{}, wrapError("scan report location", err))
				return
			}
			loc := model.Location{Latitude: lat.InexactFloat64(), Longitude: lng.InexactFloat64()}
			if !yield(loc, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(model.Location{}, wrapError("iterate report locations", err))
		}
	}
}
