package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/tirtatarum/spk/internal/domain/record"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/logger"
	"github.com/tirtatarum/spk/internal/postgres"
)

type revocationRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewRevocationRepository(db *postgres.DB, logger *logger.Logger) record.RevocationRepository {
	return &revocationRepository{db: db, logger: logger}
}

const revocationColumns = "id, no, no_samb, nama, alamat, total_tunggakan, jumlah_tunggakan, ket"

func (r *revocationRepository) List(ctx context.Context, filter record.ListFilter) ([]*record.RevocationRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM pencabutan WHERE 1=1", revocationColumns)
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (no_samb ILIKE $%d OR nama ILIKE $%d)", len(args), len(args))
	}
	if filter.Ket != "" {
		args = append(args, filter.Ket)
		query += fmt.Sprintf(" AND ket = $%d", len(args))
	}
	query += " ORDER BY no, id"

	rows := []*record.RevocationRecord{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list pencabutan records").
			Mark(ierr.ErrDatabase)
	}
	return rows, nil
}

func (r *revocationRepository) Get(ctx context.Context, id int64) (*record.RevocationRecord, error) {
	var rec record.RevocationRecord
	query := fmt.Sprintf("SELECT %s FROM pencabutan WHERE id = $1", revocationColumns)
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("pencabutan record not found").
				WithHint("Data not found").
				WithReportableDetails(map[string]any{"id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get pencabutan record").
			Mark(ierr.ErrDatabase)
	}
	return &rec, nil
}

func (r *revocationRepository) ListByIDs(ctx context.Context, ids []int64) ([]*record.RevocationRecord, error) {
	if len(ids) == 0 {
		return []*record.RevocationRecord{}, nil
	}

	query, args, err := sqlx.In(
		fmt.Sprintf("SELECT %s FROM pencabutan WHERE id IN (?) ORDER BY id", revocationColumns), ids)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to build pencabutan query").
			Mark(ierr.ErrSystem)
	}
	query = r.db.Rebind(query)

	rows := []*record.RevocationRecord{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list pencabutan records").
			Mark(ierr.ErrDatabase)
	}
	return rows, nil
}

func (r *revocationRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	query, args, err := buildUpdate("pencabutan", record.RevocationUpdatableFields, fields, id)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update pencabutan record").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("pencabutan record not found").
			WithHint("Data not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *revocationRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM pencabutan"); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count pencabutan records").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *revocationRepository) CountByStatus(ctx context.Context) ([]record.StatusCount, error) {
	counts := []record.StatusCount{}
	query := "SELECT ket, COUNT(*) AS count FROM pencabutan GROUP BY ket ORDER BY ket"
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to group pencabutan records by status").
			Mark(ierr.ErrDatabase)
	}
	return counts, nil
}

func (r *revocationRepository) SumAmount(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := "SELECT COALESCE(SUM(jumlah_tunggakan), 0) FROM pencabutan"
	if err := r.db.GetContext(ctx, &sum, query); err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHint("Failed to sum pencabutan amounts").
			Mark(ierr.ErrDatabase)
	}
	return sum, nil
}
