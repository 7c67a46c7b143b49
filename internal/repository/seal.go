package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/tirtatarum/spk/internal/domain/record"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/logger"
	"github.com/tirtatarum/spk/internal/postgres"
)

type sealRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSealRepository(db *postgres.DB, logger *logger.Logger) record.SealRepository {
	return &sealRepository{db: db, logger: logger}
}

const sealColumns = "id, no, tanggal, nomor_pelanggan, nama, jumlah_bln, total_rek, denda, jumlah, ket"

func (r *sealRepository) List(ctx context.Context, filter record.ListFilter) ([]*record.SealRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM penyegelan WHERE 1=1", sealColumns)
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (nomor_pelanggan ILIKE $%d OR nama ILIKE $%d)", len(args), len(args))
	}
	if filter.Ket != "" {
		args = append(args, filter.Ket)
		query += fmt.Sprintf(" AND ket = $%d", len(args))
	}
	query += " ORDER BY tanggal DESC, id"

	rows := []*record.SealRecord{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list penyegelan records").
			Mark(ierr.ErrDatabase)
	}
	reconcileSeals(r.logger, rows)
	return rows, nil
}

func (r *sealRepository) Get(ctx context.Context, id int64) (*record.SealRecord, error) {
	var rec record.SealRecord
	query := fmt.Sprintf("SELECT %s FROM penyegelan WHERE id = $1", sealColumns)
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("penyegelan record not found").
				WithHint("Data not found").
				WithReportableDetails(map[string]any{"id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get penyegelan record").
			Mark(ierr.ErrDatabase)
	}
	reconcileSeals(r.logger, []*record.SealRecord{&rec})
	return &rec, nil
}

func (r *sealRepository) ListByIDs(ctx context.Context, ids []int64) ([]*record.SealRecord, error) {
	if len(ids) == 0 {
		return []*record.SealRecord{}, nil
	}

	query, args, err := sqlx.In(
		fmt.Sprintf("SELECT %s FROM penyegelan WHERE id IN (?) ORDER BY id", sealColumns), ids)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to build penyegelan query").
			Mark(ierr.ErrSystem)
	}
	query = r.db.Rebind(query)

	rows := []*record.SealRecord{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list penyegelan records").
			Mark(ierr.ErrDatabase)
	}
	reconcileSeals(r.logger, rows)
	return rows, nil
}

func (r *sealRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	query, args, err := buildUpdate("penyegelan", record.SealUpdatableFields, fields, id)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update penyegelan record").
			Mark(ierr.ErrDatabase)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ierr.NewError("penyegelan record not found").
			WithHint("Data not found").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *sealRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM penyegelan"); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count penyegelan records").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *sealRepository) CountByStatus(ctx context.Context) ([]record.StatusCount, error) {
	counts := []record.StatusCount{}
	query := "SELECT ket, COUNT(*) AS count FROM penyegelan GROUP BY ket ORDER BY ket"
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to group penyegelan records by status").
			Mark(ierr.ErrDatabase)
	}
	return counts, nil
}

func (r *sealRepository) SumAmount(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := "SELECT COALESCE(SUM(jumlah), 0) FROM penyegelan"
	if err := r.db.GetContext(ctx, &sum, query); err != nil {
		return decimal.Zero, ierr.WithError(err).
			WithHint("Failed to sum penyegelan amounts").
			Mark(ierr.ErrDatabase)
	}
	return sum, nil
}

func reconcileSeals(log *logger.Logger, rows []*record.SealRecord) {
	for _, rec := range rows {
		if !rec.Reconciled() {
			log.Warnw("penyegelan total does not reconcile, using billed plus penalty",
				"id", rec.ID,
				"stored", rec.TotalDue,
				"computed", rec.BilledTotal.Add(rec.Penalty),
			)
			rec.Reconcile()
		}
	}
}

// buildUpdate assembles an allow-listed partial UPDATE. Keys outside the
// allow-list are dropped; an empty effective field set is a validation error.
func buildUpdate(table string, allowed []string, fields map[string]any, id int64) (string, []interface{}, error) {
	sets := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)

	for _, col := range allowed {
		val, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if len(sets) == 0 {
		return "", nil, ierr.NewError("no valid fields to update").
			WithHint("No valid fields to update").
			Mark(ierr.ErrValidation)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(sets, ", "), len(args))
	return query, args, nil
}
