package testutil

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tirtatarum/spk/internal/domain/record"
	ierr "github.com/tirtatarum/spk/internal/errors"
)

// InMemorySealStore implements record.SealRepository for tests.
type InMemorySealStore struct {
	*InMemoryStore[*record.SealRecord]
}

func NewInMemorySealStore() *InMemorySealStore {
	return &InMemorySealStore{InMemoryStore: NewInMemoryStore[*record.SealRecord]()}
}

func (s *InMemorySealStore) List(ctx context.Context, filter record.ListFilter) ([]*record.SealRecord, error) {
	filterFn := func(ctx context.Context, r *record.SealRecord, f interface{}) bool {
		return matchSeal(r, f.(record.ListFilter))
	}
	// Newest first, matching the SQL ordering on tanggal then id.
	sortFn := func(a, b *record.SealRecord) bool {
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		return a.ID < b.ID
	}
	return s.InMemoryStore.List(ctx, filter, filterFn, sortFn)
}

func matchSeal(r *record.SealRecord, f record.ListFilter) bool {
	if f.Ket != "" && r.Ket != f.Ket {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(r.CustomerNo), needle) ||
		strings.Contains(strings.ToLower(r.Name), needle)
}

func (s *InMemorySealStore) Get(ctx context.Context, id int64) (*record.SealRecord, error) {
	rec, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("Data not found").
			WithHint("Data not found").
			Mark(ierr.ErrNotFound)
	}
	return rec, nil
}

func (s *InMemorySealStore) ListByIDs(ctx context.Context, ids []int64) ([]*record.SealRecord, error) {
	var result []*record.SealRecord
	for _, id := range ids {
		if rec, err := s.InMemoryStore.Get(ctx, id); err == nil {
			result = append(result, rec)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *InMemorySealStore) Update(ctx context.Context, id int64, fields map[string]any) error {
	applied := false
	rec, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		rec = nil
	}

	for _, name := range record.SealUpdatableFields {
		v, ok := fields[name]
		if !ok {
			continue
		}
		applied = true
		if rec == nil {
			continue
		}
		switch name {
		case "no":
			n := v.(int)
			rec.SeqNo = &n
		case "tanggal":
			rec.Date = v.(string)
		case "nomor_pelanggan":
			rec.CustomerNo = v.(string)
		case "nama":
			rec.Name = v.(string)
		case "jumlah_bln":
			rec.MonthsOverdue = v.(int)
		case "total_rek":
			rec.BilledTotal = v.(decimal.Decimal)
		case "denda":
			rec.Penalty = v.(decimal.Decimal)
		case "jumlah":
			rec.TotalDue = v.(decimal.Decimal)
		case "ket":
			rec.Ket = v.(string)
		}
	}

	if !applied {
		return ierr.NewError("No valid fields to update").
			WithHint("No valid fields to update").
			Mark(ierr.ErrValidation)
	}
	if rec == nil {
		return ierr.NewError("Data not found").
			WithHint("Data not found").
			Mark(ierr.ErrNotFound)
	}
	return s.InMemoryStore.Update(ctx, id, rec)
}

func (s *InMemorySealStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx), nil
}

func (s *InMemorySealStore) CountByStatus(ctx context.Context) ([]record.StatusCount, error) {
	all, err := s.List(ctx, record.ListFilter{})
	if err != nil {
		return nil, err
	}
	return groupByKet(all, func(r *record.SealRecord) string { return r.Ket }), nil
}

func (s *InMemorySealStore) SumAmount(ctx context.Context) (decimal.Decimal, error) {
	all, err := s.List(ctx, record.ListFilter{})
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, r := range all {
		total = total.Add(r.TotalDue)
	}
	return total, nil
}

// groupByKet mirrors the GROUP BY ket queries, with deterministic key order.
func groupByKet[T any](items []T, keyFn func(T) string) []record.StatusCount {
	counts := make(map[string]int)
	var keys []string
	for _, item := range items {
		key := keyFn(item)
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
		}
		counts[key]++
	}
	sort.Strings(keys)

	result := make([]record.StatusCount, 0, len(keys))
	for _, key := range keys {
		result = append(result, record.StatusCount{Ket: key, Count: counts[key]})
	}
	return result
}
