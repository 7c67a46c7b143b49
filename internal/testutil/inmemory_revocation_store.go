package testutil

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tirtatarum/spk/internal/domain/record"
	ierr "github.com/tirtatarum/spk/internal/errors"
)

// InMemoryRevocationStore implements record.RevocationRepository for tests.
type InMemoryRevocationStore struct {
	*InMemoryStore[*record.RevocationRecord]
}

func NewInMemoryRevocationStore() *InMemoryRevocationStore {
	return &InMemoryRevocationStore{InMemoryStore: NewInMemoryStore[*record.RevocationRecord]()}
}

func (s *InMemoryRevocationStore) List(ctx context.Context, filter record.ListFilter) ([]*record.RevocationRecord, error) {
	filterFn := func(ctx context.Context, r *record.RevocationRecord, f interface{}) bool {
		return matchRevocation(r, f.(record.ListFilter))
	}
	// Ledger order, matching the SQL ordering on no then id.
	sortFn := func(a, b *record.RevocationRecord) bool {
		if a.SeqNo != b.SeqNo {
			return a.SeqNo < b.SeqNo
		}
		return a.ID < b.ID
	}
	return s.InMemoryStore.List(ctx, filter, filterFn, sortFn)
}

func matchRevocation(r *record.RevocationRecord, f record.ListFilter) bool {
	if f.Ket != "" && r.Ket != f.Ket {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(r.ConnectionNo), needle) ||
		strings.Contains(strings.ToLower(r.Name), needle)
}

func (s *InMemoryRevocationStore) Get(ctx context.Context, id int64) (*record.RevocationRecord, error) {
	rec, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("Data not found").
			WithHint("Data not found").
			Mark(ierr.ErrNotFound)
	}
	return rec, nil
}

func (s *InMemoryRevocationStore) ListByIDs(ctx context.Context, ids []int64) ([]*record.RevocationRecord, error) {
	var result []*record.RevocationRecord
	for _, id := range ids {
		if rec, err := s.InMemoryStore.Get(ctx, id); err == nil {
			result = append(result, rec)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *InMemoryRevocationStore) Update(ctx context.Context, id int64, fields map[string]any) error {
	applied := false
	rec, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		rec = nil
	}

	for _, name := range record.RevocationUpdatableFields {
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
			rec.SeqNo = v.(int)
		case "no_samb":
			rec.ConnectionNo = v.(string)
		case "nama":
			rec.Name = v.(string)
		case "alamat":
			rec.Address = v.(string)
		case "total_tunggakan":
			rec.OverduePeriod = v.(string)
		case "jumlah_tunggakan":
			rec.OverdueAmount = v.(decimal.Decimal)
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

func (s *InMemoryRevocationStore) Count(ctx context.Context) (int, error) {
	return s.InMemoryStore.Count(ctx), nil
}

func (s *InMemoryRevocationStore) CountByStatus(ctx context.Context) ([]record.StatusCount, error) {
	all, err := s.List(ctx, record.ListFilter{})
	if err != nil {
		return nil, err
	}
	return groupByKet(all, func(r *record.RevocationRecord) string { return r.Ket }), nil
}

func (s *InMemoryRevocationStore) SumAmount(ctx context.Context) (decimal.Decimal, error) {
	all, err := s.List(ctx, record.ListFilter{})
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, r := range all {
		total = total.Add(r.OverdueAmount)
	}
	return total, nil
}
