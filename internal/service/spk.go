package service

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/tirtatarum/spk/internal/api/dto"
	"github.com/tirtatarum/spk/internal/domain/record"
	"github.com/tirtatarum/spk/internal/domain/spk"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/types"
)

// SPKService turns record selections into numbered work-order batches.
type SPKService interface {
	Generate(ctx context.Context, req *dto.GenerateSPKRequest) (*dto.GenerateSPKResponse, error)
	// GenerateOrders is the domain-level variant used by the PDF export.
	GenerateOrders(ctx context.Context, kind types.RecordKind, ids []int64) ([]spk.WorkOrder, error)
}

type spkService struct {
	ServiceParams
}

func NewSPKService(params ServiceParams) SPKService {
	return &spkService{ServiceParams: params}
}

// GenerateWorkOrders numbers a selection into a batch. Records keep their
// given order; numbers restart at 0001 for every batch and embed the month
// and year of the shared batch timestamp.
func GenerateWorkOrders(records []record.Record, now time.Time) []spk.WorkOrder {
	orders := make([]spk.WorkOrder, 0, len(records))
	for i, r := range records {
		orders = append(orders, spk.WorkOrder{
			Number:      fmt.Sprintf("SPK/%02d/%04d/%04d", int(now.Month()), now.Year(), i+1),
			Kind:        r.Kind(),
			Record:      r,
			GeneratedAt: now,
		})
	}
	return orders
}

// Aggregate derives the count and amount total of a selection.
func Aggregate(records []record.Record) spk.Summary {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount())
	}
	return spk.Summary{Count: len(records), TotalAmount: total}
}

func (s *spkService) Generate(ctx context.Context, req *dto.GenerateSPKRequest) (*dto.GenerateSPKResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	orders, err := s.GenerateOrders(ctx, req.Type, req.IDs)
	if err != nil {
		return nil, err
	}

	items := lo.Map(orders, func(o spk.WorkOrder, _ int) dto.SPKItem {
		return dto.SPKItem{
			SPKNumber:   o.Number,
			Data:        o.Record,
			Type:        o.Kind,
			GeneratedAt: o.GeneratedAtString(),
		}
	})
	return &dto.GenerateSPKResponse{SPKList: items, Total: len(items)}, nil
}

func (s *spkService) GenerateOrders(ctx context.Context, kind types.RecordKind, ids []int64) ([]spk.WorkOrder, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, ierr.NewError("No IDs provided").
			WithHint("Select at least one record to generate work orders").
			Mark(ierr.ErrValidation)
	}

	records, err := s.fetchByIDs(ctx, kind, ids)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ierr.NewError("Data not found").
			WithHint("None of the selected records exist anymore").
			Mark(ierr.ErrNotFound)
	}
	if len(records) < len(ids) {
		s.Logger.Warnw("some selected records no longer exist",
			"kind", kind,
			"requested", len(ids),
			"found", len(records))
	}

	return GenerateWorkOrders(records, time.Now()), nil
}

func (s *spkService) fetchByIDs(ctx context.Context, kind types.RecordKind, ids []int64) ([]record.Record, error) {
	if kind == types.RecordKindPenyegelan {
		rows, err := s.SealRepo.ListByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		return lo.Map(rows, func(r *record.SealRecord, _ int) record.Record { return r }), nil
	}

	rows, err := s.RevocationRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return lo.Map(rows, func(r *record.RevocationRecord, _ int) record.Record { return r }), nil
}
