package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/tirtatarum/spk/internal/cache"
	"github.com/tirtatarum/spk/internal/domain/record"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/types"
)

// RecordService exposes the enforcement record operations. The two record
// classes share one service; handlers pick the class with a kind tag.
type RecordService interface {
	List(ctx context.Context, kind types.RecordKind, filter record.ListFilter) ([]record.Record, error)
	Get(ctx context.Context, kind types.RecordKind, id int64) (record.Record, error)
	// Update applies a partial update. Fields must already be projected to
	// column names; the repository enforces the per-class allow-list.
	Update(ctx context.Context, kind types.RecordKind, id int64, fields map[string]any) error
}

type recordService struct {
	ServiceParams
}

func NewRecordService(params ServiceParams) RecordService {
	return &recordService{ServiceParams: params}
}

func (s *recordService) List(ctx context.Context, kind types.RecordKind, filter record.ListFilter) ([]record.Record, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	switch kind {
	case types.RecordKindPenyegelan:
		rows, err := s.SealRepo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return lo.Map(rows, func(r *record.SealRecord, _ int) record.Record { return r }), nil
	default:
		rows, err := s.RevocationRepo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		return lo.Map(rows, func(r *record.RevocationRecord, _ int) record.Record { return r }), nil
	}
}

func (s *recordService) Get(ctx context.Context, kind types.RecordKind, id int64) (record.Record, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	if kind == types.RecordKindPenyegelan {
		return s.SealRepo.Get(ctx, id)
	}
	return s.RevocationRepo.Get(ctx, id)
}

func (s *recordService) Update(ctx context.Context, kind types.RecordKind, id int64, fields map[string]any) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if len(fields) == 0 {
		return ierr.NewError("No valid fields to update").
			WithHint("The payload contained no updatable fields").
			Mark(ierr.ErrValidation)
	}

	var err error
	if kind == types.RecordKindPenyegelan {
		err = s.SealRepo.Update(ctx, id, fields)
	} else {
		err = s.RevocationRepo.Update(ctx, id, fields)
	}
	if err != nil {
		return err
	}

	// Aggregates changed, drop the cached dashboard numbers.
	s.Cache.DeleteByPrefix(ctx, cache.PrefixStats)
	return nil
}
