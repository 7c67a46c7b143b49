package record

import (
	"context"

	"github.com/shopspring/decimal"
)

// ListFilter narrows a record listing. An empty search term matches
// everything; Ket, when set, is an exact match against the raw status tag.
type ListFilter struct {
	Search string
	Ket    string
}

// StatusCount is one group of the per-status breakdown. The group key is the
// raw tag string; no normalization happens at the storage layer.
type StatusCount struct {
	Ket   string `db:"ket" json:"KET"`
	Count int    `db:"count" json:"count"`
}

// SealRepository defines data access for seal notices.
type SealRepository interface {
	List(ctx context.Context, filter ListFilter) ([]*SealRecord, error)
	Get(ctx context.Context, id int64) (*SealRecord, error)
	// ListByIDs returns the matching records in ascending id order.
	// Missing ids are skipped, not errors.
	ListByIDs(ctx context.Context, ids []int64) ([]*SealRecord, error)
	// Update applies the allow-listed subset of fields. Unknown keys are
	// dropped by the caller before reaching here.
	Update(ctx context.Context, id int64, fields map[string]any) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	SumAmount(ctx context.Context) (decimal.Decimal, error)
}

// RevocationRepository defines data access for revocation notices.
type RevocationRepository interface {
	List(ctx context.Context, filter ListFilter) ([]*RevocationRecord, error)
	Get(ctx context.Context, id int64) (*RevocationRecord, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*RevocationRecord, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	SumAmount(ctx context.Context) (decimal.Decimal, error)
}
