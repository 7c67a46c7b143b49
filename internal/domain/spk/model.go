package spk

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tirtatarum/spk/internal/domain/record"
	"github.com/tirtatarum/spk/internal/types"
)

// WorkOrder is one numbered SPK produced from a selection. Work orders are
// ephemeral: they live in memory until printed or discarded and are never
// written back to the store. Numbers are unique only within the batch that
// produced them.
type WorkOrder struct {
	Number      string           `json:"spk_number"`
	Kind        types.RecordKind `json:"type"`
	Record      record.Record    `json:"data"`
	GeneratedAt time.Time        `json:"-"`
}

// GeneratedAtString returns the batch timestamp in the wire format.
func (w WorkOrder) GeneratedAtString() string {
	return types.FormatTimestamp(w.GeneratedAt)
}

// Summary holds the derived totals for a selection.
type Summary struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
