package view

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tirtatarum/spk/internal/domain/record"
	"github.com/tirtatarum/spk/internal/types"
)

// Name ordering is locale-aware; the record data is Indonesian.
var nameCollator = collate.New(language.Indonesian)

// SortRecords orders a working set in place. The sort is stable: records
// with equal keys keep their relative order, so re-sorting with the same
// option is a no-op.
func SortRecords(records []record.Record, option types.SortOption) {
	switch option {
	case types.SortNameAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return nameCollator.CompareString(records[i].DisplayName(), records[j].DisplayName()) < 0
		})
	case types.SortNameDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return nameCollator.CompareString(records[i].DisplayName(), records[j].DisplayName()) > 0
		})
	case types.SortAmountDesc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Amount().GreaterThan(records[j].Amount())
		})
	case types.SortAmountAsc:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Amount().LessThan(records[j].Amount())
		})
	}
}
