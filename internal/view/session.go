// Package view holds the working set for one record class and tracks the
// user's ad-hoc selection over it. A Session is owned by a single
// interactive flow; it is not safe for concurrent use and does not need to
// be — all mutations happen on the owner's turn.
package view

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tirtatarum/spk/internal/domain/record"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/types"
)

// Fetcher loads the working set for a filter. Implementations are expected
// to return records in the class's default order (seal notices by date
// descending, revocation notices by sequence number).
type Fetcher func(ctx context.Context, filter record.ListFilter) ([]record.Record, error)

// Session is the filterable, sortable, paginated view over one record class.
//
// Selection is keyed by record identity, not by dataset position. The
// original system kept raw array positions, which silently mis-targeted
// records when the sort order changed between selecting and generating;
// identity keys make re-sorting selection-safe. Re-filtering still clears
// the selection: a new working set is a new conversation.
type Session struct {
	kind  types.RecordKind
	fetch Fetcher

	filter   record.ListFilter
	records  []record.Record
	sortBy   types.SortOption
	page     int
	pageSize int

	selected map[int64]struct{}

	// fetchSeq tokens make in-flight fetches last-issued-wins: a stale
	// response arriving after a newer SetFilter call is discarded instead
	// of overwriting the newer state.
	fetchSeq uint64
}

// NewSession creates an empty session for one record class.
func NewSession(kind types.RecordKind, fetch Fetcher) *Session {
	return &Session{
		kind:     kind,
		fetch:    fetch,
		sortBy:   types.SortNameAsc,
		page:     1,
		pageSize: types.DefaultPageSize,
		selected: make(map[int64]struct{}),
	}
}

func (s *Session) Kind() types.RecordKind    { return s.kind }
func (s *Session) Filter() record.ListFilter { return s.filter }
func (s *Session) SortBy() types.SortOption  { return s.sortBy }
func (s *Session) PageSize() int             { return s.pageSize }
func (s *Session) CurrentPage() int          { return s.page }
func (s *Session) Len() int                  { return len(s.records) }

// SetFilter re-fetches the working set. On success the page resets to 1 and
// the selection clears; identities from the previous working set are not
// assumed valid under the new filter. On failure the previous working set
// stays visible and the error is returned for a retry.
func (s *Session) SetFilter(ctx context.Context, search, ket string) error {
	s.fetchSeq++
	token := s.fetchSeq

	filter := record.ListFilter{Search: search, Ket: ket}
	records, err := s.fetch(ctx, filter)
	if err != nil {
		return err
	}

	// A newer fetch was issued while this one was in flight; its result
	// wins and this one is dropped.
	if token != s.fetchSeq {
		return nil
	}

	s.filter = filter
	s.records = records
	SortRecords(s.records, s.sortBy)
	s.page = 1
	s.selected = make(map[int64]struct{})
	return nil
}

// SetSort reorders the working set. The selection survives: it is keyed by
// identity, so it follows the records to their new positions.
func (s *Session) SetSort(option types.SortOption) error {
	if err := option.Validate(); err != nil {
		return err
	}
	s.sortBy = option
	SortRecords(s.records, option)
	return nil
}

// SetPageSize changes the page size and returns to the first page.
func (s *Session) SetPageSize(size int) error {
	if size <= 0 {
		return ierr.NewError("invalid page size").
			WithHintf("Page size must be positive, got %d", size).
			Mark(ierr.ErrValidation)
	}
	s.pageSize = size
	s.page = 1
	return nil
}

// SetPage moves to a 1-indexed page, clamped to the valid range.
func (s *Session) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	if max := s.PageCount(); max > 0 && p > max {
		p = max
	}
	s.page = p
}

// PageCount returns ceil(len/pageSize).
func (s *Session) PageCount() int {
	return types.PageCount(len(s.records), s.pageSize)
}

// Page returns the records visible on the current page.
func (s *Session) Page() []record.Record {
	start, end := types.PageBounds(s.page, s.pageSize, len(s.records))
	return s.records[start:end]
}

// ToggleSelect flips the selection state of one record. The id must belong
// to the current working set; the selection is always a subset of it.
func (s *Session) ToggleSelect(id int64) error {
	if !s.contains(id) {
		return ierr.NewError("record not in working set").
			WithHintf("Record %d is not part of the current view", id).
			Mark(ierr.ErrInvalidOperation)
	}
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
	} else {
		s.selected[id] = struct{}{}
	}
	return nil
}

// SelectAllOnPage selects every record visible on the current page. If all
// of them are already selected it unselects exactly those, leaving
// selections on other pages alone.
func (s *Session) SelectAllOnPage() {
	visible := s.Page()
	allSelected := len(visible) > 0
	for _, rec := range visible {
		if _, ok := s.selected[rec.RecordID()]; !ok {
			allSelected = false
			break
		}
	}

	for _, rec := range visible {
		if allSelected {
			delete(s.selected, rec.RecordID())
		} else {
			s.selected[rec.RecordID()] = struct{}{}
		}
	}
}

// ClearSelection drops the whole selection.
func (s *Session) ClearSelection() {
	s.selected = make(map[int64]struct{})
}

// SelectionCount returns the number of selected records.
func (s *Session) SelectionCount() int {
	return len(s.selected)
}

// IsSelected reports whether a record is part of the selection.
func (s *Session) IsSelected(id int64) bool {
	_, ok := s.selected[id]
	return ok
}

// SelectedRecords returns the selection in working-set order, which is the
// order work orders are numbered in.
func (s *Session) SelectedRecords() []record.Record {
	out := make([]record.Record, 0, len(s.selected))
	for _, rec := range s.records {
		if _, ok := s.selected[rec.RecordID()]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// SelectionTotal sums the monetary magnitude of the selection.
func (s *Session) SelectionTotal() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range s.SelectedRecords() {
		total = total.Add(rec.Amount())
	}
	return total
}

func (s *Session) contains(id int64) bool {
	for _, rec := range s.records {
		if rec.RecordID() == id {
			return true
		}
	}
	return false
}
