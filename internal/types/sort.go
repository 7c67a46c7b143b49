package types

import (
	ierr "github.com/tirtatarum/spk/internal/errors"
)

// SortOption enumerates the orderings the working-set view supports.
type SortOption string

const (
	SortNameAsc    SortOption = "name-asc"
	SortNameDesc   SortOption = "name-desc"
	SortAmountDesc SortOption = "amount-high"
	SortAmountAsc  SortOption = "amount-low"
)

func (s SortOption) Validate() error {
	switch s {
	case SortNameAsc, SortNameDesc, SortAmountDesc, SortAmountAsc:
		return nil
	default:
		return ierr.NewError("invalid sort option").
			WithHintf("Invalid sort option: %s", s).
			Mark(ierr.ErrValidation)
	}
}
