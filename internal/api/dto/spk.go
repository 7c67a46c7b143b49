package dto

import (
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/types"
	"github.com/tirtatarum/spk/internal/validator"
)

// GenerateSPKRequest selects the records a work-order batch covers.
// IDs are row identities of the chosen record class.
type GenerateSPKRequest struct {
	Type types.RecordKind `json:"type" validate:"required"`
	IDs  []int64          `json:"ids" validate:"required,min=1"`
}

func (r *GenerateSPKRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if len(r.IDs) == 0 {
		return ierr.NewError("No IDs provided").
			WithHint("Select at least one record to generate work orders").
			Mark(ierr.ErrValidation)
	}
	return r.Type.Validate()
}

// SPKItem is one generated work order on the wire.
type SPKItem struct {
	SPKNumber   string           `json:"spk_number"`
	Data        any              `json:"data"`
	Type        types.RecordKind `json:"type"`
	GeneratedAt string           `json:"generated_at"`
}

// GenerateSPKResponse is the batch result.
type GenerateSPKResponse struct {
	SPKList []SPKItem `json:"spk_list"`
	Total   int       `json:"total"`
}
