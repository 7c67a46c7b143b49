package types

import (
	ierr "github.com/tirtatarum/spk/internal/errors"
)

// RecordKind identifies which of the two enforcement record classes a value
// belongs to. The wire values match the original table names.
type RecordKind string

const (
	RecordKindPenyegelan RecordKind = "penyegelan"
	RecordKindPencabutan RecordKind = "pencabutan"
)

func (k RecordKind) String() string {
	return string(k)
}

func (k RecordKind) Validate() error {
	switch k {
	case RecordKindPenyegelan, RecordKindPencabutan:
		return nil
	default:
		return ierr.NewError("invalid record kind").
			WithHintf("Invalid type: %s", k).
			WithReportableDetails(map[string]any{
				"type":    k,
				"allowed": []RecordKind{RecordKindPenyegelan, RecordKindPencabutan},
			}).
			Mark(ierr.ErrValidation)
	}
}

// Title returns the printed work-order title for the record kind.
func (k RecordKind) Title() string {
	if k == RecordKindPencabutan {
		return "SURAT PERINTAH KERJA PENCABUTAN"
	}
	return "SURAT PERINTAH KERJA PENYEGELAN"
}

// IntroSentence returns the class-specific instruction sentence used on the
// printed work order.
func (k RecordKind) IntroSentence() string {
	if k == RecordKindPencabutan {
		return "Untuk melaksanakan pekerjaan PENCABUTAN sambungan pelanggan"
	}
	return "Untuk melaksanakan pekerjaan PENYEGELAN sambungan pelanggan"
}
