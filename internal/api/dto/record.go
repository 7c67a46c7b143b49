package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tirtatarum/spk/internal/domain/record"
)

// ListRecordsRequest binds the shared list query parameters.
type ListRecordsRequest struct {
	Search string `form:"search"`
	Ket    string `form:"ket"`
}

func (r *ListRecordsRequest) ToFilter() record.ListFilter {
	return record.ListFilter{Search: r.Search, Ket: r.Ket}
}

// UpdateSealRequest is a partial update for a penyegelan row. Fields absent
// from the payload stay untouched; unknown JSON keys are dropped by binding.
type UpdateSealRequest struct {
	SeqNo         *int             `json:"no"`
	Date          *string          `json:"tanggal"`
	CustomerNo    *string          `json:"nomor_pelanggan"`
	Name          *string          `json:"nama"`
	MonthsOverdue *int             `json:"jumlah_bln"`
	BilledTotal   *decimal.Decimal `json:"total_rek"`
	Penalty       *decimal.Decimal `json:"denda"`
	TotalDue      *decimal.Decimal `json:"jumlah"`
	Ket           *string          `json:"ket"`
}

// ToFieldMap projects the set fields onto their column names.
func (r *UpdateSealRequest) ToFieldMap() map[string]any {
	fields := make(map[string]any)
	putField(fields, "no", r.SeqNo)
	putField(fields, "tanggal", r.Date)
	putField(fields, "nomor_pelanggan", r.CustomerNo)
	putField(fields, "nama", r.Name)
	putField(fields, "jumlah_bln", r.MonthsOverdue)
	putField(fields, "total_rek", r.BilledTotal)
	putField(fields, "denda", r.Penalty)
	putField(fields, "jumlah", r.TotalDue)
	putField(fields, "ket", r.Ket)
	return fields
}

// UpdateRevocationRequest is a partial update for a pencabutan row.
type UpdateRevocationRequest struct {
	SeqNo         *int             `json:"no"`
	ConnectionNo  *string          `json:"no_samb"`
	Name          *string          `json:"nama"`
	Address       *string          `json:"alamat"`
	OverduePeriod *string          `json:"total_tunggakan"`
	OverdueAmount *decimal.Decimal `json:"jumlah_tunggakan"`
	Ket           *string          `json:"ket"`
}

func (r *UpdateRevocationRequest) ToFieldMap() map[string]any {
	fields := make(map[string]any)
	putField(fields, "no", r.SeqNo)
	putField(fields, "no_samb", r.ConnectionNo)
	putField(fields, "nama", r.Name)
	putField(fields, "alamat", r.Address)
	putField(fields, "total_tunggakan", r.OverduePeriod)
	putField(fields, "jumlah_tunggakan", r.OverdueAmount)
	putField(fields, "ket", r.Ket)
	return fields
}

func putField[T any](fields map[string]any, name string, v *T) {
	if v != nil {
		fields[name] = *v
	}
}
