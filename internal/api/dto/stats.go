package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tirtatarum/spk/internal/domain/record"
)

// StatsResponse carries the dashboard aggregates. Keys mirror what the
// dashboard consumes, so counts keyed by KET stay raw status strings.
type StatsResponse struct {
	TotalPenyegelan int64 `json:"total_penyegelan"`
	TotalPencabutan int64 `json:"total_pencabutan"`
	TotalAll        int64 `json:"total_all"`

	PenyegelanByKet []record.StatusCount `json:"penyegelan_by_ket"`
	PencabutanByKet []record.StatusCount `json:"pencabutan_by_ket"`

	TotalTunggakanPenyegelan decimal.Decimal `json:"total_tunggakan_penyegelan"`
	TotalTunggakanPencabutan decimal.Decimal `json:"total_tunggakan_pencabutan"`
	TotalTunggakanAll        decimal.Decimal `json:"total_tunggakan_all"`
}
