package record

import (
	"github.com/shopspring/decimal"

	"github.com/tirtatarum/spk/internal/types"
)

// Record is the shared capability of the two enforcement record classes.
// Numbering, aggregation, the working-set view and the document composer all
// operate on this interface; only the printed section data branches per kind.
type Record interface {
	// RecordID is the store-assigned row identity. The store is
	// authoritative: this engine never invents or deletes identities.
	RecordID() int64
	DisplayName() string
	StatusTag() string
	// Amount is the monetary magnitude used for sums and amount sorting:
	// the combined total due for seal notices, the overdue amount for
	// revocation notices.
	Amount() decimal.Decimal
	Kind() types.RecordKind
}

// SealRecord is a service-seal notice ("penyegelan") for a delinquent
// connection.
type SealRecord struct {
	ID            int64           `db:"id" json:"id"`
	SeqNo         *int            `db:"no" json:"no"`
	Date          string          `db:"tanggal" json:"tanggal"`
	CustomerNo    string          `db:"nomor_pelanggan" json:"nomor_pelanggan"`
	Name          string          `db:"nama" json:"nama"`
	MonthsOverdue int             `db:"jumlah_bln" json:"jumlah_bln"`
	BilledTotal   decimal.Decimal `db:"total_rek" json:"total_rek"`
	Penalty       decimal.Decimal `db:"denda" json:"denda"`
	TotalDue      decimal.Decimal `db:"jumlah" json:"jumlah"`
	Ket           string          `db:"ket" json:"ket"`
}

func (r *SealRecord) RecordID() int64         { return r.ID }
func (r *SealRecord) DisplayName() string     { return r.Name }
func (r *SealRecord) StatusTag() string       { return r.Ket }
func (r *SealRecord) Amount() decimal.Decimal { return r.TotalDue }
func (r *SealRecord) Kind() types.RecordKind  { return types.RecordKindPenyegelan }

// Reconciled reports whether the stored total matches billed plus penalty.
func (r *SealRecord) Reconciled() bool {
	return r.TotalDue.Equal(r.BilledTotal.Add(r.Penalty))
}

// Reconcile normalizes the total to billed plus penalty. Rows imported from
// the field spreadsheets occasionally disagree; the sum wins.
func (r *SealRecord) Reconcile() {
	r.TotalDue = r.BilledTotal.Add(r.Penalty)
}

// RevocationRecord is a service-revocation notice ("pencabutan") for a
// connection being permanently disconnected.
type RevocationRecord struct {
	ID            int64           `db:"id" json:"id"`
	SeqNo         int             `db:"no" json:"no"`
	ConnectionNo  string          `db:"no_samb" json:"no_samb"`
	Name          string          `db:"nama" json:"nama"`
	Address       string          `db:"alamat" json:"alamat"`
	OverduePeriod string          `db:"total_tunggakan" json:"total_tunggakan"`
	OverdueAmount decimal.Decimal `db:"jumlah_tunggakan" json:"jumlah_tunggakan"`
	Ket           string          `db:"ket" json:"ket"`
}

func (r *RevocationRecord) RecordID() int64         { return r.ID }
func (r *RevocationRecord) DisplayName() string     { return r.Name }
func (r *RevocationRecord) StatusTag() string       { return r.Ket }
func (r *RevocationRecord) Amount() decimal.Decimal { return r.OverdueAmount }
func (r *RevocationRecord) Kind() types.RecordKind  { return types.RecordKindPencabutan }

// Field allow-lists for partial updates. Keys are the wire field names;
// anything else in an update payload is silently dropped.
var (
	SealUpdatableFields = []string{
		"no", "tanggal", "nomor_pelanggan", "nama",
		"jumlah_bln", "total_rek", "denda", "jumlah", "ket",
	}
	RevocationUpdatableFields = []string{
		"no", "no_samb", "nama", "alamat",
		"total_tunggakan", "jumlah_tunggakan", "ket",
	}
)
