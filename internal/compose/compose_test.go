package compose

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirtatarum/spk/internal/domain/record"
	"github.com/tirtatarum/spk/internal/domain/spk"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/types"
)

func sealOrder(number string, rec *record.SealRecord) spk.WorkOrder {
	return spk.WorkOrder{
		Number:      number,
		Kind:        types.RecordKindPenyegelan,
		Record:      rec,
		GeneratedAt: time.Date(2026, time.May, 4, 12, 0, 0, 0, time.UTC),
	}
}

func TestComposeEmptyBatch(t *testing.T) {
	_, err := Compose(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestComposeSealOrder(t *testing.T) {
	doc, err := Compose(context.Background(), []spk.WorkOrder{
		sealOrder("SPK/05/2026/0001", &record.SealRecord{
			ID:            1,
			CustomerNo:    "PL-001",
			Name:          "Agus Salim",
			MonthsOverdue: 3,
			TotalDue:      decimal.NewFromInt(1234567),
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, "SPK Penyegelan - SPK/05/2026/0001", doc.Title)
	assert.Equal(t, "Surat Perintah Kerja Penyegelan", doc.Subject)
	assert.Equal(t, DocumentAuthor, doc.Author)
	require.Len(t, doc.Pages, 1)

	section := doc.Pages[0].Section
	assert.Equal(t, OrgName, section.OrgName)
	assert.Equal(t, "SURAT PERINTAH KERJA PENYEGELAN", section.Title)
	assert.Equal(t, "Nomor: SPK/05/2026/0001", section.Number)
	assert.Equal(t, FromParty, section.From)
	assert.Equal(t, ToParty, section.To)
	assert.Equal(t, ManagerName, section.ManagerName)
	assert.Equal(t, TechLabels, section.TechLabels)

	require.Len(t, section.Rows, 5)
	assert.Equal(t, Row{Label: "No pelanggan", Value: "PL-001"}, section.Rows[0])
	assert.Equal(t, Row{Label: "Nama", Value: "Agus Salim", Bold: true}, section.Rows[1])
	assert.Equal(t, Row{Label: DetailCaption, Italic: true}, section.Rows[2])
	assert.Equal(t, Row{Label: "Jumlah Bulan", Value: "3 Bulan"}, section.Rows[3])
	assert.Equal(t, Row{Label: "Jumlah Total", Value: "Rp 1.234.567"}, section.Rows[4])
}

func TestComposeRevocationOrder(t *testing.T) {
	doc, err := Compose(context.Background(), []spk.WorkOrder{{
		Number: "SPK/05/2026/0001",
		Kind:   types.RecordKindPencabutan,
		Record: &record.RevocationRecord{
			ID:            10,
			ConnectionNo:  "SB-010",
			Name:          "Dewi Lestari",
			OverduePeriod: "6",
			OverdueAmount: decimal.NewFromInt(320000),
		},
	}})
	require.NoError(t, err)

	assert.Equal(t, "Surat Perintah Kerja Pencabutan", doc.Subject)
	section := doc.Pages[0].Section
	assert.Equal(t, "SURAT PERINTAH KERJA PENCABUTAN", section.Title)

	require.Len(t, section.Rows, 5)
	assert.Equal(t, Row{Label: "Total Tunggakan", Value: "6 Bulan"}, section.Rows[3])
	assert.Equal(t, Row{Label: "Jumlah Tunggakan", Value: "Rp 320.000"}, section.Rows[4])
}

func TestComposeBatchTitleAndPageOrder(t *testing.T) {
	orders := []spk.WorkOrder{
		sealOrder("SPK/05/2026/0001", &record.SealRecord{ID: 1, Name: "Agus"}),
		sealOrder("SPK/05/2026/0002", &record.SealRecord{ID: 2, Name: "Budi"}),
		sealOrder("SPK/05/2026/0003", &record.SealRecord{ID: 3, Name: "Citra"}),
	}

	doc, err := Compose(context.Background(), orders)
	require.NoError(t, err)

	assert.Equal(t, "SPK Penyegelan - 3 item", doc.Title)
	require.Len(t, doc.Pages, 3)
	for i, page := range doc.Pages {
		assert.Equal(t, "Nomor: "+orders[i].Number, page.Section.Number)
	}
}

func TestComposeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Compose(ctx, []spk.WorkOrder{
		sealOrder("SPK/05/2026/0001", &record.SealRecord{ID: 1}),
	})
	require.Error(t, err)
	assert.True(t, ierr.IsPresentation(err))
}

func TestOverduePeriodNormalization(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"6", "6 Bulan"},
		{"6 bulan", "6 bulan"},
		{"6 Bulan", "6 Bulan"},
		{"  ", "-"},
		{"", "-"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, overduePeriod(tc.in), "input %q", tc.in)
	}
}
