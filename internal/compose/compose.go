// Package compose turns numbered work orders into the printable SPK
// document model. Composition is pure layout assembly; rendering to PDF is
// the typst compiler's job.
package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/tirtatarum/spk/internal/domain/record"
	"github.com/tirtatarum/spk/internal/domain/spk"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/types"
)

// Fixed document text. The branch office this system serves prints these on
// every work order.
const (
	OrgName    = "PERUSAHAAN UMUM DAERAH AIR MINUM"
	OrgRegion  = "TIRTA TARUM KABUPATEN KARAWANG"
	OrgAddress = "Jl. Surotokunto No.205 Karawang Timur"

	FromParty = "Manager Kotabaru"
	ToParty   = "Distribusi"

	IntroSuffix     = "sebagaimana data dibawah ini :"
	DetailCaption   = "Rincian tunggakan air / Non air"
	ClosingSentence = "Demikian untuk dilaksanakan dengan penuh tanggung jawab"

	CustomerSignLabel = "Tanda tangan Pelanggan"
	ManagerSignLabel  = "Manager Cabang Kotabaru"
	ManagerName       = "Endang Komara"
	OfficerSignLabel  = "Tanda tangan Petugas"

	SignPlaceholder = "(........................................)"

	DocumentAuthor  = "Tirta Tarum"
	DocumentCreator = "SPK Management System"
)

// TechLabels are the five technical-detail rows the field officer fills in
// by hand. Values are always printed empty.
var TechLabels = [5]string{
	"Merk Meter",
	"No Meter",
	"Stand Meter Segel",
	"No Segel",
	"Digit Meter",
}

// Row is one labelled line in the data block of a section.
type Row struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// Section is the full ordered field layout for one half of a physical page.
// A page prints the same section on both halves, split by a dashed guide
// line, so one A4 landscape sheet yields two identical documents.
type Section struct {
	OrgName    string `json:"org_name"`
	OrgRegion  string `json:"org_region"`
	OrgAddress string `json:"org_address"`

	Title  string `json:"title"`
	Number string `json:"number"`

	From string `json:"from"`
	To   string `json:"to"`

	Intro       string `json:"intro"`
	IntroSuffix string `json:"intro_suffix"`

	Rows []Row `json:"rows"`

	Closing    string    `json:"closing"`
	TechLabels [5]string `json:"tech_labels"`

	CustomerSignLabel string `json:"customer_sign_label"`
	ManagerSignLabel  string `json:"manager_sign_label"`
	ManagerName       string `json:"manager_name"`
	OfficerSignLabel  string `json:"officer_sign_label"`
	SignPlaceholder   string `json:"sign_placeholder"`
}

// Page holds the section printed on both halves of one sheet.
type Page struct {
	Section Section `json:"section"`
}

// Document is the renderable model for one print run.
type Document struct {
	Title   string `json:"title"`
	Subject string `json:"subject"`
	Author  string `json:"author"`
	Creator string `json:"creator"`
	Pages   []Page `json:"pages"`
}

// Compose builds the document model for a batch: one page per work order,
// each page carrying that order on both halves. Batch runs check for
// cancellation between pages so a long print job can be abandoned.
func Compose(ctx context.Context, orders []spk.WorkOrder) (*Document, error) {
	if len(orders) == 0 {
		return nil, ierr.NewError("nothing to compose").
			WithHint("No work orders selected").
			Mark(ierr.ErrValidation)
	}

	doc := &Document{
		Title:   documentTitle(orders),
		Subject: subjectFor(orders[0].Kind),
		Author:  DocumentAuthor,
		Creator: DocumentCreator,
		Pages:   make([]Page, 0, len(orders)),
	}

	for _, order := range orders {
		if err := ctx.Err(); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Document generation cancelled").
				Mark(ierr.ErrPresentation)
		}
		doc.Pages = append(doc.Pages, Page{Section: composeSection(order)})
	}
	return doc, nil
}

func composeSection(order spk.WorkOrder) Section {
	return Section{
		OrgName:    OrgName,
		OrgRegion:  OrgRegion,
		OrgAddress: OrgAddress,

		Title:  order.Kind.Title(),
		Number: fmt.Sprintf("Nomor: %s", order.Number),

		From: FromParty,
		To:   ToParty,

		Intro:       order.Kind.IntroSentence(),
		IntroSuffix: IntroSuffix,

		Rows: dataRows(order.Record),

		Closing:    ClosingSentence,
		TechLabels: TechLabels,

		CustomerSignLabel: CustomerSignLabel,
		ManagerSignLabel:  ManagerSignLabel,
		ManagerName:       ManagerName,
		OfficerSignLabel:  OfficerSignLabel,
		SignPlaceholder:   SignPlaceholder,
	}
}

// dataRows is the only place the composer branches on record class; the
// surrounding layout is identical for both.
func dataRows(rec record.Record) []Row {
	switch r := rec.(type) {
	case *record.SealRecord:
		return []Row{
			{Label: "No pelanggan", Value: r.CustomerNo},
			{Label: "Nama", Value: r.Name, Bold: true},
			{Label: DetailCaption, Italic: true},
			{Label: "Jumlah Bulan", Value: fmt.Sprintf("%d Bulan", r.MonthsOverdue)},
			{Label: "Jumlah Total", Value: types.FormatIDR(r.TotalDue)},
		}
	case *record.RevocationRecord:
		return []Row{
			{Label: "No pelanggan", Value: r.ConnectionNo},
			{Label: "Nama", Value: r.Name, Bold: true},
			{Label: DetailCaption, Italic: true},
			{Label: "Total Tunggakan", Value: overduePeriod(r.OverduePeriod)},
			{Label: "Jumlah Tunggakan", Value: types.FormatIDR(r.OverdueAmount)},
		}
	default:
		return nil
	}
}

// overduePeriod normalizes the free-text period descriptor for print. The
// source data mixes "3" and "3 bulan"; the printed row always reads as a
// month count.
func overduePeriod(period string) string {
	period = strings.TrimSpace(period)
	if period == "" {
		return "-"
	}
	if strings.Contains(strings.ToLower(period), "bulan") {
		return period
	}
	return period + " Bulan"
}

func documentTitle(orders []spk.WorkOrder) string {
	prefix := "SPK Penyegelan"
	if orders[0].Kind == types.RecordKindPencabutan {
		prefix = "SPK Pencabutan"
	}
	if len(orders) == 1 {
		return fmt.Sprintf("%s - %s", prefix, orders[0].Number)
	}
	return fmt.Sprintf("%s - %d item", prefix, len(orders))
}

func subjectFor(kind types.RecordKind) string {
	if kind == types.RecordKindPencabutan {
		return "Surat Perintah Kerja Pencabutan"
	}
	return "Surat Perintah Kerja Penyegelan"
}
