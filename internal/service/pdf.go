package service

import (
	"context"
	"encoding/json"

	"github.com/tirtatarum/spk/internal/compose"
	"github.com/tirtatarum/spk/internal/domain/spk"
	ierr "github.com/tirtatarum/spk/internal/errors"
)

// PDFService renders work-order batches to printable PDFs.
type PDFService interface {
	RenderBatch(ctx context.Context, orders []spk.WorkOrder) ([]byte, error)
}

type pdfService struct {
	ServiceParams
}

func NewPDFService(params ServiceParams) PDFService {
	return &pdfService{ServiceParams: params}
}

func (s *pdfService) RenderBatch(ctx context.Context, orders []spk.WorkOrder) ([]byte, error) {
	doc, err := compose.Compose(ctx, orders)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to encode document data").
			WithHint("Failed to stage document data. The generated work orders are kept; retry the export.").
			Mark(ierr.ErrPresentation)
	}

	pdf, err := s.Compiler.CompileTemplate(s.Config.Pdf.Template, data)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("rendered work order batch",
		"pages", len(doc.Pages),
		"bytes", len(pdf))
	return pdf, nil
}
