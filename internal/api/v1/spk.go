package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tirtatarum/spk/internal/api/dto"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/logger"
	"github.com/tirtatarum/spk/internal/service"
)

type SPKHandler struct {
	spkService service.SPKService
	pdfService service.PDFService
	logger     *logger.Logger
}

func NewSPKHandler(spkService service.SPKService, pdfService service.PDFService, logger *logger.Logger) *SPKHandler {
	return &SPKHandler{spkService: spkService, pdfService: pdfService, logger: logger}
}

// @Summary Generate a numbered work-order batch from selected records
// @Router /generate-spk [post]
func (h *SPKHandler) Generate(c *gin.Context) {
	var req dto.GenerateSPKRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.spkService.Generate(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("failed to generate work orders",
			"type", req.Type,
			"ids", len(req.IDs),
			"error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(resp))
}

// @Summary Generate a batch and render it as a printable PDF
// @Router /generate-spk/pdf [post]
func (h *SPKHandler) GeneratePDF(c *gin.Context) {
	var req dto.GenerateSPKRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	orders, err := h.spkService.GenerateOrders(c.Request.Context(), req.Type, req.IDs)
	if err != nil {
		c.Error(err)
		return
	}

	pdf, err := h.pdfService.RenderBatch(c.Request.Context(), orders)
	if err != nil {
		h.logger.Errorw("failed to render work order batch",
			"type", req.Type,
			"orders", len(orders),
			"error", err)
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("spk-%s-%s.pdf", req.Type, time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
