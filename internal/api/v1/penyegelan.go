package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tirtatarum/spk/internal/api/dto"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/logger"
	"github.com/tirtatarum/spk/internal/service"
	"github.com/tirtatarum/spk/internal/types"
)

type PenyegelanHandler struct {
	service service.RecordService
	logger  *logger.Logger
}

func NewPenyegelanHandler(service service.RecordService, logger *logger.Logger) *PenyegelanHandler {
	return &PenyegelanHandler{service: service, logger: logger}
}

// @Summary List seal notices
// @Router /penyegelan [get]
func (h *PenyegelanHandler) List(c *gin.Context) {
	var req dto.ListRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	records, err := h.service.List(c.Request.Context(), types.RecordKindPenyegelan, req.ToFilter())
	if err != nil {
		h.logger.Errorw("failed to list seal notices", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(records))
}

// @Summary Get one seal notice by id
// @Router /penyegelan/{id} [get]
func (h *PenyegelanHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := h.service.Get(c.Request.Context(), types.RecordKindPenyegelan, id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(rec))
}

// @Summary Partially update a seal notice
// @Router /penyegelan/{id} [put]
func (h *PenyegelanHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateSealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.Update(c.Request.Context(), types.RecordKindPenyegelan, id, req.ToFieldMap()); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.UpdateResult{Updated: true}))
}

// parseID reads the numeric id path parameter, pushing a validation error on
// failure.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid record id").
			Mark(ierr.ErrValidation))
		return 0, false
	}
	return id, true
}
