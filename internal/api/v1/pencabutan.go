package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tirtatarum/spk/internal/api/dto"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/logger"
	"github.com/tirtatarum/spk/internal/service"
	"github.com/tirtatarum/spk/internal/types"
)

type PencabutanHandler struct {
	service service.RecordService
	logger  *logger.Logger
}

func NewPencabutanHandler(service service.RecordService, logger *logger.Logger) *PencabutanHandler {
	return &PencabutanHandler{service: service, logger: logger}
}

// @Summary List revocation notices
// @Router /pencabutan [get]
func (h *PencabutanHandler) List(c *gin.Context) {
	var req dto.ListRecordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	records, err := h.service.List(c.Request.Context(), types.RecordKindPencabutan, req.ToFilter())
	if err != nil {
		h.logger.Errorw("failed to list revocation notices", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(records))
}

// @Summary Get one revocation notice by id
// @Router /pencabutan/{id} [get]
func (h *PencabutanHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := h.service.Get(c.Request.Context(), types.RecordKindPencabutan, id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(rec))
}

// @Summary Partially update a revocation notice
// @Router /pencabutan/{id} [put]
func (h *PencabutanHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateRevocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.Update(c.Request.Context(), types.RecordKindPencabutan, id, req.ToFieldMap()); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.UpdateResult{Updated: true}))
}
