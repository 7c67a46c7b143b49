package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tirtatarum/spk/internal/api/dto"
	"github.com/tirtatarum/spk/internal/logger"
	"github.com/tirtatarum/spk/internal/service"
)

type StatsHandler struct {
	service service.StatsService
	logger  *logger.Logger
}

func NewStatsHandler(service service.StatsService, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{service: service, logger: logger}
}

// @Summary Dashboard aggregates for both record classes
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to compute stats", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(stats))
}
