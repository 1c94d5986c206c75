package api

import (
	"carteira/internal/domain"
	"context"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) getMetrics(c *gin.Context) {
	portfolioID, err := parseUuidParam(c, "portfolioId")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	profile := domain.NewPerformanceProfile()
	ctx := context.WithValue(c.Request.Context(), domain.ContextProfileKey, profile)

	metrics, err := h.MetricsService.GetMetrics(ctx, portfolioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, metrics)
}
