package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	statsUC "github.com/trannb/jobtrackr/internal/application/usecase/stats"
	appdomain "github.com/trannb/jobtrackr/internal/domain/application"
)

type StatsHandler struct {
	statsUseCase *statsUC.StatsUseCase
}

func NewStatsHandler(uc *statsUC.StatsUseCase) *StatsHandler {
	return &StatsHandler{statsUseCase: uc}
}

func (h *StatsHandler) Summary(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	output, err := h.statsUseCase.Summary(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output)
}

func (h *StatsHandler) Timeline(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	grouping := appdomain.Grouping(c.DefaultQuery("group_by", string(appdomain.GroupByDay)))

	buckets, err := h.statsUseCase.Timeline(c.Request.Context(), userID, grouping)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"group_by": grouping, "buckets": buckets})
}

func (h *StatsHandler) StatusByType(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user information not found"})
		return
	}

	rows, err := h.statsUseCase.StatusByType(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows})
}
