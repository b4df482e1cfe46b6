package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"organizame.app/api/internal/http/dto"
	"organizame.app/api/internal/http/middleware"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/service"
)

type OverviewHandler struct {
	overviewService service.OverviewService
}

func NewOverviewHandler(overviewService service.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewService: overviewService}
}

// List returns tasks across all boards whose due date falls in the
// requested period, plus tasks without a due date. Defaults to the
// current week.
func (h *OverviewHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	period := model.OverviewPeriod(c.DefaultQuery("period", "week"))
	if !period.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be day, week or month"})
		return
	}

	refDate := time.Now()
	if raw := c.Query("ref_date"); raw != "" {
		parsed, err := dto.ParseDate(&raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ref_date"})
			return
		}
		refDate = *parsed
	}

	tasks, err := h.overviewService.List(ctx, middleware.GetOwnerUID(ctx), period, refDate)
	if err != nil {
		respondError(c, err, "list overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewTaskResponses(tasks))
}
