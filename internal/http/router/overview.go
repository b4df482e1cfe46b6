package router

import (
	"github.com/gin-gonic/gin"

	"organizame.app/api/internal/http/handler"
)

func OverviewRouter(rg *gin.RouterGroup, h *handler.OverviewHandler) {
	rg.GET("", h.List)
}
