package router

import (
	"github.com/gin-gonic/gin"

	"organizame.app/api/internal/http/handler"
)

// BoardRouter sets up board routes. Stage routes live under the same
// prefix, with the static /stages segment registered alongside /:id.
func BoardRouter(rg *gin.RouterGroup, boards *handler.BoardHandler, stages *handler.StageHandler) {
	rg.GET("/stages", stages.List)
	rg.POST("/stages", stages.Create)
	rg.GET("/stages/:id", stages.Get)
	rg.PUT("/stages/:id", stages.Update)
	rg.DELETE("/stages/:id", stages.Delete)

	rg.GET("", boards.List)
	rg.POST("", boards.Create)
	rg.GET("/:id", boards.Get)
	rg.PUT("/:id", boards.Update)
	rg.DELETE("/:id", boards.Delete)
}
