package router

import (
	"github.com/gin-gonic/gin"

	"organizame.app/api/internal/http/handler"
)

// TaskRouter sets up task routes together with the tag, subtask and
// attachment resources that hang off the same prefix.
func TaskRouter(
	rg *gin.RouterGroup,
	tasks *handler.TaskHandler,
	tags *handler.TagHandler,
	subtasks *handler.SubtaskHandler,
	attachments *handler.AttachmentHandler,
) {
	rg.GET("/tags", tags.List)
	rg.POST("/tags", tags.Create)
	rg.GET("/tags/:id", tags.Get)
	rg.PUT("/tags/:id", tags.Update)
	rg.DELETE("/tags/:id", tags.Delete)

	rg.GET("/subtasks", subtasks.List)
	rg.POST("/subtasks", subtasks.Create)
	rg.GET("/subtasks/:id", subtasks.Get)
	rg.PUT("/subtasks/:id", subtasks.Update)
	rg.DELETE("/subtasks/:id", subtasks.Delete)

	rg.GET("/attachments", attachments.List)
	rg.POST("/attachments", attachments.Create)
	rg.GET("/attachments/:id", attachments.Get)
	rg.PUT("/attachments/:id", attachments.Update)
	rg.DELETE("/attachments/:id", attachments.Delete)

	rg.GET("", tasks.List)
	rg.POST("", tasks.Create)
	rg.GET("/:id", tasks.Get)
	rg.PUT("/:id", tasks.Update)
	rg.DELETE("/:id", tasks.Delete)
	rg.PATCH("/:id/move", tasks.Move)
	rg.GET("/:id/tags", tasks.ListTags)
	rg.POST("/:id/tags/:tag_id", tasks.AddTag)
	rg.DELETE("/:id/tags/:tag_id", tasks.RemoveTag)
}
