package router

import (
	"github.com/gin-gonic/gin"

	"organizame.app/api/internal/http/handler"
	"organizame.app/api/internal/http/middleware"
	"organizame.app/api/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.RequireAuth(services.Auth()))
	{
		workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces())
		WorkspaceRouter(api.Group("/workspaces"), workspaceHandler)

		boardHandler := handler.NewBoardHandler(services.Boards())
		stageHandler := handler.NewStageHandler(services.Stages())
		BoardRouter(api.Group("/boards"), boardHandler, stageHandler)

		taskHandler := handler.NewTaskHandler(services.Tasks())
		tagHandler := handler.NewTagHandler(services.Tags())
		subtaskHandler := handler.NewSubtaskHandler(services.Subtasks())
		attachmentHandler := handler.NewAttachmentHandler(services.Attachments())
		TaskRouter(api.Group("/tasks"), taskHandler, tagHandler, subtaskHandler, attachmentHandler)

		overviewHandler := handler.NewOverviewHandler(services.Overview())
		OverviewRouter(api.Group("/overview"), overviewHandler)
	}
}
