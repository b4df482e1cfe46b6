package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"organizame.app/api/internal/http/dto"
	"organizame.app/api/internal/http/middleware"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date"})
		return
	}

	task, err := h.taskService.Create(ctx, middleware.GetOwnerUID(ctx), service.CreateTaskInput{
		StageID:     req.StageID,
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		StartDate:   startDate,
		DueDate:     dueDate,
	})
	if err != nil {
		respondError(c, err, "create task")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(task))
}

func (h *TaskHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	stageID, ok := queryID(c, "stage_id")
	if !ok {
		return
	}

	tasks, err := h.taskService.List(ctx, middleware.GetOwnerUID(ctx), stageID)
	if err != nil {
		respondError(c, err, "list tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponses(tasks))
}

func (h *TaskHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(ctx, id, middleware.GetOwnerUID(ctx))
	if err != nil {
		respondError(c, err, "get task")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskResponse(task))
}

func (h *TaskHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date"})
		return
	}

	patch := model.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		StageID:     req.StageID,
		Position:    req.Position,
		StartDate:   startDate,
		DueDate:     dueDate,
	}

	if _, err := h.taskService.Update(ctx, id, middleware.GetOwnerUID(ctx), patch); err != nil {
		respondError(c, err, "update task")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *TaskHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(ctx, id, middleware.GetOwnerUID(ctx)); err != nil {
		respondError(c, err, "delete task")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *TaskHandler) Move(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	placement := model.TaskPlacement{
		StageID:  req.StageID,
		Position: *req.Position,
	}

	if _, err := h.taskService.Move(ctx, id, middleware.GetOwnerUID(ctx), placement); err != nil {
		respondError(c, err, "move task")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *TaskHandler) ListTags(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tags, err := h.taskService.ListTags(ctx, id, middleware.GetOwnerUID(ctx))
	if err != nil {
		respondError(c, err, "list task tags")
		return
	}

	c.JSON(http.StatusOK, dto.ToTagSummaryResponses(tags))
}

func (h *TaskHandler) AddTag(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tag_id")
	if !ok {
		return
	}

	if err := h.taskService.AddTag(ctx, taskID, tagID, middleware.GetOwnerUID(ctx)); err != nil {
		respondError(c, err, "add tag to task")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessMessage("tag added"))
}

func (h *TaskHandler) RemoveTag(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tag_id")
	if !ok {
		return
	}

	if err := h.taskService.RemoveTag(ctx, taskID, tagID, middleware.GetOwnerUID(ctx)); err != nil {
		respondError(c, err, "remove tag from task")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessMessage("tag removed"))
}
