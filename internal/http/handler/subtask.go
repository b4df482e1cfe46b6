package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"organizame.app/api/internal/http/dto"
	"organizame.app/api/internal/http/middleware"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/service"
)

type SubtaskHandler struct {
	subtaskService service.SubtaskService
}

func NewSubtaskHandler(subtaskService service.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{subtaskService: subtaskService}
}

func (h *SubtaskHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	sub, err := h.subtaskService.Create(ctx, middleware.GetOwnerUID(ctx), req.TaskID, req.Title, req.IsCompleted, req.Position)
	if err != nil {
		respondError(c, err, "create subtask")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubtaskResponse(sub))
}

func (h *SubtaskHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := queryID(c, "task_id")
	if !ok {
		return
	}

	subtasks, err := h.subtaskService.List(ctx, middleware.GetOwnerUID(ctx), taskID)
	if err != nil {
		respondError(c, err, "list subtasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubtaskResponses(subtasks))
}

func (h *SubtaskHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	sub, err := h.subtaskService.Get(ctx, id, middleware.GetOwnerUID(ctx))
	if err != nil {
		respondError(c, err, "get subtask")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubtaskResponse(sub))
}

func (h *SubtaskHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	patch := model.SubtaskPatch{
		Title:       req.Title,
		IsCompleted: req.IsCompleted,
		Position:    req.Position,
	}

	if _, err := h.subtaskService.Update(ctx, id, middleware.GetOwnerUID(ctx), patch); err != nil {
		respondError(c, err, "update subtask")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *SubtaskHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.subtaskService.Delete(ctx, id, middleware.GetOwnerUID(ctx)); err != nil {
		respondError(c, err, "delete subtask")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
