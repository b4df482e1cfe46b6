package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"organizame.app/api/internal/http/dto"
	"organizame.app/api/internal/http/middleware"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/service"
)

const defaultStageColor = "#6B7280"

type StageHandler struct {
	stageService service.StageService
}

func NewStageHandler(stageService service.StageService) *StageHandler {
	return &StageHandler{stageService: stageService}
}

func (h *StageHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	color := req.Color
	if color == "" {
		color = defaultStageColor
	}

	stage, err := h.stageService.Create(ctx, middleware.GetOwnerUID(ctx), req.BoardID, req.Name, req.Position, color)
	if err != nil {
		respondError(c, err, "create stage")
		return
	}

	c.JSON(http.StatusCreated, dto.ToStageResponse(stage))
}

func (h *StageHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	boardID, ok := queryID(c, "board_id")
	if !ok {
		return
	}

	stages, err := h.stageService.List(ctx, middleware.GetOwnerUID(ctx), boardID)
	if err != nil {
		respondError(c, err, "list stages")
		return
	}

	c.JSON(http.StatusOK, dto.ToStageResponses(stages))
}

func (h *StageHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	stage, err := h.stageService.Get(ctx, id, middleware.GetOwnerUID(ctx))
	if err != nil {
		respondError(c, err, "get stage")
		return
	}

	c.JSON(http.StatusOK, dto.ToStageResponse(stage))
}

func (h *StageHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	patch := model.StagePatch{
		Name:     req.Name,
		Position: req.Position,
		Color:    req.Color,
	}

	if _, err := h.stageService.Update(ctx, id, middleware.GetOwnerUID(ctx), patch); err != nil {
		respondError(c, err, "update stage")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *StageHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.stageService.Delete(ctx, id, middleware.GetOwnerUID(ctx)); err != nil {
		respondError(c, err, "delete stage")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
