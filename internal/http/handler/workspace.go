package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"organizame.app/api/internal/http/dto"
	"organizame.app/api/internal/http/middleware"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/service"
)

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ws, err := h.workspaceService.Create(ctx, middleware.GetOwnerUID(ctx), req.Name, req.Description)
	if err != nil {
		respondError(c, err, "create workspace")
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	workspaces, err := h.workspaceService.List(ctx, middleware.GetOwnerUID(ctx))
	if err != nil {
		respondError(c, err, "list workspaces")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponses(workspaces))
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ws, err := h.workspaceService.Get(ctx, id, middleware.GetOwnerUID(ctx))
	if err != nil {
		respondError(c, err, "get workspace")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	patch := model.WorkspacePatch{
		Name:        req.Name,
		Description: req.Description,
	}

	if _, err := h.workspaceService.Update(ctx, id, middleware.GetOwnerUID(ctx), patch); err != nil {
		respondError(c, err, "update workspace")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.workspaceService.Delete(ctx, id, middleware.GetOwnerUID(ctx)); err != nil {
		respondError(c, err, "delete workspace")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
