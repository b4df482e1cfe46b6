package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"organizame.app/api/internal/http/dto"
	"organizame.app/api/internal/http/middleware"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/service"
)

const defaultTagColor = "#3B82F6"

type TagHandler struct {
	tagService service.TagService
}

func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	color := req.Color
	if color == "" {
		color = defaultTagColor
	}

	tag, err := h.tagService.Create(ctx, middleware.GetOwnerUID(ctx), req.WorkspaceID, req.Name, color)
	if err != nil {
		respondError(c, err, "create tag")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTagResponse(tag))
}

func (h *TagHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := queryID(c, "workspace_id")
	if !ok {
		return
	}

	tags, err := h.tagService.List(ctx, middleware.GetOwnerUID(ctx), workspaceID)
	if err != nil {
		respondError(c, err, "list tags")
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponses(tags))
}

func (h *TagHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tag, err := h.tagService.Get(ctx, id, middleware.GetOwnerUID(ctx))
	if err != nil {
		respondError(c, err, "get tag")
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponse(tag))
}

func (h *TagHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	patch := model.TagPatch{
		Name:  req.Name,
		Color: req.Color,
	}

	if _, err := h.tagService.Update(ctx, id, middleware.GetOwnerUID(ctx), patch); err != nil {
		respondError(c, err, "update tag")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *TagHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.tagService.Delete(ctx, id, middleware.GetOwnerUID(ctx)); err != nil {
		respondError(c, err, "delete tag")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
