package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"organizame.app/api/internal/http/dto"
	"organizame.app/api/internal/http/middleware"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/service"
)

type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

func (h *AttachmentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	att, err := h.attachmentService.Create(ctx, middleware.GetOwnerUID(ctx), req.TaskID, req.FileURL, req.FileName)
	if err != nil {
		respondError(c, err, "create attachment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttachmentResponse(att))
}

func (h *AttachmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := queryID(c, "task_id")
	if !ok {
		return
	}

	attachments, err := h.attachmentService.List(ctx, middleware.GetOwnerUID(ctx), taskID)
	if err != nil {
		respondError(c, err, "list attachments")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttachmentResponses(attachments))
}

func (h *AttachmentHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	att, err := h.attachmentService.Get(ctx, id, middleware.GetOwnerUID(ctx))
	if err != nil {
		respondError(c, err, "get attachment")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttachmentResponse(att))
}

func (h *AttachmentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	patch := model.AttachmentPatch{
		FileURL:  req.FileURL,
		FileName: req.FileName,
	}

	if _, err := h.attachmentService.Update(ctx, id, middleware.GetOwnerUID(ctx), patch); err != nil {
		respondError(c, err, "update attachment")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.attachmentService.Delete(ctx, id, middleware.GetOwnerUID(ctx)); err != nil {
		respondError(c, err, "delete attachment")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
