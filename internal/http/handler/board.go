package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"organizame.app/api/internal/http/dto"
	"organizame.app/api/internal/http/middleware"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

func (h *BoardHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	board, err := h.boardService.Create(ctx, middleware.GetOwnerUID(ctx), req.WorkspaceID, req.Name, req.Position)
	if err != nil {
		respondError(c, err, "create board")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBoardResponse(board))
}

func (h *BoardHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := queryID(c, "workspace_id")
	if !ok {
		return
	}

	boards, err := h.boardService.List(ctx, middleware.GetOwnerUID(ctx), workspaceID)
	if err != nil {
		respondError(c, err, "list boards")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardResponses(boards))
}

func (h *BoardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	board, err := h.boardService.Get(ctx, id, middleware.GetOwnerUID(ctx))
	if err != nil {
		respondError(c, err, "get board")
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardResponse(board))
}

func (h *BoardHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	patch := model.BoardPatch{
		Name:     req.Name,
		Position: req.Position,
	}

	if _, err := h.boardService.Update(ctx, id, middleware.GetOwnerUID(ctx), patch); err != nil {
		respondError(c, err, "update board")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *BoardHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.boardService.Delete(ctx, id, middleware.GetOwnerUID(ctx)); err != nil {
		respondError(c, err, "delete board")
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
