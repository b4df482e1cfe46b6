package service

import (
	"context"
	"fmt"
	"log/slog"

	"organizame.app/api/common/id"
	"organizame.app/api/internal/model"
	"organizame.app/api/internal/store"
)

// defaultStages are created with every new board so it is usable immediately.
var defaultStages = []model.Stage{
	{Name: "a_fazer", Position: 0, Color: "#6B7280"},
	{Name: "fazendo", Position: 1, Color: "#F59E0B"},
	{Name: "concluido", Position: 2, Color: "#10B981"},
}

type BoardService interface {
	Create(ctx context.Context, ownerUID string, workspaceID int64, name string, position int32) (*model.Board, error)
	Get(ctx context.Context, id int64, ownerUID string) (*model.Board, error)
	List(ctx context.Context, ownerUID string, workspaceID *int64) ([]model.Board, error)
	Update(ctx context.Context, id int64, ownerUID string, patch model.BoardPatch) (*model.Board, error)
	Delete(ctx context.Context, id int64, ownerUID string) error
}

type boardService struct {
	boardStore store.BoardStore
	txRunner   TxRunner
}

func NewBoardService(boardStore store.BoardStore, txRunner TxRunner) BoardService {
	return &boardService{boardStore: boardStore, txRunner: txRunner}
}

// Create inserts the board and its default stages in one transaction.
// A board is never visible without its three starting stages.
func (s *boardService) Create(ctx context.Context, ownerUID string, workspaceID int64, name string, position int32) (*model.Board, error) {
	board := &model.Board{
		ID:          id.New(),
		Name:        name,
		WorkspaceID: workspaceID,
		Position:    position,
	}

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Workspaces().GetForOwner(ctx, workspaceID, ownerUID); err != nil {
			return err
		}

		if err := stores.Boards().Create(ctx, board); err != nil {
			return fmt.Errorf("creating board: %w", err)
		}

		for _, tmpl := range defaultStages {
			stage := &model.Stage{
				ID:       id.New(),
				Name:     tmpl.Name,
				BoardID:  board.ID,
				Position: tmpl.Position,
				Color:    tmpl.Color,
			}
			if err := stores.Stages().Create(ctx, stage); err != nil {
				return fmt.Errorf("creating default stage %q: %w", tmpl.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "board created", "board_id", board.ID, "workspace_id", workspaceID)
	return board, nil
}

func (s *boardService) Get(ctx context.Context, id int64, ownerUID string) (*model.Board, error) {
	return s.boardStore.GetForOwner(ctx, id, ownerUID)
}

func (s *boardService) List(ctx context.Context, ownerUID string, workspaceID *int64) ([]model.Board, error) {
	if workspaceID != nil {
		return s.boardStore.ListByWorkspaceForOwner(ctx, *workspaceID, ownerUID)
	}
	return s.boardStore.ListForOwner(ctx, ownerUID)
}

func (s *boardService) Update(ctx context.Context, id int64, ownerUID string, patch model.BoardPatch) (*model.Board, error) {
	var updated *model.Board

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		board, err := stores.Boards().GetForOwner(ctx, id, ownerUID)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			board.Name = *patch.Name
		}
		if patch.Position != nil {
			board.Position = *patch.Position
		}

		if err := stores.Boards().Update(ctx, board); err != nil {
			return fmt.Errorf("updating board: %w", err)
		}

		updated = board
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *boardService) Delete(ctx context.Context, id int64, ownerUID string) error {
	return s.boardStore.DeleteForOwner(ctx, id, ownerUID)
}
