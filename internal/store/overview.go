package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"organizame.app/api/core/db/sqlc"
	"organizame.app/api/internal/model"
)

type overviewStore struct {
	queries *sqlc.Queries
}

func newOverviewStore(queries *sqlc.Queries) OverviewStore {
	return &overviewStore{queries: queries}
}

func (s *overviewStore) ListForOwner(ctx context.Context, ownerUID string, from, to time.Time) ([]model.TaskOverview, error) {
	rows, err := s.queries.ListOverviewTasksForOwner(ctx, sqlc.ListOverviewTasksForOwnerParams{
		OwnerUid:  ownerUID,
		DueDate:   pgtype.Date{Time: from, Valid: true},
		DueDate_2: pgtype.Date{Time: to, Valid: true},
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.TaskOverview, len(rows))
	for i, row := range rows {
		result[i] = model.TaskOverview{
			ID:            row.ID,
			Title:         row.Title,
			DueDate:       fromDate(row.DueDate),
			StageID:       row.StageID,
			StageName:     row.StageName,
			BoardID:       row.BoardID,
			BoardName:     row.BoardName,
			WorkspaceID:   row.WorkspaceID,
			WorkspaceName: row.WorkspaceName,
		}
	}
	return result, nil
}
