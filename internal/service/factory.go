package service

import (
	"organizame.app/api/core/config"
	"organizame.app/api/internal/store"
)

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	authCfg  config.AuthConfig
}

func NewServices(stores *store.Stores, txRunner TxRunner, authCfg config.AuthConfig) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		authCfg:  authCfg,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.authCfg)
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.stores.Workspaces(), s.txRunner)
}

func (s *Services) Boards() BoardService {
	return NewBoardService(s.stores.Boards(), s.txRunner)
}

func (s *Services) Stages() StageService {
	return NewStageService(s.stores.Stages(), s.txRunner)
}

func (s *Services) Tasks() TaskService {
	return NewTaskService(s.stores.Tasks(), s.txRunner)
}

func (s *Services) Tags() TagService {
	return NewTagService(s.stores.Tags(), s.txRunner)
}

func (s *Services) Subtasks() SubtaskService {
	return NewSubtaskService(s.stores.Subtasks(), s.txRunner)
}

func (s *Services) Attachments() AttachmentService {
	return NewAttachmentService(s.stores.Attachments(), s.txRunner)
}

func (s *Services) Overview() OverviewService {
	return NewOverviewService(s.stores.Overview())
}
