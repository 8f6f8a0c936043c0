package ports

import "context"

// GitService is the commit sink: the user's local repository.
type GitService interface {
	StageAll(ctx context.Context) error
	HasChanges(ctx context.Context) (bool, error)
	HasStagedChanges(ctx context.Context) (bool, error)
	CreateCommit(ctx context.Context, message string, sign bool) error
}
