package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/Spiderpig86/gittr/internal/domain/ports"
	apperrors "github.com/Spiderpig86/gittr/internal/errors"
	"github.com/Spiderpig86/gittr/internal/logger"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

var _ ports.GitService = (*GitService)(nil)

// GitService stages through go-git and commits through the git binary, so
// hooks, signing and the user's identity behave exactly like `git commit`.
type GitService struct {
	dir string
}

func NewGitService(dir string) *GitService {
	return &GitService{dir: dir}
}

func (s *GitService) open() (*gogit.Repository, *gogit.Worktree, error) {
	repo, err := gogit.PlainOpenWithOptions(s.dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, nil, apperrors.ErrNotInGitRepo.WithContext("dir", s.dir)
		}
		return nil, nil, apperrors.ErrNotInGitRepo.WithError(err).WithContext("dir", s.dir)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, nil, apperrors.ErrNotInGitRepo.WithError(err).WithContext("dir", s.dir)
	}
	return repo, wt, nil
}

// StageAll is `git add --all` from the worktree root. Besides the
// repository's own ignore files, the user's core.excludesfile and the system
// one are honoured.
func (s *GitService) StageAll(ctx context.Context) error {
	_, wt, err := s.open()
	if err != nil {
		return err
	}

	wt.Excludes = append(wt.Excludes, userExcludes(ctx)...)

	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return apperrors.ErrStageAll.WithError(err)
	}

	logger.Debug(ctx, "staged all changes", "root", wt.Filesystem.Root())
	return nil
}

// userExcludes reads the system and global core.excludesfile patterns. An
// unreadable gitconfig only drops its own patterns.
func userExcludes(ctx context.Context) []gitignore.Pattern {
	root := osfs.New("/")

	var patterns []gitignore.Pattern
	// Global patterns come last so they take precedence.
	for _, src := range []struct {
		scope string
		load  func(billy.Filesystem) ([]gitignore.Pattern, error)
	}{
		{"system", gitignore.LoadSystemPatterns},
		{"global", gitignore.LoadGlobalPatterns},
	} {
		ps, err := src.load(root)
		if err != nil {
			logger.Debug(ctx, "skipping excludes", "scope", src.scope, "error", err)
			continue
		}
		patterns = append(patterns, ps...)
	}
	return patterns
}

// HasChanges reports whether `git add --all` would have anything to stage or
// the index already differs from HEAD.
func (s *GitService) HasChanges(ctx context.Context) (bool, error) {
	_, wt, err := s.open()
	if err != nil {
		return false, err
	}
	wt.Excludes = append(wt.Excludes, userExcludes(ctx)...)

	status, err := wt.Status()
	if err != nil {
		return false, apperrors.ErrGetStatus.WithError(err)
	}
	return !status.IsClean(), nil
}

// HasStagedChanges reports whether the index differs from HEAD.
func (s *GitService) HasStagedChanges(_ context.Context) (bool, error) {
	_, wt, err := s.open()
	if err != nil {
		return false, err
	}

	status, err := wt.Status()
	if err != nil {
		return false, apperrors.ErrGetStatus.WithError(err)
	}

	for _, fs := range status {
		if fs.Staging != gogit.Unmodified && fs.Staging != gogit.Untracked {
			return true, nil
		}
	}
	return false, nil
}

func (s *GitService) CreateCommit(ctx context.Context, message string, sign bool) error {
	_, wt, err := s.open()
	if err != nil {
		return err
	}

	staged, err := s.HasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if !staged {
		return apperrors.ErrNoChanges
	}

	args := []string{"commit", "-m", message}
	if sign {
		args = append(args, "-S")
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = wt.Filesystem.Root()
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debug(ctx, "running git commit", "sign", sign, "dir", cmd.Dir)
	if err := cmd.Run(); err != nil {
		return apperrors.ErrCreateCommit.WithError(err).
			WithContext("stderr", strings.TrimSpace(stderr.String()))
	}

	return nil
}
