package gitinfo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Repo implements domain.GitInfo using go-git. Paths may point at a file or a
// directory anywhere inside a work tree.
type Repo struct{}

func New() *Repo {
	return &Repo{}
}

// CommitHash returns the HEAD commit of the repository containing path.
func (g *Repo) CommitHash(path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// Tracked reports whether path sits inside a git work tree.
func (g *Repo) Tracked(path string) bool {
	_, err := open(path)
	return err == nil
}

func open(path string) (*git.Repository, error) {
	dir := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		dir = filepath.Dir(path)
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repo for %s: %w", path, err)
	}
	return repo, nil
}
