package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for a puzzle project.
// All fields are pre-computed strings: zero-alloc access after construction.
type Paths struct {
	Project string // project root
	Root    string // .advent/
	DB      string // .advent/answers.db
	Config  string // .advent/config.yaml
	Env     string // .env
	Input   string // input/ (default input directory)
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".advent")
	return &Paths{
		Project: projectRoot,
		Root:    root,
		DB:      filepath.Join(root, "answers.db"),
		Config:  filepath.Join(root, "config.yaml"),
		Env:     filepath.Join(projectRoot, ".env"),
		Input:   filepath.Join(projectRoot, "input"),
	}
}

// EnsureDirs creates the .advent/ directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.Root, 0755)
}

// Resolve makes a possibly relative path absolute against the project root.
func (p *Paths) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Project, path)
}
