package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/types"
)

// Ensurer implements types.DirEnsurer on top of a types.FS
type Ensurer struct {
	fs types.FS
}

// NewEnsurer creates an Ensurer backed by the given filesystem
func NewEnsurer(fsys types.FS) *Ensurer {
	return &Ensurer{fs: fsys}
}

// EnsureDir creates path (and parents) unless it is already a directory
func (e *Ensurer) EnsureDir(path string) (types.EnsureResult, error) {
	if info, err := e.fs.Stat(path); err == nil {
		if info.IsDir() {
			return types.EnsureExisted, nil
		}
		return types.EnsureFailed, errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", path).
			WithDetail("path", path)
	}

	if err := e.fs.MkdirAll(path, fs.FileMode(0755)); err != nil {
		return types.EnsureFailed, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", path).
			WithDetail("path", path)
	}
	return types.EnsureCreated, nil
}
