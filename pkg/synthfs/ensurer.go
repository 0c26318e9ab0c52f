// Package synthfs creates directories through a synthfs pipeline. It backs
// the template folder opener in production.
package synthfs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/logging"
	"github.com/arthur-debert/easyfile/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"
)

// DirMode is the permission used for created directories
const DirMode = fs.FileMode(0755)

// Ensurer implements types.DirEnsurer with synthfs
type Ensurer struct {
	logger     zerolog.Logger
	filesystem synthfs.FileSystem
}

// NewEnsurer creates an Ensurer operating on the root filesystem
func NewEnsurer() *Ensurer {
	return &Ensurer{
		logger:     logging.GetLogger("synthfs"),
		filesystem: filesystem.NewOSFileSystem("/"),
	}
}

// EnsureDir creates path and its parents unless path is already a directory
func (e *Ensurer) EnsureDir(path string) (types.EnsureResult, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return types.EnsureFailed, errors.Wrapf(err, errors.ErrInvalidInput, "invalid path %s", path)
	}

	if info, err := os.Stat(absPath); err == nil {
		if info.IsDir() {
			e.logger.Debug().Str("path", absPath).Msg("Directory already exists")
			return types.EnsureExisted, nil
		}
		return types.EnsureFailed, errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", absPath).
			WithDetail("path", absPath)
	}

	// synthfs works with paths relative to its root
	relPath, err := filepath.Rel("/", absPath)
	if err != nil {
		return types.EnsureFailed, errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", absPath)
	}

	opID := core.OperationID(fmt.Sprintf("create-dir-%s", absPath))
	createOp := operations.NewCreateDirectoryOperation(opID, relPath)
	createOp.SetItem(&directoryItem{
		path: relPath,
		mode: DirMode,
	})

	pipeline := synthfs.NewMemPipeline()
	if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(createOp)); err != nil {
		return types.EnsureFailed, errors.Wrapf(err, errors.ErrDirCreate, "failed to plan creation of %s", absPath)
	}

	result := synthfs.NewExecutor().Run(context.Background(), pipeline, e.filesystem)
	if result.GetError() != nil {
		e.logger.Error().Err(result.GetError()).Str("path", absPath).Msg("Directory creation failed")
		return types.EnsureFailed, errors.Wrapf(result.GetError(), errors.ErrDirCreate,
			"failed to create directory %s", absPath).WithDetail("path", absPath)
	}

	e.logger.Info().Str("path", absPath).Msg("Directory created")
	return types.EnsureCreated, nil
}

// directoryItem implements the interface needed for directory operations
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }

var _ types.DirEnsurer = (*Ensurer)(nil)
