package createfile

import (
	"github.com/arthur-debert/easyfile/pkg/config"
	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/filesystem"
	"github.com/arthur-debert/easyfile/pkg/logging"
	"github.com/arthur-debert/easyfile/pkg/navigator"
	"github.com/arthur-debert/easyfile/pkg/opener"
	"github.com/arthur-debert/easyfile/pkg/paths"
	"github.com/arthur-debert/easyfile/pkg/templates"
	"github.com/arthur-debert/easyfile/pkg/types"
)

// NoWorkspaceMessage is shown when there is no workspace to create files in
const NoWorkspaceMessage = "No workspace folder open"

// CreateFileOptions defines the options for the CreateFile command.
type CreateFileOptions struct {
	// Paths locates the workspace and global storage.
	Paths paths.Paths
	// Config holds the effective settings (optional, loaded from Paths when nil)
	Config *config.Config
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
	// Prompter asks the user for folders and names.
	Prompter types.Prompter
	// Opener opens the created file (optional, defaults to the configured editor)
	Opener types.Opener
	// Ensurer creates the global template directory (optional)
	Ensurer types.DirEnsurer
}

// CreateFileResult describes the outcome of a CreateFile run
type CreateFileResult struct {
	// Cancelled is true when the user backed out before a file was written
	Cancelled bool
	// File is set when a file was written
	File *Materialized
}

// CreateFile runs the interactive create-file flow. A user cancellation is
// not an error; it yields a result with Cancelled set.
func CreateFile(opts CreateFileOptions) (*CreateFileResult, error) {
	log := logging.GetLogger("commands.createfile")
	done := logging.LogOperationStart(log, "create-file")
	defer done()

	if opts.Prompter == nil {
		return nil, errors.New(errors.ErrInternal, "create file requires a prompter")
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	root := opts.Paths.WorkspaceRoot()
	if info, err := fs.Stat(root); err != nil || !info.IsDir() {
		return nil, errors.New(errors.ErrNoWorkspace, NoWorkspaceMessage).WithDetail("path", root)
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(opts.Paths)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	ensurer := opts.Ensurer
	if ensurer == nil {
		ensurer = filesystem.NewEnsurer(fs)
	}
	if _, err := ensurer.EnsureDir(opts.Paths.GlobalTemplatesDir()); err != nil {
		log.Warn().Err(err).Str("path", opts.Paths.GlobalTemplatesDir()).Msg("Could not create global templates directory")
	}

	nav := navigator.New(fs, opts.Prompter, opts.Paths)
	dir, ok, err := nav.Pick(root)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &CreateFileResult{Cancelled: true}, nil
	}

	var name navigator.FileName
	for {
		name, err = navigator.AskFileName(opts.Prompter, dir)
		if err != nil {
			return nil, err
		}
		if !name.Cancelled {
			break
		}

		log.Debug().Msg("File name cancelled, back to folder selection")
		dir, ok, err = nav.Pick(root)
		if err != nil {
			return nil, err
		}
		if !ok {
			return &CreateFileResult{Cancelled: true}, nil
		}
	}

	op := opts.Opener
	if op == nil {
		op = opener.New(cfg.Editor, cfg.WindowCommand)
	}

	resolver := templates.NewResolver(fs, templates.Dir(cfg, opts.Paths))
	file, err := Materialize(fs, op, resolver, dir, name.Name)
	if err != nil {
		return &CreateFileResult{File: file}, err
	}
	return &CreateFileResult{File: file}, nil
}
