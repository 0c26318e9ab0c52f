// Package opentemplates implements the "templates" command: make sure the
// effective template directory exists and open it as a new window.
package opentemplates

import (
	"github.com/arthur-debert/easyfile/pkg/config"
	"github.com/arthur-debert/easyfile/pkg/logging"
	"github.com/arthur-debert/easyfile/pkg/opener"
	"github.com/arthur-debert/easyfile/pkg/paths"
	"github.com/arthur-debert/easyfile/pkg/synthfs"
	"github.com/arthur-debert/easyfile/pkg/templates"
	"github.com/arthur-debert/easyfile/pkg/types"
)

// OpenTemplatesOptions defines the options for the OpenTemplates command.
type OpenTemplatesOptions struct {
	// Paths locates the workspace and global storage.
	Paths paths.Paths
	// Config holds the effective settings (optional, loaded from Paths when nil)
	Config *config.Config
	// Ensurer creates the directory (optional, defaults to synthfs)
	Ensurer types.DirEnsurer
	// Opener opens the directory (optional, defaults to the configured window command)
	Opener types.Opener
}

// OpenTemplatesResult describes the outcome of an OpenTemplates run
type OpenTemplatesResult struct {
	// Dir is the effective template directory
	Dir string
	// Custom is true when Dir comes from the templatesPath setting
	Custom bool
	// Ensure reports whether Dir was created, already existed or failed
	Ensure types.EnsureResult
	// EnsureErr is the reason Ensure failed, nil otherwise
	EnsureErr error
}

// OpenTemplates ensures the template directory exists and opens it. A
// failure to create the directory is recorded in the result and the open is
// still attempted; an open failure is returned.
func OpenTemplates(opts OpenTemplatesOptions) (*OpenTemplatesResult, error) {
	log := logging.GetLogger("commands.opentemplates")
	done := logging.LogOperationStart(log, "open-templates")
	defer done()

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(opts.Paths)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	result := &OpenTemplatesResult{
		Dir:    templates.Dir(cfg, opts.Paths),
		Custom: templates.IsCustom(cfg),
	}

	ensurer := opts.Ensurer
	if ensurer == nil {
		ensurer = synthfs.NewEnsurer()
	}
	result.Ensure, result.EnsureErr = ensurer.EnsureDir(result.Dir)
	if result.EnsureErr != nil {
		log.Warn().Err(result.EnsureErr).Str("path", result.Dir).Msg("Could not create templates directory")
	} else {
		log.Debug().Str("path", result.Dir).Str("ensure", result.Ensure.String()).Msg("Templates directory ready")
	}

	op := opts.Opener
	if op == nil {
		op = opener.New(cfg.Editor, cfg.WindowCommand)
	}
	if err := op.OpenFolder(result.Dir); err != nil {
		return result, err
	}
	return result, nil
}
