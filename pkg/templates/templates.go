// Package templates locates the template used to seed a new file.
//
// A template is a file named "template" followed by the extension it serves
// ("template.vue" for ".vue" files, a bare "template" for files with no
// extension). Templates are read from exactly one directory: the configured
// templatesPath when set, otherwise the templates folder in global storage.
package templates

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/easyfile/pkg/config"
	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/logging"
	"github.com/arthur-debert/easyfile/pkg/types"
	"github.com/rs/zerolog"
)

// FilePrefix is the base name shared by every template file
const FilePrefix = "template"

// TemplateFileName returns the template file name for an extension
// including its leading dot, or "" for no extension.
func TemplateFileName(ext string) string {
	return FilePrefix + ext
}

// Extension returns the extension of a file name including the dot. A base
// name made of a leading dot and a word (".gitignore") has no extension.
func Extension(name string) string {
	base := filepath.Base(name)
	if strings.Trim(base, ".") == "" {
		return ""
	}
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return ext
}

// Dir returns the effective template directory. A relative templatesPath
// is taken relative to the workspace root.
func Dir(cfg *config.Config, p types.Pather) string {
	if cfg != nil && cfg.TemplatesPath != "" {
		if filepath.IsAbs(cfg.TemplatesPath) {
			return filepath.Clean(cfg.TemplatesPath)
		}
		return filepath.Join(p.WorkspaceRoot(), cfg.TemplatesPath)
	}
	return p.GlobalTemplatesDir()
}

// IsCustom reports whether cfg overrides the global template directory
func IsCustom(cfg *config.Config) bool {
	return cfg != nil && cfg.TemplatesPath != ""
}

// Resolver reads template content from a single directory
type Resolver struct {
	fs     types.FS
	dir    string
	logger zerolog.Logger
}

// NewResolver creates a Resolver reading from dir
func NewResolver(fsys types.FS, dir string) *Resolver {
	return &Resolver{
		fs:     fsys,
		dir:    dir,
		logger: logging.GetLogger("templates"),
	}
}

// Dir returns the directory templates are read from
func (r *Resolver) Dir() string {
	return r.dir
}

// Resolve returns the template content for ext, or "" when no template can
// be read. It never fails.
func (r *Resolver) Resolve(ext string) string {
	path := filepath.Join(r.dir, TemplateFileName(ext))
	data, err := r.fs.ReadFile(path)
	if err != nil {
		r.logger.Debug().Err(err).Str("path", path).Msg("No template, using empty content")
		return ""
	}
	r.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Template resolved")
	return string(data)
}

// Template describes a template file found in a directory
type Template struct {
	Name      string
	Path      string
	Extension string
	Size      int64
}

// Serves returns a human label for the extension a template applies to
func (t Template) Serves() string {
	if t.Extension == "" {
		return "(no extension)"
	}
	return t.Extension
}

// List returns the templates in dir sorted by name. A missing directory
// holds no templates.
func List(fsys types.FS, dir string) ([]Template, error) {
	if _, err := fsys.Stat(dir); err != nil {
		return nil, nil
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirList, "failed to list templates in %s", dir).
			WithDetail("path", dir)
	}

	var found []Template
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext, ok := templateExtension(name)
		if !ok {
			continue
		}

		t := Template{
			Name:      name,
			Path:      filepath.Join(dir, name),
			Extension: ext,
		}
		if info, err := entry.Info(); err == nil {
			t.Size = info.Size()
		}
		found = append(found, t)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found, nil
}

// templateExtension returns the extension served by a template file name
func templateExtension(name string) (string, bool) {
	if !strings.HasPrefix(name, FilePrefix) {
		return "", false
	}
	ext := strings.TrimPrefix(name, FilePrefix)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		return "", false
	}
	return ext, true
}
