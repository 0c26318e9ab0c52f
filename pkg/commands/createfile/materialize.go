package createfile

import (
	"path/filepath"

	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/logging"
	"github.com/arthur-debert/easyfile/pkg/templates"
	"github.com/arthur-debert/easyfile/pkg/types"
)

// Materialized describes a written file
type Materialized struct {
	Path string
	// Template is the template file the content came from, empty when the
	// file was created empty
	Template string
	Bytes    int
	// Opened is false when the file was written but could not be opened
	Opened bool
}

// Materialize writes dir/name seeded from the template for its extension,
// replacing any existing file, then opens it.
func Materialize(fsys types.FS, op types.Opener, resolver *templates.Resolver, dir, name string) (*Materialized, error) {
	log := logging.GetLogger("commands.createfile")

	ext := templates.Extension(name)
	content := resolver.Resolve(ext)
	path := filepath.Join(dir, name)

	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).WithDetail("path", path)
	}

	file := &Materialized{Path: path, Bytes: len(content)}
	if content != "" {
		file.Template = filepath.Join(resolver.Dir(), templates.TemplateFileName(ext))
	}
	log.Info().
		Str("path", path).
		Str("extension", ext).
		Int("bytes", len(content)).
		Msg("File created")

	if err := op.OpenFile(path); err != nil {
		if errors.IsErrorCode(err, errors.ErrOpen) {
			return file, err
		}
		return file, errors.Wrapf(err, errors.ErrOpen, "failed to open %s", path).WithDetail("path", path)
	}
	file.Opened = true
	return file, nil
}
