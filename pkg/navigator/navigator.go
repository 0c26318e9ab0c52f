package navigator

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/logging"
	"github.com/arthur-debert/easyfile/pkg/types"
	"github.com/rs/zerolog"
)

// PickTitle is shown above the navigation menu
const PickTitle = "Browse or select folder"

// NewFolderPrompt asks for the name of a folder to create
const NewFolderPrompt = "New folder name"

// Navigator walks directories below a workspace root
type Navigator struct {
	fs       types.FS
	prompter types.Prompter
	paths    types.Pather
	logger   zerolog.Logger
}

// New creates a Navigator bounded by the workspace root of pather. Up is
// not offered at the root.
func New(fsys types.FS, prompter types.Prompter, pather types.Pather) *Navigator {
	return &Navigator{
		fs:       fsys,
		prompter: prompter,
		paths:    pather,
		logger:   logging.GetLogger("navigator"),
	}
}

// Pick runs the navigation loop starting at start. It returns the confirmed
// directory, or ok=false when the user dismissed the menu.
func (n *Navigator) Pick(start string) (string, bool, error) {
	current := filepath.Clean(start)

	for {
		folders, err := ListFolders(n.fs, current)
		if err != nil {
			return "", false, err
		}

		menu := BuildMenu(current, folders, n.paths.IsWorkspaceRoot(current))
		index, ok, err := n.prompter.Select(PickTitle, Options(menu))
		if err != nil {
			return "", false, err
		}
		if !ok {
			n.logger.Debug().Str("dir", current).Msg("Navigation cancelled")
			return "", false, nil
		}
		if index < 0 || index >= len(menu) {
			return "", false, errors.Newf(errors.ErrPrompt, "selection %d out of range", index)
		}

		next, done, err := n.dispatch(current, menu[index])
		if err != nil {
			return "", false, err
		}
		if done {
			n.logger.Debug().Str("dir", next).Msg("Folder confirmed")
			return next, true, nil
		}
		current = next
	}
}

// dispatch applies a menu choice to current. It returns the next current
// directory, and done=true when the choice confirms it.
func (n *Navigator) dispatch(current string, choice Choice) (string, bool, error) {
	switch choice.Kind {
	case Confirm:
		return current, true, nil
	case NewFolder:
		return n.createFolder(current)
	case Up:
		return filepath.Dir(current), false, nil
	case Folder:
		return filepath.Join(current, choice.Folder), false, nil
	default:
		return current, false, nil
	}
}

// createFolder asks for a name and creates it inside current. A blank,
// dismissed or invalid answer leaves the navigator where it was.
func (n *Navigator) createFolder(current string) (string, bool, error) {
	name, ok, err := n.prompter.Input(NewFolderPrompt, "")
	if err != nil {
		return "", false, err
	}
	if !ok || strings.TrimSpace(name) == "" {
		return current, false, nil
	}
	if !ValidFolderName(name) {
		n.logger.Warn().Str("name", name).Msg("Folder name must be a single path element")
		return current, false, nil
	}

	target := filepath.Join(current, name)
	if err := n.fs.MkdirAll(target, 0755); err != nil {
		return "", false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create folder %s", target).
			WithDetail("path", target)
	}
	n.logger.Info().Str("path", target).Msg("Folder created")
	return target, false, nil
}

// ValidFolderName reports whether name names a single child directory:
// no path separators and not "." or "..".
func ValidFolderName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`+string(filepath.Separator))
}

// ListFolders returns the names of the immediate child directories of dir,
// in the order the filesystem lists them.
func ListFolders(fsys types.FS, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirList, "failed to list %s", dir).
			WithDetail("path", dir)
	}

	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry.Name())
		}
	}
	return folders, nil
}
