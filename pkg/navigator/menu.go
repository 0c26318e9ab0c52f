package navigator

import (
	"strings"

	"github.com/arthur-debert/easyfile/pkg/types"
)

// ChoiceKind identifies what a menu entry does
type ChoiceKind int

const (
	// Confirm selects the current directory
	Confirm ChoiceKind = iota
	// NewFolder creates a folder inside the current directory
	NewFolder
	// Separator is a visual divider with no effect
	Separator
	// Up moves to the parent directory
	Up
	// Folder descends into a child directory
	Folder
)

// String returns the string representation of the kind
func (k ChoiceKind) String() string {
	switch k {
	case Confirm:
		return "confirm"
	case NewFolder:
		return "new-folder"
	case Separator:
		return "separator"
	case Up:
		return "up"
	case Folder:
		return "folder"
	default:
		return "unknown"
	}
}

// Menu labels
const (
	ConfirmLabel   = "✅ Use this folder"
	NewFolderLabel = "📁 New folder"
	UpLabel        = ".."
	UpDescription  = "Go up one level"
	FolderPrefix   = "📂 "
)

// SeparatorLabel divides the actions from the folder entries
var SeparatorLabel = strings.Repeat("─", 40)

// Choice is one entry of the navigation menu
type Choice struct {
	Kind        ChoiceKind
	Label       string
	Description string
	// Folder is the child directory name for Folder entries
	Folder string
}

// BuildMenu returns the menu for current. The Up entry is omitted when
// isRoot is true. Folders keep the order they are given in.
func BuildMenu(current string, folders []string, isRoot bool) []Choice {
	menu := make([]Choice, 0, len(folders)+4)
	menu = append(menu,
		Choice{Kind: Confirm, Label: ConfirmLabel, Description: current},
		Choice{Kind: NewFolder, Label: NewFolderLabel},
		Choice{Kind: Separator, Label: SeparatorLabel},
	)
	if !isRoot {
		menu = append(menu, Choice{Kind: Up, Label: UpLabel, Description: UpDescription})
	}
	for _, name := range folders {
		menu = append(menu, Choice{Kind: Folder, Label: FolderPrefix + name, Folder: name})
	}
	return menu
}

// Options converts menu entries to prompt options
func Options(menu []Choice) []types.Option {
	options := make([]types.Option, len(menu))
	for i, c := range menu {
		options[i] = types.Option{Label: c.Label, Description: c.Description}
	}
	return options
}
