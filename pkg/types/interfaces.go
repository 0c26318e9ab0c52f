package types

import (
	"io/fs"
)

// FS defines the filesystem operations easyfile needs
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Pather provides paths for easyfile operations
type Pather interface {
	// WorkspaceRoot returns the directory the navigator treats as its upper bound
	WorkspaceRoot() string

	// IsWorkspaceRoot reports whether dir is the workspace root
	IsWorkspaceRoot(dir string) bool

	// DataDir returns the XDG data directory for easyfile (global storage)
	DataDir() string

	// ConfigDir returns the XDG config directory for easyfile
	ConfigDir() string

	// GlobalTemplatesDir returns the template directory inside global storage
	GlobalTemplatesDir() string
}

// Option is a single entry of a selection menu
type Option struct {
	Label       string
	Description string
}

// Prompter collects input from the user. A false ok means the user
// dismissed the prompt; that is not an error.
type Prompter interface {
	// Select presents options and returns the index of the chosen one
	Select(title string, options []Option) (index int, ok bool, err error)

	// Input asks for a single line of text
	Input(prompt, placeholder string) (value string, ok bool, err error)
}

// Opener hands paths over to the user's editor or desktop
type Opener interface {
	// OpenFile opens a file for editing and brings it into focus
	OpenFile(path string) error

	// OpenFolder opens a directory as the root of a new window
	OpenFolder(path string) error
}
