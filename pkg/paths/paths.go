package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/easyfile/pkg/errors"
)

// Environment variable names
const (
	// EnvWorkspace selects the workspace root when no flag is given
	EnvWorkspace = "EASYFILE_WORKSPACE"

	// EnvDataDir overrides the XDG data directory for easyfile
	EnvDataDir = "EASYFILE_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for easyfile
	EnvConfigDir = "EASYFILE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory (log file) for easyfile
	EnvStateDir = "EASYFILE_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names inside the easyfile directories
const (
	// AppDirName is the directory name for easyfile-specific files
	AppDirName = "easyfile"

	// TemplatesDir is the subdirectory of global storage holding templates
	TemplatesDir = "templates"

	// ConfigFileName is the user configuration file inside ConfigDir
	ConfigFileName = "config.toml"

	// WorkspaceConfigFile is the per-workspace configuration file
	WorkspaceConfigFile = ".easyfile.toml"

	// LogFileName is the name of the log file
	LogFileName = "easyfile.log"
)

// Paths provides centralized path management for easyfile
type Paths interface {
	WorkspaceRoot() string
	UsedFallback() bool
	IsWorkspaceRoot(dir string) bool
	DataDir() string
	ConfigDir() string
	GlobalTemplatesDir() string
	ConfigFilePath() string
	WorkspaceConfigPath() string
	LogFilePath() string
}

type paths struct {
	workspaceRoot string
	xdgData       string
	xdgConfig     string
	xdgState      string

	// usedFallback indicates if we fell back to cwd
	usedFallback bool
}

// New creates a new Paths instance with the given workspace root.
// If workspaceRoot is empty, it is determined from EASYFILE_WORKSPACE,
// the enclosing git repository, or the current directory, in that order.
func New(workspaceRoot string) (Paths, error) {
	p := &paths{}

	if workspaceRoot == "" {
		root, usedFallback, err := findWorkspaceRoot()
		if err != nil {
			return nil, err
		}
		p.workspaceRoot = root
		p.usedFallback = usedFallback
	} else {
		p.workspaceRoot = expandHome(workspaceRoot)
	}

	absRoot, err := filepath.Abs(p.workspaceRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for workspace root")
	}
	p.workspaceRoot = absRoot

	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = expandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}
}

// findWorkspaceRoot determines the workspace root using the following priority:
// 1. EASYFILE_WORKSPACE environment variable (if set)
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
func findWorkspaceRoot() (string, bool, error) {
	if root := os.Getenv(EnvWorkspace); root != "" {
		return expandHome(root), false, nil
	}

	if gitRoot, err := findGitRoot(); err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrNoWorkspace, "failed to get current directory")
	}
	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

func (p *paths) WorkspaceRoot() string {
	return p.workspaceRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// IsWorkspaceRoot reports whether dir is the navigation upper bound
func (p *paths) IsWorkspaceRoot(dir string) bool {
	return filepath.Clean(dir) == filepath.Clean(p.workspaceRoot)
}

func (p *paths) DataDir() string {
	return p.xdgData
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// GlobalTemplatesDir returns <global storage>/templates
func (p *paths) GlobalTemplatesDir() string {
	return filepath.Join(p.xdgData, TemplatesDir)
}

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

func (p *paths) WorkspaceConfigPath() string {
	return filepath.Join(p.workspaceRoot, WorkspaceConfigFile)
}

// LogFilePath returns the log file inside the XDG state directory
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}
