package testutil

import (
	"path/filepath"

	"github.com/arthur-debert/easyfile/pkg/paths"
)

// StaticPaths is a paths.Paths with fixed directories
type StaticPaths struct {
	Root   string
	Data   string
	Config string
	State  string
}

// NewStaticPaths lays out the easyfile directories under base, with the
// workspace at root.
func NewStaticPaths(root, base string) *StaticPaths {
	return &StaticPaths{
		Root:   root,
		Data:   filepath.Join(base, "data", paths.AppDirName),
		Config: filepath.Join(base, "config", paths.AppDirName),
		State:  filepath.Join(base, "state", paths.AppDirName),
	}
}

func (s *StaticPaths) WorkspaceRoot() string { return s.Root }
func (s *StaticPaths) UsedFallback() bool    { return false }
func (s *StaticPaths) IsWorkspaceRoot(dir string) bool {
	return filepath.Clean(dir) == filepath.Clean(s.Root)
}
func (s *StaticPaths) DataDir() string   { return s.Data }
func (s *StaticPaths) ConfigDir() string { return s.Config }
func (s *StaticPaths) GlobalTemplatesDir() string {
	return filepath.Join(s.Data, paths.TemplatesDir)
}
func (s *StaticPaths) ConfigFilePath() string {
	return filepath.Join(s.Config, paths.ConfigFileName)
}
func (s *StaticPaths) WorkspaceConfigPath() string {
	return filepath.Join(s.Root, paths.WorkspaceConfigFile)
}
func (s *StaticPaths) LogFilePath() string {
	return filepath.Join(s.State, paths.LogFileName)
}

var _ paths.Paths = (*StaticPaths)(nil)
