package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		workspace string
		envSetup  map[string]string
		validate  func(t *testing.T, p Paths)
	}{
		{
			name:      "explicit workspace root",
			workspace: "/tmp/project",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/tmp/project", p.WorkspaceRoot())
				assert.False(t, p.UsedFallback())
			},
		},
		{
			name: "from EASYFILE_WORKSPACE env",
			envSetup: map[string]string{
				EnvWorkspace: "/env/project",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/env/project", p.WorkspaceRoot())
			},
		},
		{
			name: "git repository or fallback",
			validate: func(t *testing.T, p Paths) {
				assert.NotEmpty(t, p.WorkspaceRoot())
				assert.True(t, filepath.IsAbs(p.WorkspaceRoot()), "path should be absolute")
			},
		},
		{
			name:      "expand tilde in explicit path",
			workspace: "~/project",
			validate: func(t *testing.T, p Paths) {
				homeDir, _ := os.UserHomeDir()
				assert.Equal(t, filepath.Join(homeDir, "project"), p.WorkspaceRoot())
			},
		},
		{
			name: "custom XDG directories",
			envSetup: map[string]string{
				EnvDataDir:   "/custom/data",
				EnvConfigDir: "/custom/config",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/custom/data", p.DataDir())
				assert.Equal(t, "/custom/config", p.ConfigDir())
				assert.Equal(t, "/custom/data/templates", p.GlobalTemplatesDir())
				assert.Equal(t, "/custom/config/config.toml", p.ConfigFilePath())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvWorkspace, "")
			t.Setenv(EnvDataDir, "")
			t.Setenv(EnvConfigDir, "")
			t.Setenv(EnvStateDir, "")
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New(tt.workspace)
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestIsWorkspaceRoot(t *testing.T) {
	p, err := New("/work/project")
	require.NoError(t, err)

	assert.True(t, p.IsWorkspaceRoot("/work/project"))
	assert.True(t, p.IsWorkspaceRoot("/work/project/"))
	assert.True(t, p.IsWorkspaceRoot("/work/project/src/.."))
	assert.False(t, p.IsWorkspaceRoot("/work/project/src"))
	assert.False(t, p.IsWorkspaceRoot("/work"))
}

func TestLogFilePath(t *testing.T) {
	t.Run("state_dir_override", func(t *testing.T) {
		t.Setenv(EnvStateDir, "/custom/state")
		p, err := New("/work/project")
		require.NoError(t, err)

		assert.Equal(t, "/custom/state/easyfile.log", p.LogFilePath())
	})

	t.Run("xdg_state_home", func(t *testing.T) {
		t.Setenv(EnvStateDir, "")
		p, err := New("/work/project")
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(xdg.StateHome, AppDirName, LogFileName), p.LogFilePath())
	})
}

func TestWorkspaceConfigPath(t *testing.T) {
	p, err := New("/work/project")
	require.NoError(t, err)

	assert.Equal(t, "/work/project/.easyfile.toml", p.WorkspaceConfigPath())
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandHome(""))
	assert.Equal(t, homeDir, ExpandHome("~"))
	assert.Equal(t, filepath.Join(homeDir, "templates"), ExpandHome("~/templates"))
	assert.Equal(t, "~other/templates", ExpandHome("~other/templates"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
}
