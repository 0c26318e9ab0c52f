package easyfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/easyfile/internal/version"
	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/navigator"
	"github.com/arthur-debert/easyfile/pkg/paths"
	"github.com/arthur-debert/easyfile/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOpener struct {
	files   []string
	folders []string
}

func (r *recordingOpener) OpenFile(path string) error {
	r.files = append(r.files, path)
	return nil
}

func (r *recordingOpener) OpenFolder(path string) error {
	r.folders = append(r.folders, path)
	return nil
}

type testEnv struct {
	workspace string
	data      string
	config    string
	state     string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	base := t.TempDir()
	env := &testEnv{
		workspace: filepath.Join(base, "workspace"),
		data:      filepath.Join(base, "data"),
		config:    filepath.Join(base, "config"),
		state:     filepath.Join(base, "state"),
	}
	require.NoError(t, os.MkdirAll(filepath.Join(env.workspace, "src"), 0755))

	t.Setenv(paths.EnvDataDir, env.data)
	t.Setenv(paths.EnvConfigDir, env.config)
	t.Setenv(paths.EnvWorkspace, env.workspace)
	t.Setenv(paths.EnvStateDir, env.state)
	for _, name := range []string{"EASYFILE_TEMPLATES_PATH", "EASYFILE_EDITOR", "EASYFILE_WINDOW_COMMAND"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return env
}

func run(t *testing.T, deps Deps, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(deps)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--format", "text"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewCmd(t *testing.T) {
	t.Run("creates_file_from_global_template", func(t *testing.T) {
		env := setupEnv(t)
		templatesDir := filepath.Join(env.data, paths.TemplatesDir)
		require.NoError(t, os.MkdirAll(templatesDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(templatesDir, "template.go"), []byte("package main\n"), 0644))

		op := &recordingOpener{}
		prompter := testutil.NewScriptedPrompter(
			testutil.Choose(navigator.FolderPrefix+"src"),
			testutil.Choose(navigator.ConfirmLabel),
			testutil.Type("main.go"),
		)

		stdout, _, err := run(t, Deps{Prompter: prompter, Opener: op}, "new")
		require.NoError(t, err)

		target := filepath.Join(env.workspace, "src", "main.go")
		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "package main\n", string(content))
		assert.Equal(t, []string{target}, op.files)
		assert.Contains(t, stdout, target)
		assert.Contains(t, stdout, "template.go")
	})

	t.Run("cancel_is_silent", func(t *testing.T) {
		setupEnv(t)
		op := &recordingOpener{}

		stdout, _, err := run(t, Deps{Prompter: testutil.NewScriptedPrompter(testutil.Cancel()), Opener: op}, "new")
		require.NoError(t, err)
		assert.Empty(t, stdout)
		assert.Empty(t, op.files)
	})

	t.Run("missing_workspace", func(t *testing.T) {
		env := setupEnv(t)
		missing := filepath.Join(env.workspace, "gone")

		_, _, err := run(t, Deps{Prompter: testutil.NewScriptedPrompter(), Opener: &recordingOpener{}}, "new", "-w", missing)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoWorkspace))
		_, statErr := os.Stat(env.data)
		assert.True(t, os.IsNotExist(statErr), "nothing is created without a workspace")
	})
}

func TestTemplatesCmd(t *testing.T) {
	env := setupEnv(t)
	templatesDir := filepath.Join(env.data, paths.TemplatesDir)
	op := &recordingOpener{}

	stdout, _, err := run(t, Deps{Opener: op}, "templates")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created template directory")
	info, err := os.Stat(templatesDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	stdout, _, err = run(t, Deps{Opener: op}, "templates")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Created template directory")
	assert.Equal(t, []string{templatesDir, templatesDir}, op.folders)
}

func TestTemplatesListAndPath(t *testing.T) {
	env := setupEnv(t)
	custom := filepath.Join(env.workspace, ".templates")
	require.NoError(t, os.MkdirAll(custom, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(custom, "template.vue"), []byte("<template/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(custom, "template"), []byte(""), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(env.workspace, paths.WorkspaceConfigFile),
		[]byte(`templatesPath = ".templates"`+"\n"), 0644))

	stdout, _, err := run(t, Deps{}, "templates", "path")
	require.NoError(t, err)
	assert.Equal(t, custom, strings.TrimSpace(stdout))

	stdout, _, err = run(t, Deps{}, "templates", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "template.vue")
	assert.Contains(t, stdout, ".vue")
	assert.Contains(t, stdout, "(no extension)")
}

func TestConfigCmd(t *testing.T) {
	env := setupEnv(t)

	_, _, err := run(t, Deps{}, "config", "set", "templatesPath", "/srv/templates")
	require.NoError(t, err)

	stdout, _, err := run(t, Deps{}, "templates", "path")
	require.NoError(t, err)
	assert.Equal(t, "/srv/templates", strings.TrimSpace(stdout))

	stdout, _, err = run(t, Deps{}, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "/srv/templates")
	assert.Contains(t, stdout, filepath.Join(env.config, paths.ConfigFileName))

	_, _, err = run(t, Deps{}, "config", "unset", "templatesPath")
	require.NoError(t, err)

	stdout, _, err = run(t, Deps{}, "templates", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.data, paths.TemplatesDir), strings.TrimSpace(stdout))

	_, _, err = run(t, Deps{}, "config", "set", "colour", "blue")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestMiscCmds(t *testing.T) {
	env := setupEnv(t)

	t.Run("log_file_in_state_dir", func(t *testing.T) {
		_, _, err := run(t, Deps{}, "version", "-vv")
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(env.state, paths.LogFileName))
	})

	t.Run("version", func(t *testing.T) {
		stdout, _, err := run(t, Deps{}, "version")
		require.NoError(t, err)
		assert.Contains(t, stdout, version.Version)
	})

	t.Run("guide_is_raw_markdown_when_not_a_terminal", func(t *testing.T) {
		stdout, _, err := run(t, Deps{}, "guide")
		require.NoError(t, err)
		assert.Equal(t, MsgGuide, stdout)
	})

	t.Run("completion", func(t *testing.T) {
		stdout, _, err := run(t, Deps{}, "completion", "bash")
		require.NoError(t, err)
		assert.Contains(t, stdout, "easyfile")
	})

	t.Run("invalid_format", func(t *testing.T) {
		_, _, err := run(t, Deps{}, "version", "--format", "html")
		assert.Error(t, err)
	})

	t.Run("no_command", func(t *testing.T) {
		_, _, err := run(t, Deps{})
		assert.Error(t, err)
	})
}
