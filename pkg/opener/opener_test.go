package opener

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name   string
	args   []string
	attach bool
}

func newTestOpener(editor, windowCommand, goos string, env map[string]string) (*Opener, *[]call) {
	var calls []call
	o := New(editor, windowCommand)
	o.goos = goos
	o.getenv = func(key string) string { return env[key] }
	o.run = func(name string, args []string, attach bool) error {
		calls = append(calls, call{name: name, args: args, attach: attach})
		return nil
	}
	return o, &calls
}

func TestOpenFile(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		goos   string
		env    map[string]string
		want   call
	}{
		{
			name:   "configured_editor_with_args",
			editor: "code --wait",
			goos:   "linux",
			env:    map[string]string{"EDITOR": "vim"},
			want:   call{name: "code", args: []string{"--wait", "/w/a.go"}, attach: true},
		},
		{
			name: "visual_before_editor",
			goos: "linux",
			env:  map[string]string{"VISUAL": "hx", "EDITOR": "vim"},
			want: call{name: "hx", args: []string{"/w/a.go"}, attach: true},
		},
		{
			name: "editor_env",
			goos: "linux",
			env:  map[string]string{"EDITOR": "nano"},
			want: call{name: "nano", args: []string{"/w/a.go"}, attach: true},
		},
		{
			name:   "blank_editor_is_ignored",
			editor: "   ",
			goos:   "darwin",
			want:   call{name: "open", args: []string{"/w/a.go"}},
		},
		{
			name: "platform_linux",
			goos: "linux",
			want: call{name: "xdg-open", args: []string{"/w/a.go"}},
		},
		{
			name: "platform_windows",
			goos: "windows",
			want: call{name: "explorer", args: []string{"/w/a.go"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, calls := newTestOpener(tt.editor, "", tt.goos, tt.env)

			require.NoError(t, o.OpenFile("/w/a.go"))
			require.Len(t, *calls, 1)
			assert.Equal(t, tt.want, (*calls)[0])
		})
	}
}

func TestOpenFolder(t *testing.T) {
	t.Run("window_command", func(t *testing.T) {
		o, calls := newTestOpener("vim", "code --new-window", "linux", nil)

		require.NoError(t, o.OpenFolder("/tpl"))
		assert.Equal(t, []call{{name: "code", args: []string{"--new-window", "/tpl"}}}, *calls)
	})

	t.Run("platform_opener", func(t *testing.T) {
		o, calls := newTestOpener("vim", "", "darwin", nil)

		require.NoError(t, o.OpenFolder("/tpl"))
		assert.Equal(t, []call{{name: "open", args: []string{"/tpl"}}}, *calls)
	})

	t.Run("unsupported_platform", func(t *testing.T) {
		o, calls := newTestOpener("", "", "plan9", nil)

		err := o.OpenFolder("/tpl")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrOpen))
		assert.Empty(t, *calls)
	})
}

func TestOpenFailure(t *testing.T) {
	o := New("vim", "")
	o.run = func(string, []string, bool) error { return stderrors.New("exit status 1") }

	err := o.OpenFile("/w/a.go")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOpen))
	assert.Equal(t, "vim /w/a.go", errors.GetErrorDetails(err)["command"])
}
