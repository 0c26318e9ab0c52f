package synthfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/easyfile/pkg/errors"
	"github.com/arthur-debert/easyfile/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	t.Run("creates_missing_directory_with_parents", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "data", "easyfile", "templates")
		e := NewEnsurer()

		result, err := e.EnsureDir(target)
		require.NoError(t, err)
		assert.Equal(t, types.EnsureCreated, result)

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("second_call_reports_existing", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "templates")
		e := NewEnsurer()

		_, err := e.EnsureDir(target)
		require.NoError(t, err)

		result, err := e.EnsureDir(target)
		require.NoError(t, err)
		assert.Equal(t, types.EnsureExisted, result)
	})

	t.Run("file_in_the_way", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "templates")
		require.NoError(t, os.WriteFile(target, []byte("x"), 0644))

		result, err := NewEnsurer().EnsureDir(target)
		require.Error(t, err)
		assert.Equal(t, types.EnsureFailed, result)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
	})
}
