package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/easyfile/pkg/filesystem"
	"github.com/arthur-debert/easyfile/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// MemFS is an in-memory types.FS that also exposes the underlying afero
// filesystem for direct inspection.
type MemFS struct {
	types.FS
	Afero afero.Fs
}

// NewMemFS creates an in-memory filesystem. Keys ending in "/" are created
// as directories, everything else as files with the given content.
func NewMemFS(t *testing.T, tree map[string]string) *MemFS {
	t.Helper()
	afs := afero.NewMemMapFs()
	for path, content := range tree {
		if strings.HasSuffix(path, "/") {
			require.NoError(t, afs.MkdirAll(path, 0755), "mkdir %s", path)
			continue
		}
		require.NoError(t, afs.MkdirAll(filepath.Dir(path), 0755), "mkdir parent of %s", path)
		require.NoError(t, afero.WriteFile(afs, path, []byte(content), 0644), "write %s", path)
	}
	return &MemFS{FS: filesystem.NewAferoFS(afs), Afero: afs}
}

// Exists reports whether path is present
func (m *MemFS) Exists(path string) bool {
	_, err := m.Afero.Stat(path)
	return err == nil
}

// IsDir reports whether path is a directory
func (m *MemFS) IsDir(path string) bool {
	info, err := m.Afero.Stat(path)
	return err == nil && info.IsDir()
}

// Files lists every regular file in the filesystem, sorted
func (m *MemFS) Files(t *testing.T) []string {
	t.Helper()
	var files []string
	err := afero.Walk(m.Afero, "/", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

// Content returns the content of a file, failing the test if it is missing
func (m *MemFS) Content(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(m.Afero, path)
	require.NoError(t, err, "read %s", path)
	return string(data)
}
