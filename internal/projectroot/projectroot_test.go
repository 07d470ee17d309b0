package projectroot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/x\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindFile(t *testing.T) {
	outer := t.TempDir()
	root := filepath.Join(outer, "mod")
	nested := filepath.Join(root, "internal", "gatt")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/x\n"), 0o644))

	// Files above the module root are not considered.
	require.NoError(t, os.WriteFile(filepath.Join(outer, "gattgen.yaml"), nil, 0o644))
	_, ok := FindFile(nested, "gattgen.yaml")
	assert.False(t, ok)

	want := filepath.Join(root, "gattgen.yaml")
	require.NoError(t, os.WriteFile(want, nil, 0o644))
	got, ok := FindFile(nested, "gattgen.yaml")
	require.True(t, ok)
	assert.Equal(t, want, got)
}
