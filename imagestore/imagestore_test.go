package imagestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSaveAndDelete(t *testing.T) {
	store := NewDiskStore(t.TempDir())
	ctx := context.Background()

	relPath, err := store.Save(ctx, "screenshot.png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "/img/uploads/"))
	assert.True(t, strings.HasSuffix(relPath, "_screenshot.png"))

	require.NoError(t, store.Delete(ctx, relPath))
	// Deleting an already-removed path is not an error.
	require.NoError(t, store.Delete(ctx, relPath))
}

func TestDiskStoreSaveWritesContent(t *testing.T) {
	root := t.TempDir()
	store := NewDiskStore(root)

	relPath, err := store.Save(context.Background(), "demo.gif", strings.NewReader("gif bytes"))
	require.NoError(t, err)

	name := filepath.Base(relPath)
	data, err := os.ReadFile(filepath.Join(root, name))
	require.NoError(t, err)
	assert.Equal(t, "gif bytes", string(data))
}

func TestDiskStoreStripsClientPath(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	relPath, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(relPath, "_passwd"))
	assert.NotContains(t, relPath, "..")
}

func TestUniqueNameNeverCollides(t *testing.T) {
	a := uniqueName("img.png")
	b := uniqueName("img.png")
	assert.NotEqual(t, a, b)
}
