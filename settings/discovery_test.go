package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfigFile(t *testing.T) {
	t.Run("NothingFound", func(t *testing.T) {
		r := New(WithUserHome(t.TempDir()))
		found := r.findConfigFile(t.TempDir(), ".isort.cfg", nil)
		assert.Empty(t, found)
	})

	t.Run("WalksParentDirectories", func(t *testing.T) {
		r := New(WithUserHome(t.TempDir()))
		root := t.TempDir()
		nested := filepath.Join(root, "a", "b", "c")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		configPath := filepath.Join(root, ".isort.cfg")
		require.NoError(t, os.WriteFile(configPath, []byte("[settings]\n"), 0o644))

		found := r.findConfigFile(nested, ".isort.cfg", nil)
		assert.Equal(t, configPath, found)
	})

	t.Run("NearestAncestorWins", func(t *testing.T) {
		r := New(WithUserHome(t.TempDir()))
		root := t.TempDir()
		nested := filepath.Join(root, "sub")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		require.NoError(t, os.WriteFile(filepath.Join(root, "tox.ini"), []byte("[isort]\n"), 0o644))
		nearest := filepath.Join(nested, "tox.ini")
		require.NoError(t, os.WriteFile(nearest, []byte("[isort]\n"), 0o644))

		found := r.findConfigFile(nested, "tox.ini", nil)
		assert.Equal(t, nearest, found)
	})

	t.Run("FallbackUsedWhenNoProjectFile", func(t *testing.T) {
		home := t.TempDir()
		r := New(WithUserHome(home))
		fallback := filepath.Join(home, ".isort.cfg")
		require.NoError(t, os.WriteFile(fallback, []byte("[settings]\n"), 0o644))

		found := r.findConfigFile(t.TempDir(), ".isort.cfg", []string{"~/.isort.cfg"})
		assert.Equal(t, fallback, found)
	})

	t.Run("ProjectFileReplacesFallback", func(t *testing.T) {
		home := t.TempDir()
		r := New(WithUserHome(home))
		require.NoError(t, os.WriteFile(filepath.Join(home, ".isort.cfg"), []byte("[settings]\n"), 0o644))

		project := t.TempDir()
		projectFile := filepath.Join(project, ".isort.cfg")
		require.NoError(t, os.WriteFile(projectFile, []byte("[settings]\n"), 0o644))

		found := r.findConfigFile(project, ".isort.cfg", []string{"~/.isort.cfg"})
		assert.Equal(t, projectFile, found)
	})

	t.Run("FallbacksProbedInOrder", func(t *testing.T) {
		home := t.TempDir()
		r := New(WithUserHome(home))
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".config"), 0o755))
		first := filepath.Join(home, ".config", "isort.cfg")
		require.NoError(t, os.WriteFile(first, []byte("[settings]\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(home, ".isort.cfg"), []byte("[settings]\n"), 0o644))

		found := r.findConfigFile(t.TempDir(), ".isort.cfg",
			[]string{filepath.Join(home, ".config", "isort.cfg"), "~/.isort.cfg"})
		assert.Equal(t, first, found)
	})

	t.Run("SearchDepthBounded", func(t *testing.T) {
		r := New(WithUserHome(t.TempDir()))
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ".isort.cfg"), []byte("[settings]\n"), 0o644))

		deep := root
		for i := 0; i < maxConfigSearchDepth+5; i++ {
			deep = filepath.Join(deep, "d")
		}
		require.NoError(t, os.MkdirAll(deep, 0o755))

		found := r.findConfigFile(deep, ".isort.cfg", nil)
		assert.Empty(t, found)
	})
}

func TestExpandUser(t *testing.T) {
	home := t.TempDir()
	r := New(WithUserHome(home))

	assert.Equal(t, home, r.expandUser("~"))
	assert.Equal(t, filepath.Join(home, ".editorconfig"), r.expandUser("~/.editorconfig"))
	assert.Equal(t, "/etc/isort.cfg", r.expandUser("/etc/isort.cfg"))
}
