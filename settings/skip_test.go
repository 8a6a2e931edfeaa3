package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipConfig builds a Config for skip tests; resolution is exercised
// elsewhere.
func skipConfig(t *testing.T, mutate func(*Config)) *Config {
	t.Helper()
	cfg := prepareInEmptyDir(t, nil)
	if mutate != nil {
		mutate(cfg)
	}
	return cfg
}

func TestShouldSkip(t *testing.T) {
	t.Run("ExactSkipMatch", func(t *testing.T) {
		cfg := skipConfig(t, func(c *Config) { c.Skip = []string{"setup.py"} })
		assert.True(t, cfg.ShouldSkip("setup.py", "/proj"))
	})

	t.Run("SkipNameAnywhereInPath", func(t *testing.T) {
		cfg := skipConfig(t, func(c *Config) { c.Skip = []string{"migrations"} })
		assert.True(t, cfg.ShouldSkip("migrations/0001_initial.py", "/proj"))
	})

	t.Run("GlobMatch", func(t *testing.T) {
		cfg := skipConfig(t, func(c *Config) { c.SkipGlob = []string{"*.py"} })
		assert.True(t, cfg.ShouldSkip("mod.py", "/proj"))
	})

	t.Run("GlobWithLeadingSlash", func(t *testing.T) {
		cfg := skipConfig(t, func(c *Config) { c.SkipGlob = []string{"/gen_*.py"} })
		assert.True(t, cfg.ShouldSkip("gen_models.py", "/proj"))
	})

	t.Run("GlobCaseInsensitiveByDefault", func(t *testing.T) {
		cfg := skipConfig(t, func(c *Config) { c.SkipGlob = []string{"*.PY"} })
		assert.True(t, cfg.ShouldSkip("mod.py", "/proj"))

		cfg.CaseSensitive = true
		// Still skipped, but now by the existence check; use an
		// existing file to isolate the glob behavior.
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "mod.py"), []byte("import os\n"), 0o644))
		assert.False(t, cfg.ShouldSkip("mod.py", dir))
	})

	t.Run("SafetyExcludesDenylist", func(t *testing.T) {
		cfg := skipConfig(t, nil)
		assert.True(t, cfg.ShouldSkip(".git", "/proj"))
		assert.True(t, cfg.ShouldSkip(".tox", "/proj"))
		assert.True(t, cfg.ShouldSkip("node_modules", "/proj"))
		assert.True(t, cfg.ShouldSkip("python3.6", "/usr/lib"))
	})

	t.Run("SafetyExcludesDisabled", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

		cfg := skipConfig(t, func(c *Config) { c.SafetyExcludes = false })
		assert.False(t, cfg.ShouldSkip(".git", dir))

		cfg.SafetyExcludes = true
		assert.True(t, cfg.ShouldSkip(".git", dir))
	})

	t.Run("SafetyExcludesNeedDirectory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "config"), []byte("[core]\n"), 0o644))

		cfg := skipConfig(t, nil)
		// Without a directory argument the safety denylist is not
		// consulted, so a path inside .git passes.
		assert.False(t, cfg.ShouldSkip(filepath.Join(dir, ".git", "config"), ""))
	})

	t.Run("MissingFileSkipped", func(t *testing.T) {
		cfg := skipConfig(t, nil)
		assert.True(t, cfg.ShouldSkip("missing.py", t.TempDir()))
	})

	t.Run("ExistingFileNotSkipped", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.py"), []byte("import os\n"), 0o644))

		cfg := skipConfig(t, nil)
		assert.False(t, cfg.ShouldSkip("a.py", dir))
	})

	t.Run("ExistingDirectoryNotSkipped", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "pkg"), 0o755))

		cfg := skipConfig(t, nil)
		assert.False(t, cfg.ShouldSkip("pkg", dir))
	})

	t.Run("SymlinkNotSkipped", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "real.py")
		require.NoError(t, os.WriteFile(target, []byte("import os\n"), 0o644))
		require.NoError(t, os.Symlink(target, filepath.Join(dir, "link.py")))

		cfg := skipConfig(t, nil)
		assert.False(t, cfg.ShouldSkip("link.py", dir))
	})

	t.Run("AbsoluteSkipPathMatch", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.py"), []byte("import os\n"), 0o644))

		cfg := skipConfig(t, func(c *Config) { c.Skip = []string{filepath.Join(dir, "a.py")} })
		assert.True(t, cfg.ShouldSkip("a.py", dir))
	})

	t.Run("BackslashesNormalized", func(t *testing.T) {
		cfg := skipConfig(t, func(c *Config) { c.Skip = []string{"vendor"} })
		assert.True(t, cfg.ShouldSkip(`vendor\generated.py`, "/proj"))
	})
}
