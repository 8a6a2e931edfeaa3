package settings

import (
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// safetyExcludeRe is a built-in denylist of VCS, cache, build and
// virtual-env directory names skipped whenever safety_excludes is on.
var safetyExcludeRe = regexp.MustCompile(
	`/(\.eggs|\.git|\.hg|\.mypy_cache|\.nox|\.tox|\.venv|_build|buck-out|build|dist|\.pants\.d` +
		`|lib/python[0-9].[0-9]+|node_modules)/`)

// ShouldSkip reports whether the named file or folder inside dir must
// be excluded from processing under this configuration. Checks run in
// order: safety denylist, exact skip-path match, per-segment skip-name
// match, skip_glob patterns, and finally existence (anything that is
// not a regular file, directory or symlink is treated as absent and
// skipped).
func (c *Config) ShouldSkip(filename, dir string) bool {
	osPath := filepath.Join(dir, filename)

	normalized := strings.ReplaceAll(osPath, `\`, "/")
	if len(normalized) >= 2 && normalized[1] == ':' {
		normalized = normalized[2:]
	}

	if dir != "" && c.SafetyExcludes {
		checkExclude := "/" + strings.ReplaceAll(filename, `\`, "/") + "/"
		if filepath.Base(dir) == "lib" {
			checkExclude = "/lib" + checkExclude
		}
		if safetyExcludeRe.MatchString(checkExclude) {
			return true
		}
	}

	for _, skipPath := range c.Skip {
		if absPosix(normalized) == absPosix(strings.ReplaceAll(skipPath, `\`, "/")) {
			return true
		}
	}

	// A skipped directory name anywhere in the candidate path counts,
	// not just an exact full-path match.
	remaining := strings.ReplaceAll(filename, `\`, "/")
	for remaining != "" {
		head, tail := path.Split(remaining)
		if tail == "" {
			break
		}
		if slices.Contains(c.Skip, tail) {
			return true
		}
		remaining = strings.TrimSuffix(head, "/")
	}

	flags := 0
	if !c.CaseSensitive {
		flags = fnmatch.FNM_CASEFOLD
	}
	for _, pattern := range c.SkipGlob {
		if fnmatch.Match(pattern, filename, flags) || fnmatch.Match(pattern, "/"+filename, flags) {
			return true
		}
	}

	info, err := os.Lstat(osPath)
	if err != nil {
		return true
	}
	mode := info.Mode()
	if !mode.IsRegular() && !mode.IsDir() && mode&os.ModeSymlink == 0 {
		return true
	}

	return false
}

// absPosix makes a slash-normalized path absolute against the process
// working directory and cleans it.
func absPosix(p string) string {
	if !strings.HasPrefix(p, "/") {
		if wd, err := os.Getwd(); err == nil {
			p = path.Join(strings.ReplaceAll(wd, `\`, "/"), p)
		}
	}
	return path.Clean(p)
}
