package settings

import (
	"os"
	"path/filepath"
	"strings"
)

// findConfigFile locates the nearest applicable config file named name.
// Fallback locations are probed first (in order, with ~ expanded) and
// the first existing one remembered as a candidate; a file found while
// walking parent directories from start replaces it, so project-local
// configuration wins over user-global. The walk stops at the filesystem
// root or after maxConfigSearchDepth steps. A missing file is not an
// error; the empty string means nothing was found.
func (r *Resolver) findConfigFile(start, name string, fallbacks []string) string {
	var found string
	for _, fallback := range fallbacks {
		expanded := r.expandUser(fallback)
		if _, err := os.Stat(expanded); err == nil {
			found = expanded
			break
		}
	}

	dir := start
	for tries := 0; dir != "" && tries < maxConfigSearchDepth; tries++ {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			found = candidate
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return found
}

// expandUser replaces a leading ~ with the resolver's user home.
func (r *Resolver) expandUser(path string) string {
	if path == "~" {
		return r.home
	}
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) || strings.HasPrefix(path, "~/") {
		return filepath.Join(r.home, path[2:])
	}
	return path
}
