package settings

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"isort/stdlib"
)

// configFileKind describes one config file format in the cascade: its
// file name, well-known fallback locations, and the sections read from
// it.
type configFileKind struct {
	name      string
	fallbacks []string
	sections  []string
}

// Resolver resolves effective configurations. It owns two process-wide
// memoizing caches, resolved settings per (path, version) and raw file
// contents per (path, sections), populated lazily and never invalidated
// within a run: correctness depends on config files not changing
// mid-run. A Resolver is safe for concurrent use; each distinct cache
// key is computed at most once and all callers observe the same value.
type Resolver struct {
	logger     zerolog.Logger
	home       string
	configHome string

	mu          sync.RWMutex
	configCache map[string]map[string]any
	rawCache    map[string]map[string]any
	group       singleflight.Group
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger routes non-fatal diagnostics to the given logger. The
// default discards them.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithUserHome overrides the user home directory consulted for
// fallback config files (and the derived config directory), mainly for
// tests.
func WithUserHome(dir string) Option {
	return func(r *Resolver) {
		r.home = dir
		r.configHome = filepath.Join(dir, ".config")
	}
}

// New creates a Resolver with empty caches.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		logger:      zerolog.Nop(),
		configCache: make(map[string]map[string]any),
		rawCache:    make(map[string]map[string]any),
	}

	if home, err := os.UserHomeDir(); err == nil {
		r.home = home
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		r.configHome = xdg
	} else {
		r.configHome = filepath.Join(r.home, ".config")
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// cascade returns the config file kinds in resolution order; later
// entries override earlier ones for the keys they define.
func (r *Resolver) cascade() []configFileKind {
	return []configFileKind{
		{".editorconfig", []string{"~/.editorconfig"}, []string{"*", "*.py", "**.py"}},
		{"pyproject.toml", nil, []string{"tool.isort"}},
		{".isort.cfg", []string{filepath.Join(r.configHome, "isort.cfg"), "~/.isort.cfg"}, []string{"settings", "isort"}},
		{"setup.cfg", nil, []string{"isort", "tool:isort"}},
		{"tox.ini", nil, []string{"isort", "tool:isort"}},
	}
}

// FromPath resolves the file-based configuration for the given starting
// path and version selector, without programmatic overrides. The
// returned mapping is cached and shared; callers must not mutate it.
func (r *Resolver) FromPath(path, pyVersion string) (map[string]any, error) {
	key := path + "\x00" + pyVersion

	r.mu.RLock()
	cached, ok := r.configCache[key]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := r.group.Do("config\x00"+key, func() (any, error) {
		resolved, err := r.resolve(path, pyVersion)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.configCache[key] = resolved
		r.mu.Unlock()
		return resolved, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(map[string]any), nil
}

func (r *Resolver) resolve(path, pyVersion string) (map[string]any, error) {
	target, modules, err := stdlib.Resolve(pyVersion)
	if err != nil {
		return nil, err
	}

	// Seed from the default table; project files can add to the
	// version-derived standard-library set but never replace it.
	acc := defaultSettings()
	acc["py_version"] = target
	acc["known_standard_library"] = union(toStringList(acc["known_standard_library"]), modules)

	for _, kind := range r.cascade() {
		file := r.findConfigFile(path, kind.name, kind.fallbacks)
		if file == "" {
			continue
		}
		raw, err := r.readConfigFile(file, kind.sections)
		if err != nil {
			return nil, err
		}
		if len(raw) == 0 {
			continue
		}
		r.logger.Debug().Str("file", file).Int("settings", len(raw)).
			Msg("applying config file")
		if err := r.mergeSettings(file, raw, acc); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

var defaultResolver = New()

// FromPath resolves file-based configuration using a shared default
// Resolver. The returned mapping must not be mutated.
func FromPath(path, pyVersion string) (map[string]any, error) {
	return defaultResolver.FromPath(path, pyVersion)
}

// Prepare resolves configuration using a shared default Resolver and
// applies the given overrides.
func Prepare(path string, overrides map[string]any) (*Config, error) {
	return defaultResolver.Prepare(path, overrides)
}
