// Package settings resolves the effective configuration used when
// sorting Python import statements.
//
// Resolution cascades values from a compiled-in default table, a small
// set of well-known per-user files, and project-local files discovered
// by walking up the directory tree from a target path, then merges any
// programmatically supplied overrides on top. Five file kinds are
// consulted in fixed precedence order, later files overriding earlier
// ones for the keys they define:
//
//	.editorconfig  (sections *, *.py, **.py)
//	pyproject.toml (table tool.isort)
//	.isort.cfg     (sections settings, isort)
//	setup.cfg      (sections isort, tool:isort)
//	tox.ini        (sections isort, tool:isort)
//
// A Resolver memoizes both the raw per-file reads and the fully merged
// result, so repeated resolution for the same path is cheap and safe
// under concurrent use. Config files are never written, only read.
//
// Quick start:
//
//	cfg, err := settings.Prepare("/path/to/project", map[string]any{
//	    "line_length": 100,
//	    "not_skip":    []string{"setup.py"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if cfg.ShouldSkip("generated.py", "/path/to/project") {
//	    return
//	}
package settings
