// Package stdlib resolves a Python version selector to the set of
// module names shipped with that version's standard library. The sets
// are fallbacks used to classify imports when no explicit configuration
// applies; they do not need to be exhaustive.
package stdlib

import (
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// ErrUnsupportedVersion reports a version selector outside the
// supported set.
var ErrUnsupportedVersion = errors.New("unsupported python version")

// versionModules maps a normalized target ("py27", "py38", "all", ...)
// to its module-name set.
var versionModules = map[string]map[string]struct{}{}

func init() {
	py2 := toSet(py27Modules)
	py35 := toSet(py3BaseModules)
	py36 := extend(py35, "secrets")
	py37 := extend(py36, "contextvars", "dataclasses")
	py38 := extend(py37)
	py39 := extend(py38, "graphlib", "zoneinfo")
	py310 := extend(py39)
	py311 := extend(py310, "tomllib")
	py312 := without(py311, "asynchat", "asyncore", "distutils", "imp", "smtpd")
	py313 := without(py312,
		"aifc", "audioop", "cgi", "cgitb", "chunk", "crypt", "imghdr",
		"mailcap", "msilib", "nis", "nntplib", "ossaudiodev", "pipes",
		"sndhdr", "spwd", "sunau", "telnetlib", "uu", "xdrlib")

	versionModules["py2"] = py2
	versionModules["py27"] = py2
	versionModules["py35"] = py35
	versionModules["py36"] = py36
	versionModules["py37"] = py37
	versionModules["py38"] = py38
	versionModules["py39"] = py39
	versionModules["py310"] = py310
	versionModules["py311"] = py311
	versionModules["py312"] = py312
	versionModules["py313"] = py313

	py3 := map[string]struct{}{}
	for target, modules := range versionModules {
		if strings.HasPrefix(target, "py3") {
			for name := range modules {
				py3[name] = struct{}{}
			}
		}
	}
	versionModules["py3"] = py3

	all := map[string]struct{}{}
	for name := range py2 {
		all[name] = struct{}{}
	}
	for name := range py3 {
		all[name] = struct{}{}
	}
	versionModules["all"] = all
}

// Targets returns the supported version selectors in sorted order.
func Targets() []string {
	targets := make([]string, 0, len(versionModules))
	for target := range versionModules {
		targets = append(targets, strings.TrimPrefix(target, "py"))
	}
	sort.Strings(targets)
	return targets
}

// Resolve normalizes a version selector and returns the concrete target
// identifier together with the sorted module-name set for it.
//
// An empty selector defaults to "3". "all" selects the union of every
// known per-version set. "auto" probes the python3 (then python)
// interpreter on PATH for its major.minor version; when no interpreter
// is found, the newest supported target is used instead.
func Resolve(selector string) (string, []string, error) {
	if selector == "" {
		selector = "3"
	}
	if selector == "auto" {
		selector = detectInterpreterVersion()
	}

	target := selector
	if selector != "all" {
		target = "py" + selector
	}

	modules, ok := versionModules[target]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q (supported versions: %s)",
			ErrUnsupportedVersion, selector, strings.Join(Targets(), ", "))
	}

	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return target, names, nil
}

// newestTarget is the fallback when interpreter detection fails or
// reports a version newer than the known sets.
const newestTarget = "313"

func detectInterpreterVersion() string {
	for _, interpreter := range []string{"python3", "python"} {
		out, err := exec.Command(interpreter, "-c",
			"import sys; print('%d%d' % sys.version_info[:2])").Output()
		if err != nil {
			continue
		}
		version := strings.TrimSpace(string(out))
		if version == "" {
			continue
		}
		if _, ok := versionModules["py"+version]; !ok {
			// Interpreter newer than the known sets; classify against
			// the newest set instead of refusing to run.
			return newestTarget
		}
		return version
	}
	return newestTarget
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func extend(base map[string]struct{}, names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(base)+len(names))
	for name := range base {
		set[name] = struct{}{}
	}
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func without(base map[string]struct{}, names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(base))
	for name := range base {
		set[name] = struct{}{}
	}
	for _, name := range names {
		delete(set, name)
	}
	return set
}
