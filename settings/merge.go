package settings

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"isort/wrapmode"
)

// mergeSettings folds the raw key/value pairs read from one config file
// into the accumulating settings mapping, mutating acc in place. Keys
// carry merge semantics through their names: a not_ prefix removes the
// named list elements, known_* lists union with relative entries
// absolutized against the file's directory, and every other list unions
// plainly. sections is the one list replaced wholesale, preserving
// order. Scalars are coerced to the declared type of their setting.
func (r *Resolver) mergeSettings(path string, raw map[string]any, acc map[string]any) error {
	if len(raw) == 0 {
		return nil
	}

	cwd := filepath.Dir(path)
	pending := make(map[string]any, len(raw))
	for key, value := range raw {
		pending[key] = value
	}

	if strings.HasSuffix(path, ".editorconfig") {
		if err := applyEditorSettings(path, pending, acc); err != nil {
			return err
		}
	}

	for _, key := range orderedKeys(pending) {
		value := pending[key]
		accessKey := strings.ToLower(strings.ReplaceAll(key, "not_", ""))
		policy, known := fieldPolicies[accessKey]
		if !known {
			// Unrecognized settings pass through as best-effort
			// coercions rather than being rejected.
			r.logger.Debug().Str("file", path).Str("key", key).
				Msg("unrecognized setting passed through")
		}

		switch {
		case policy.kind == kindStringList:
			if policy.ordered {
				acc[accessKey] = asList(value)
				continue
			}
			existing := toStringList(acc[accessKey])
			parsed := asList(value)
			switch {
			case strings.HasPrefix(key, "not_"):
				acc[accessKey] = difference(existing, parsed)
			case policy.absolutize:
				acc[accessKey] = union(existing, absPaths(cwd, parsed))
			default:
				acc[accessKey] = union(existing, parsed)
			}

		case policy.kind == kindBool:
			parsed, err := asBool(value)
			if err != nil {
				return fmt.Errorf("setting %q in '%s': %w", key, path, err)
			}
			acc[accessKey] = parsed

		case strings.HasPrefix(key, "known_"):
			// Custom known_* sections are not in the default table but
			// still get list parsing and path absolutization.
			acc[accessKey] = absPaths(cwd, asList(value))

		case accessKey == "force_grid_wrap":
			parsed, err := asInt(value)
			if err != nil {
				// Shim for the historical boolean form of this setting.
				if strings.EqualFold(strings.TrimSpace(stringify(value)), "false") {
					parsed = defaultSettings()[accessKey].(int)
				} else {
					parsed = 2
				}
			}
			acc[accessKey] = parsed

		case policy.kind == kindWrapMode:
			mode, err := wrapmode.FromString(stringify(value))
			if err != nil {
				return fmt.Errorf("setting %q in '%s': %w", key, path, err)
			}
			acc[accessKey] = mode

		case policy.kind == kindInt:
			parsed, err := asInt(value)
			if err != nil {
				return fmt.Errorf("setting %q in '%s': %w", key, path, err)
			}
			acc[accessKey] = parsed

		default:
			acc[accessKey] = stringify(value)
		}
	}

	return nil
}

// applyEditorSettings handles the editorconfig keys that do not map
// one-to-one onto settings. indent_style, indent_size and tab_width
// combine into indent; max_line_length becomes line_length, with the
// literal "off" lifting the limit entirely. All four keys are removed
// so the generic merge never sees them.
func applyEditorSettings(path string, pending, acc map[string]any) error {
	indentStyle := strings.TrimSpace(popString(pending, "indent_style"))
	indentSize := strings.TrimSpace(popString(pending, "indent_size"))
	tabWidth := strings.TrimSpace(popString(pending, "tab_width"))
	if indentSize == "tab" {
		indentSize = tabWidth
	}

	switch indentStyle {
	case "space":
		width, err := widthOrDefault(indentSize, 4)
		if err != nil {
			return fmt.Errorf("indent_size in '%s': %w", path, err)
		}
		acc["indent"] = strings.Repeat(" ", width)
	case "tab":
		width, err := widthOrDefault(indentSize, 1)
		if err != nil {
			return fmt.Errorf("indent_size in '%s': %w", path, err)
		}
		acc["indent"] = strings.Repeat("\t", width)
	}

	maxLineLength := strings.TrimSpace(popString(pending, "max_line_length"))
	if maxLineLength != "" {
		if maxLineLength == "off" {
			acc["line_length"] = math.MaxInt
		} else {
			length, err := strconv.Atoi(maxLineLength)
			if err != nil {
				return fmt.Errorf("max_line_length in '%s': %w", path, err)
			}
			acc["line_length"] = length
		}
	}

	return nil
}

// orderedKeys returns the map's keys in deterministic apply order:
// alphabetical by underlying setting, with a not_ removal always placed
// after the key it removes from, so one source supplying both resolves
// identically on every run.
func orderedKeys(settings map[string]any) []string {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		left := strings.ToLower(strings.ReplaceAll(keys[i], "not_", ""))
		right := strings.ToLower(strings.ReplaceAll(keys[j], "not_", ""))
		if left != right {
			return left < right
		}
		return !strings.HasPrefix(keys[i], "not_")
	})
	return keys
}

func widthOrDefault(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	width, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if width == 0 {
		return fallback, nil
	}
	return width, nil
}

func popString(settings map[string]any, key string) string {
	value, ok := settings[key]
	if !ok {
		return ""
	}
	delete(settings, key)
	return stringify(value)
}

// asList parses a raw value into an ordered list of strings. Sequences
// have their elements trimmed; strings are split on commas after
// newlines are normalized to commas, dropping empty entries.
func asList(value any) []string {
	switch v := value.(type) {
	case []string:
		result := make([]string, 0, len(v))
		for _, item := range v {
			result = append(result, strings.TrimSpace(item))
		}
		return result
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			result = append(result, strings.TrimSpace(stringify(item)))
		}
		return result
	}

	var result []string
	for _, item := range strings.Split(strings.ReplaceAll(stringify(value), "\n", ","), ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// absPaths joins bare directory entries (no leading separator, trailing
// separator present) onto the config file's directory so projects can
// declare known_* packages relative to their config file.
func absPaths(cwd string, values []string) []string {
	separator := string(os.PathSeparator)
	result := make([]string, 0, len(values))
	for _, value := range values {
		if !strings.HasPrefix(value, separator) && strings.HasSuffix(value, separator) {
			result = append(result, filepath.Join(cwd, value))
		} else {
			result = append(result, value)
		}
	}
	return result
}

// union returns existing plus the added elements not already present,
// preserving first-seen order.
func union(existing, added []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(added))
	result := make([]string, 0, len(existing)+len(added))
	for _, list := range [][]string{existing, added} {
		for _, value := range list {
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			result = append(result, value)
		}
	}
	return result
}

// difference returns existing without the removed elements.
func difference(existing, removed []string) []string {
	drop := make(map[string]struct{}, len(removed))
	for _, value := range removed {
		drop[value] = struct{}{}
	}
	result := make([]string, 0, len(existing))
	for _, value := range existing {
		if _, ok := drop[value]; !ok {
			result = append(result, value)
		}
	}
	return result
}

// asBool accepts native booleans as-is and parses permissive string
// truthiness otherwise; unrecognized tokens fail with
// ErrMalformedBoolean.
func asBool(value any) (bool, error) {
	if parsed, ok := value.(bool); ok {
		return parsed, nil
	}
	switch strings.ToLower(strings.TrimSpace(stringify(value))) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrMalformedBoolean, stringify(value))
}

func asInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	return strconv.Atoi(strings.TrimSpace(stringify(value)))
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

func toStringList(value any) []string {
	if list, ok := value.([]string); ok {
		return list
	}
	return asList(value)
}
