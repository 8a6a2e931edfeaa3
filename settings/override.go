package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// Prepare resolves the file-based configuration for path and applies
// programmatic overrides on top, returning the immutable typed record.
//
// Override keys follow the same naming convention as config files: a
// not_ prefix removes the named elements from a list-typed setting,
// other list-typed keys union, and everything else replaces. A
// py_version override selects the standard-library set and is consumed
// before resolution. When force_alphabetical_sort is set, four
// dependent settings are forced after all other overrides have been
// applied, even ones given explicitly in the same call.
func (r *Resolver) Prepare(path string, overrides map[string]any) (*Config, error) {
	pyVersion := ""
	remaining := make(map[string]any, len(overrides))
	for key, value := range overrides {
		if key == "py_version" {
			pyVersion = stringify(value)
			continue
		}
		remaining[key] = value
	}

	resolved, err := r.FromPath(path, pyVersion)
	if err != nil {
		return nil, err
	}

	// The cached mapping is shared; work on a copy.
	config := make(map[string]any, len(resolved))
	for key, value := range resolved {
		config[key] = value
	}

	for _, key := range orderedKeys(remaining) {
		value := remaining[key]
		accessKey := strings.ToLower(strings.ReplaceAll(key, "not_", ""))
		current, ok := config[accessKey].([]string)
		if ok && accessKey != "sections" {
			if strings.HasPrefix(key, "not_") {
				config[accessKey] = difference(current, asList(value))
			} else {
				config[accessKey] = union(current, asList(value))
			}
		} else {
			config[key] = value
		}
	}

	if isTruthy(config["force_alphabetical_sort"]) {
		config["force_alphabetical_sort_within_sections"] = true
		config["no_sections"] = true
		config["lines_between_types"] = 1
		config["from_first"] = true
	}

	indent := stringify(config["indent"])
	if isDigits(indent) {
		width, err := strconv.Atoi(indent)
		if err != nil {
			return nil, fmt.Errorf("invalid indent override %q: %w", indent, err)
		}
		indent = strings.Repeat(" ", width)
	} else {
		indent = stripQuotes(indent)
		if strings.EqualFold(indent, "tab") {
			indent = "\t"
		}
	}
	config["indent"] = indent
	config["comment_prefix"] = stripQuotes(stringify(config["comment_prefix"]))

	return decodeConfig(config)
}

func isTruthy(value any) bool {
	if parsed, ok := value.(bool); ok {
		return parsed
	}
	parsed, err := asBool(value)
	return err == nil && parsed
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// stripQuotes removes one layer of surrounding quote characters.
func stripQuotes(value string) string {
	return strings.Trim(strings.Trim(value, "'"), `"`)
}
