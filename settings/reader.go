package settings

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
)

// readConfigFile reads the requested sections of one config file into a
// flat raw-settings mapping. Results are memoized per
// (path, requested-sections); within one process the file is parsed at
// most once per section set, even under concurrent callers.
func (r *Resolver) readConfigFile(path string, sections []string) (map[string]any, error) {
	key := path + "\x00" + strings.Join(sections, ",")

	r.mu.RLock()
	cached, ok := r.rawCache[key]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := r.group.Do("raw\x00"+key, func() (any, error) {
		parsed, err := r.parseConfigFile(path, sections)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.rawCache[key] = parsed
		r.mu.Unlock()
		return parsed, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(map[string]any), nil
}

func (r *Resolver) parseConfigFile(path string, sections []string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if strings.HasSuffix(path, ".toml") {
		return r.parseTOMLSections(path, data, sections)
	}

	if strings.HasSuffix(path, ".editorconfig") {
		// Tolerate malformed files with content before the first
		// section header by starting the parse at that header.
		data = trimToFirstSection(data)
	}
	return parseINISections(path, data, sections)
}

// parseTOMLSections treats each requested section as a dotted key path
// into the document (e.g. "tool.isort"). Missing path segments yield an
// empty contribution; a segment that resolves to something other than a
// table is reported as a non-fatal diagnostic and ignored.
func (r *Resolver) parseTOMLSections(path string, data []byte, sections []string) (map[string]any, error) {
	var document map[string]any
	if err := toml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
	}

	settings := make(map[string]any)
	for _, section := range sections {
		var node any = document
		found := true
		for _, segment := range strings.Split(section, ".") {
			table, ok := node.(map[string]any)
			if !ok {
				r.logger.Warn().Str("file", path).Str("section", section).
					Msg("config section path does not lead to a table, ignoring")
				found = false
				break
			}
			child, ok := table[segment]
			if !ok {
				found = false
				break
			}
			node = child
		}
		if !found {
			continue
		}

		table, ok := node.(map[string]any)
		if !ok {
			r.logger.Warn().Str("file", path).Str("section", section).
				Msg("config section is not a table, ignoring")
			continue
		}
		for key, value := range table {
			settings[key] = value
		}
	}
	return settings, nil
}

// parseINISections reads section-delimited key=value text tolerantly:
// malformed lines are skipped and duplicate section headers merged. For
// each requested section present in the file, its pairs are merged into
// the result, later-requested sections overriding earlier ones.
func parseINISections(path string, data []byte, sections []string) (map[string]any, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		SkipUnrecognizableLines: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	settings := make(map[string]any)
	for _, name := range sections {
		section, err := file.GetSection(name)
		if err != nil {
			continue
		}
		for _, key := range section.Keys() {
			settings[key.Name()] = key.Value()
		}
	}
	return settings, nil
}

// trimToFirstSection drops everything before the first line containing
// a section header. Files without any header contribute nothing.
func trimToFirstSection(data []byte) []byte {
	offset := 0
	for offset < len(data) {
		lineEnd := bytes.IndexByte(data[offset:], '\n')
		var line []byte
		next := len(data)
		if lineEnd < 0 {
			line = data[offset:]
		} else {
			line = data[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		}
		if bytes.ContainsRune(line, '[') {
			return data[offset:]
		}
		offset = next
	}
	return nil
}
