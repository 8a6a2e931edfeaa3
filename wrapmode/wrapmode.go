// Package wrapmode enumerates the multi-line output styles that can be
// applied to wrapped import statements.
package wrapmode

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode identifies one multi-line wrapping style. The numeric values are
// stable and may appear directly in configuration files.
type Mode int

const (
	Grid Mode = iota
	Vertical
	HangingIndent
	VerticalHangingIndent
	VerticalGrid
	VerticalGridGrouped
	VerticalGridGroupedNoComma
	NoQA
)

var modeNames = map[string]Mode{
	"GRID":                           Grid,
	"VERTICAL":                       Vertical,
	"HANGING_INDENT":                 HangingIndent,
	"VERTICAL_HANGING_INDENT":        VerticalHangingIndent,
	"VERTICAL_GRID":                  VerticalGrid,
	"VERTICAL_GRID_GROUPED":          VerticalGridGrouped,
	"VERTICAL_GRID_GROUPED_NO_COMMA": VerticalGridGroupedNoComma,
	"NOQA":                           NoQA,
}

// String returns the symbolic name used in configuration files.
func (m Mode) String() string {
	for name, mode := range modeNames {
		if mode == m {
			return name
		}
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// FromString resolves a configuration value to a Mode. The value may be
// either a symbolic name such as "VERTICAL_HANGING_INDENT" or the
// numeric ordinal of a mode.
func FromString(value string) (Mode, error) {
	trimmed := strings.TrimSpace(value)
	if mode, ok := modeNames[trimmed]; ok {
		return mode, nil
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil || n < int(Grid) || n > int(NoQA) {
		return Grid, fmt.Errorf("unknown wrap mode %q", value)
	}
	return Mode(n), nil
}
