package settings

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"isort/wrapmode"
)

// maxConfigSearchDepth bounds how many parent directories are examined
// when looking for a project-local configuration file.
const maxConfigSearchDepth = 25

// DefaultSections is the default import section order. Unlike every
// other list-typed setting, section order is meaningful.
var DefaultSections = []string{"FUTURE", "STDLIB", "THIRDPARTY", "FIRSTPARTY", "LOCALFOLDER"}

// Config is the fully resolved, immutable configuration record. Every
// field corresponds to one entry of the default table; list fields hold
// order-irrelevant values except Sections, which preserves the supplied
// order verbatim.
//
// None of the known_* lists need to be complete; they are fallbacks for
// when import auto-detection fails.
type Config struct {
	PyVersion                           string        `toml:"py_version"`
	ForceToTop                          []string      `toml:"force_to_top"`
	Skip                                []string      `toml:"skip"`
	SkipGlob                            []string      `toml:"skip_glob"`
	LineLength                          int           `toml:"line_length"`
	WrapLength                          int           `toml:"wrap_length"`
	LineEnding                          string        `toml:"line_ending"`
	Sections                            []string      `toml:"sections"`
	NoSections                          bool          `toml:"no_sections"`
	KnownFutureLibrary                  []string      `toml:"known_future_library"`
	KnownThirdParty                     []string      `toml:"known_third_party"`
	KnownFirstParty                     []string      `toml:"known_first_party"`
	KnownStandardLibrary                []string      `toml:"known_standard_library"`
	MultiLineOutput                     wrapmode.Mode `toml:"multi_line_output"`
	ForcedSeparate                      []string      `toml:"forced_separate"`
	Indent                              string        `toml:"indent"`
	CommentPrefix                       string        `toml:"comment_prefix"`
	LengthSort                          bool          `toml:"length_sort"`
	AddImports                          []string      `toml:"add_imports"`
	RemoveImports                       []string      `toml:"remove_imports"`
	ReverseRelative                     bool          `toml:"reverse_relative"`
	ForceSingleLine                     bool          `toml:"force_single_line"`
	DefaultSection                      string        `toml:"default_section"`
	ImportHeadingFuture                 string        `toml:"import_heading_future"`
	ImportHeadingStdlib                 string        `toml:"import_heading_stdlib"`
	ImportHeadingThirdparty             string        `toml:"import_heading_thirdparty"`
	ImportHeadingFirstparty             string        `toml:"import_heading_firstparty"`
	ImportHeadingLocalfolder            string        `toml:"import_heading_localfolder"`
	BalancedWrapping                    bool          `toml:"balanced_wrapping"`
	UseParentheses                      bool          `toml:"use_parentheses"`
	OrderByType                         bool          `toml:"order_by_type"`
	Atomic                              bool          `toml:"atomic"`
	LinesAfterImports                   int           `toml:"lines_after_imports"`
	LinesBetweenSections                int           `toml:"lines_between_sections"`
	LinesBetweenTypes                   int           `toml:"lines_between_types"`
	CombineAsImports                    bool          `toml:"combine_as_imports"`
	CombineStar                         bool          `toml:"combine_star"`
	KeepDirectAndAsImports              bool          `toml:"keep_direct_and_as_imports"`
	IncludeTrailingComma                bool          `toml:"include_trailing_comma"`
	FromFirst                           bool          `toml:"from_first"`
	Verbose                             bool          `toml:"verbose"`
	Quiet                               bool          `toml:"quiet"`
	ForceAdds                           bool          `toml:"force_adds"`
	ForceAlphabeticalSortWithinSections bool          `toml:"force_alphabetical_sort_within_sections"`
	ForceAlphabeticalSort               bool          `toml:"force_alphabetical_sort"`
	ForceGridWrap                       int           `toml:"force_grid_wrap"`
	ForceSortWithinSections             bool          `toml:"force_sort_within_sections"`
	ShowDiff                            bool          `toml:"show_diff"`
	IgnoreWhitespace                    bool          `toml:"ignore_whitespace"`
	NoLinesBefore                       []string      `toml:"no_lines_before"`
	NoInlineSort                        bool          `toml:"no_inline_sort"`
	IgnoreComments                      bool          `toml:"ignore_comments"`
	SafetyExcludes                      bool          `toml:"safety_excludes"`
	CaseSensitive                       bool          `toml:"case_sensitive"`
}

// defaultSettings returns a fresh copy of the default table. It is the
// merge baseline and, through buildPolicies, the type oracle for
// coercing raw file values.
func defaultSettings() map[string]any {
	return map[string]any{
		"force_to_top":                            []string{},
		"skip":                                    []string{},
		"skip_glob":                               []string{},
		"line_length":                             79,
		"wrap_length":                             0,
		"line_ending":                             "",
		"sections":                                append([]string(nil), DefaultSections...),
		"no_sections":                             false,
		"known_future_library":                    []string{"__future__"},
		"known_third_party":                       []string{"google.appengine.api"},
		"known_first_party":                       []string{},
		"known_standard_library":                  []string{},
		"multi_line_output":                       wrapmode.Grid,
		"forced_separate":                         []string{},
		"indent":                                  strings.Repeat(" ", 4),
		"comment_prefix":                          "  #",
		"length_sort":                             false,
		"add_imports":                             []string{},
		"remove_imports":                          []string{},
		"reverse_relative":                        false,
		"force_single_line":                       false,
		"default_section":                         "FIRSTPARTY",
		"import_heading_future":                   "",
		"import_heading_stdlib":                   "",
		"import_heading_thirdparty":               "",
		"import_heading_firstparty":               "",
		"import_heading_localfolder":              "",
		"balanced_wrapping":                       false,
		"use_parentheses":                         false,
		"order_by_type":                           true,
		"atomic":                                  false,
		"lines_after_imports":                     -1,
		"lines_between_sections":                  1,
		"lines_between_types":                     0,
		"combine_as_imports":                      false,
		"combine_star":                            false,
		"keep_direct_and_as_imports":              false,
		"include_trailing_comma":                  false,
		"from_first":                              false,
		"verbose":                                 false,
		"quiet":                                   false,
		"force_adds":                              false,
		"force_alphabetical_sort_within_sections": false,
		"force_alphabetical_sort":                 false,
		"force_grid_wrap":                         0,
		"force_sort_within_sections":              false,
		"show_diff":                               false,
		"ignore_whitespace":                       false,
		"no_lines_before":                         []string{},
		"no_inline_sort":                          false,
		"ignore_comments":                         false,
		"safety_excludes":                         true,
		"case_sensitive":                          false,
	}
}

// valueKind tags the declared type of a setting.
type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindBool
	kindStringList
	kindWrapMode
)

// fieldPolicy captures how values for one setting are coerced and
// merged. The table is derived once from the default values, so merge
// never has to sniff types at runtime.
type fieldPolicy struct {
	kind       valueKind
	ordered    bool // replace wholesale, preserving supplied order
	absolutize bool // bare directory entries are joined onto the config file's directory
}

var fieldPolicies = buildPolicies()

func buildPolicies() map[string]fieldPolicy {
	policies := make(map[string]fieldPolicy)
	for name, value := range defaultSettings() {
		policy := fieldPolicy{absolutize: strings.HasPrefix(name, "known_")}
		switch value.(type) {
		case []string:
			policy.kind = kindStringList
		case bool:
			policy.kind = kindBool
		case int:
			policy.kind = kindInt
		case wrapmode.Mode:
			policy.kind = kindWrapMode
		default:
			policy.kind = kindString
		}
		if name == "sections" {
			policy.ordered = true
		}
		policies[name] = policy
	}
	return policies
}

// decodeConfig converts a fully merged settings mapping into the typed
// configuration record. Keys without a corresponding field (permissive
// passthrough of unrecognized settings) are dropped here.
func decodeConfig(merged map[string]any) (*Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "toml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create settings decoder: %w", err)
	}
	if err := decoder.Decode(merged); err != nil {
		return nil, fmt.Errorf("failed to decode resolved settings: %w", err)
	}
	return &cfg, nil
}
