// Package transform implements the filename transform pipeline: pure
// string functions composed in a fixed order. Transforms consume and
// produce single path segments; none of them can fail and none may
// introduce a path separator.
package transform

import "github.com/ealtintas/turkish-filename-cleaner/internal/config"

// Step pairs a transform with the config toggle that enables it. Steps are
// applied by [ProcessName] in table order; the order is part of the
// contract and is never derived from how options were specified.
type Step struct {
	Name    string
	Enabled func(cfg *config.Config) bool
	Apply   func(name string, cfg *config.Config) string
}

// Steps is the fixed pipeline. Asciify runs first so later ASCII-only
// steps see the transliterated characters; camel-case runs last so it
// tokenizes the fully cleaned name.
var Steps = []Step{
	{
		Name:    "asciify",
		Enabled: func(cfg *config.Config) bool { return cfg.Asciify },
		Apply:   func(name string, _ *config.Config) string { return Asciify(name) },
	},
	{
		Name:    "collapse-spaces",
		Enabled: func(cfg *config.Config) bool { return cfg.CollapseSpaces },
		Apply:   func(name string, _ *config.Config) string { return CollapseSpaces(name) },
	},
	{
		Name:    "underscore",
		Enabled: func(cfg *config.Config) bool { return cfg.Underscore },
		Apply:   func(name string, _ *config.Config) string { return UnderscoreSpaces(name) },
	},
	{
		Name:    "strip-non-ascii",
		Enabled: func(cfg *config.Config) bool { return cfg.StripNonASCII },
		Apply:   func(name string, _ *config.Config) string { return StripNonASCII(name) },
	},
	{
		Name:    "safe-chars-only",
		Enabled: func(cfg *config.Config) bool { return cfg.SafeCharsOnly },
		Apply:   func(name string, cfg *config.Config) string { return SafeCharsOnly(name, cfg.ReplaceUnsafe) },
	},
	{
		Name:    "lowercase",
		Enabled: func(cfg *config.Config) bool { return cfg.Lowercase },
		Apply:   func(name string, _ *config.Config) string { return Lowercase(name) },
	},
	{
		Name:    "camelcase",
		Enabled: func(cfg *config.Config) bool { return cfg.CamelCase },
		Apply:   func(name string, _ *config.Config) string { return CamelCase(name) },
	},
}

// ProcessName applies every enabled pipeline step, in table order, to a
// single path segment and returns the resulting name.
func ProcessName(name string, cfg *config.Config) string {
	for _, st := range Steps {
		if st.Enabled(cfg) {
			name = st.Apply(name, cfg)
		}
	}
	return name
}

// EnabledSteps returns the names of the steps active under cfg, in
// pipeline order. Used for run-header reporting.
func EnabledSteps(cfg *config.Config) []string {
	var names []string
	for _, st := range Steps {
		if st.Enabled(cfg) {
			names = append(names, st.Name)
		}
	}
	return names
}
