package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into transforms, walk behavior, display, and utility.
// Negated flags (e.g. --no-asciify) are applied after Parse so Config
// defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseFlags parses args (os.Args[1:]) into cfg. On --help or --version it
// prints and exits. On error it returns non-nil (e.g. unknown flag, missing
// target directory). version is shown in help and --version output.
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("tfclean", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	// Negated/override flags: we capture bools then apply to cfg after
	// Parse, so that defaults from DefaultConfig() hold unless the user
	// passes the flag.
	var negated negatedFlags

	defineTransformFlags(fs, cfg, &negated)
	defineWalkFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "tfclean v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (noAsciify -> Asciify=false), override the
// verbosity counter (quiet), or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noAsciify   bool
	quiet       bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineTransformFlags registers the per-step toggles in pipeline order.
func defineTransformFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.noAsciify, "no-asciify", false, "Disable Turkish-to-ASCII transliteration")
	fs.BoolVar(&n.noAsciify, "n", false, "Same as --no-asciify")
	fs.BoolVar(&cfg.CollapseSpaces, "collapse-spaces", false, "Collapse whitespace runs into a single space")
	fs.BoolVar(&cfg.CollapseSpaces, "s", false, "Same as --collapse-spaces")
	fs.BoolVar(&cfg.Underscore, "underscore", false, "Replace spaces with underscores")
	fs.BoolVar(&cfg.Underscore, "u", false, "Same as --underscore")
	fs.BoolVar(&cfg.StripNonASCII, "strip-non-ascii", false, "Remove all non-ASCII characters (like emojis)")
	fs.BoolVar(&cfg.StripNonASCII, "a", false, "Same as --strip-non-ascii")
	fs.BoolVar(&cfg.SafeCharsOnly, "safe-chars-only", false, "Allow only safe chars (a-zA-Z0-9-_.), remove others")
	fs.BoolVar(&cfg.SafeCharsOnly, "S", false, "Same as --safe-chars-only")
	fs.BoolVar(&cfg.ReplaceUnsafe, "replace-unsafe", false, "Replace unsafe chars with underscore instead of removing")
	fs.BoolVar(&cfg.ReplaceUnsafe, "U", false, "Same as --replace-unsafe")
	fs.BoolVar(&cfg.Lowercase, "lowercase", false, "Lowercase all filenames")
	fs.BoolVar(&cfg.Lowercase, "l", false, "Same as --lowercase")
	fs.BoolVar(&cfg.CamelCase, "camelcase", false, "Convert base name to camelCase (after other transforms)")
	fs.BoolVar(&cfg.CamelCase, "c", false, "Same as --camelcase")
}

// defineWalkFlags registers dry-run, process-dirs, and the extension list.
func defineWalkFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not rename anything")
	fs.BoolVar(&cfg.DryRun, "D", false, "Same as --dry-run")
	fs.BoolVar(&cfg.ProcessDirs, "process-dirs", false, "Rename directories too")
	fs.BoolVar(&cfg.ProcessDirs, "d", false, "Same as --process-dirs")
	fs.Var(&extListValue{&cfg.Extensions}, "ext", "Only process files with these extensions (repeatable, comma-separated)")
	fs.Var(&extListValue{&cfg.Extensions}, "e", "Same as --ext")
}

// defineDisplayFlags registers verbosity, quiet, color, and --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.Var(&countValue{&cfg.Verbosity}, "verbose", "Increase verbosity (repeatable)")
	fs.Var(&countValue{&cfg.Verbosity}, "v", "Same as --verbose")
	fs.BoolVar(&n.quiet, "quiet", false, "Report errors only")
	fs.BoolVar(&n.quiet, "q", false, "Same as --quiet")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noAsciify {
		cfg.Asciify = false
	}
	if n.quiet {
		cfg.Verbosity = 0
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets TargetDir from the single positional arg.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if len(args) != 1 {
		return fmt.Errorf("need exactly one target directory")
	}
	cfg.TargetDir = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "tfclean v" + version + " - clean and asciify Turkish filenames in a directory tree"},
		{"", ""},
		{"  tfclean [OPTIONS] <target_dir>", ""},
		{"", ""},
		{"Transforms (applied in this order)", ""},
		{"  -n, --no-asciify", "Disable Turkish asciify (default: on)"},
		{"  -s, --collapse-spaces", "Collapse whitespace runs into one space"},
		{"  -u, --underscore", "Replace spaces with underscores"},
		{"  -a, --strip-non-ascii", "Remove all non-ASCII characters"},
		{"  -S, --safe-chars-only", "Keep only a-zA-Z0-9-_. characters"},
		{"  -U, --replace-unsafe", "With -S: replace unsafe chars with _"},
		{"  -l, --lowercase", "Lowercase all filenames"},
		{"  -c, --camelcase", "camelCase the base name"},
		{"", ""},
		{"Walk behavior", ""},
		{"  -D, --dry-run", "Preview only; do not rename anything"},
		{"  -d, --process-dirs", "Rename directories too"},
		{"  -e, --ext <list>", "Only process files with these extensions"},
		{"", ""},
		{"Display", ""},
		{"  -v, --verbose", "Increase verbosity (use -v -v for skip reporting)"},
		{"  -q, --quiet", "Report errors only"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"", ""},
		{"Utility", ""},
		{"  --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters for the repeatable verbosity counter and the
// extension list.

// countValue increments its target each time the flag appears, so
// "-v -v" raises verbosity by two.
type countValue struct{ p *int }

func (c *countValue) String() string {
	if c.p == nil {
		return ""
	}
	return strconv.Itoa(*c.p)
}
func (c *countValue) Set(string) error { *c.p++; return nil }
func (c *countValue) IsBoolFlag() bool { return true }

// extListValue appends extensions; each occurrence may carry a
// comma-separated list ("-e .jpg,.png -e .txt").
type extListValue struct{ p *[]string }

func (e *extListValue) String() string {
	if e.p == nil {
		return ""
	}
	return strings.Join(*e.p, ",")
}

func (e *extListValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			*e.p = append(*e.p, part)
		}
	}
	return nil
}
