package transform

import (
	"regexp"
	"strings"
)

// reNonAlnum matches runs of non-alphanumeric ASCII; these are the token
// boundaries for camel-casing. Empty leading/trailing tokens are kept by
// Split, so a name like "-a" yields ["", "a"].
var reNonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// CamelCase converts the base name (before the last period) to camelCase.
// The first token is lowercased in full; every later token is capitalized
// (first character upper, remainder lower) and the tokens are joined with
// no separator. The extension is reattached with a single period only when
// non-empty, so "name." becomes "name". When splitting yields no tokens the
// name is returned unchanged.
func CamelCase(name string) string {
	base, ext := name, ""
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		base, ext = name[:idx], name[idx+1:]
	}

	tokens := reNonAlnum.Split(base, -1)
	if len(tokens) == 0 {
		return name
	}

	var b strings.Builder
	b.Grow(len(base))
	b.WriteString(strings.ToLower(tokens[0]))
	for _, t := range tokens[1:] {
		b.WriteString(capitalize(t))
	}

	if ext != "" {
		return b.String() + "." + ext
	}
	return b.String()
}

// capitalize uppercases the first character and lowercases the rest.
// Tokens are pure ASCII alphanumerics (the split pattern guarantees it),
// so byte indexing is safe.
func capitalize(t string) string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(t[:1]) + strings.ToLower(t[1:])
}
