package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CollapseSpaces replaces every maximal run of whitespace characters
// (any Unicode whitespace) with a single ASCII space. Leading and
// trailing single spaces are preserved.
func CollapseSpaces(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	inRun := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		b.WriteRune(r)
		inRun = false
	}
	return b.String()
}

// UnderscoreSpaces replaces every ASCII space with an underscore.
func UnderscoreSpaces(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// StripNonASCII deletes every character above the 7-bit ASCII range.
// This is a deletion, not a transliteration.
func StripNonASCII(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isSafeChar reports membership in the safe filename character set:
// ASCII letters, digits, hyphen, underscore, and period.
func isSafeChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '.':
		return true
	}
	return false
}

// SafeCharsOnly restricts the name to the safe character set. Each unsafe
// character is deleted, or replaced with a single underscore when
// replaceUnsafe is set. Applied to the whole name including any extension.
func SafeCharsOnly(name string, replaceUnsafe bool) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case isSafeChar(r):
			b.WriteRune(r)
		case replaceUnsafe:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Lowercase maps the name to lowercase using standard case folding.
func Lowercase(name string) string {
	return strings.ToLower(name)
}
