package transform

import (
	"strings"
	"testing"

	"github.com/ealtintas/turkish-filename-cleaner/internal/config"
)

func TestAsciify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase letters", "çğıöşü", "cgiosu"},
		{"uppercase letters", "ÇĞİÖŞÜ", "CGIOSU"},
		{"mixed word", "Çağrı Şöför", "Cagri Sofor"},
		{"ascii untouched", "already clean.txt", "already clean.txt"},
		{"unmapped accents untouched", "naïve café", "naïve café"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Asciify(tt.in)
			if got != tt.want {
				t.Errorf("Asciify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCollapseSpaces(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"documented example", " a   b  c ", " a b c "},
		{"single spaces untouched", "a b c", "a b c"},
		{"tabs and newlines", "a\t\tb\nc", "a b c"},
		{"unicode whitespace", "a  b", "a b"},
		{"no whitespace", "abc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollapseSpaces(tt.in)
			if got != tt.want {
				t.Errorf("CollapseSpaces(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnderscoreSpaces(t *testing.T) {
	if got := UnderscoreSpaces("a b  c"); got != "a_b__c" {
		t.Errorf("UnderscoreSpaces = %q, want %q", got, "a_b__c")
	}
	// Only ASCII spaces are substituted; other whitespace is left for
	// CollapseSpaces to handle first.
	if got := UnderscoreSpaces("a\tb"); got != "a\tb" {
		t.Errorf("UnderscoreSpaces should not touch tabs, got %q", got)
	}
}

func TestStripNonASCII(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"emoji removed", "photo 📷 2024.jpg", "photo  2024.jpg"},
		{"accents removed not transliterated", "çay.txt", "ay.txt"},
		{"pure ascii untouched", "plain-file_1.txt", "plain-file_1.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripNonASCII(tt.in)
			if got != tt.want {
				t.Errorf("StripNonASCII(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSafeCharsOnly(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		replaceUnsafe bool
		want          string
	}{
		{"delete mode", "a!b@c#.txt", false, "abc.txt"},
		{"replace mode", "a!b@c#.txt", true, "a_b_c_.txt"},
		{"one underscore per char", "a!!b", true, "a__b"},
		{"safe set kept", "AZaz09-_.", false, "AZaz09-_."},
		{"space is unsafe", "a b.txt", false, "ab.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeCharsOnly(tt.in, tt.replaceUnsafe)
			if got != tt.want {
				t.Errorf("SafeCharsOnly(%q, %v) = %q, want %q", tt.in, tt.replaceUnsafe, got, tt.want)
			}
		})
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces and underscore", "my file_name.txt", "myFileName.txt"},
		{"single token unchanged", "already", "already"},
		{"hidden file unchanged", ".hidden", ".hidden"},
		{"hyphen token", "foo-bar", "fooBar"},
		{"extension at last dot", "photo.backup.jpg", "photoBackup.jpg"},
		{"uppercase folded", "MY FILE.TXT", "myFile.TXT"},
		{"leading separator", "-a", "A"},
		{"trailing bare dot dropped", "name.", "name"},
		{"digits kept in tokens", "track 01 intro.mp3", "track01Intro.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CamelCase(tt.in)
			if got != tt.want {
				t.Errorf("CamelCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Lowercase, safe-chars delete mode, and strip-non-ASCII must be idempotent.
func TestIdempotence(t *testing.T) {
	inputs := []string{"Çay Evi 2024!.TXT", "a!b@c#.txt", "photo 📷.jpg", "plain.txt", ""}
	for _, in := range inputs {
		if once, twice := Lowercase(in), Lowercase(Lowercase(in)); once != twice {
			t.Errorf("Lowercase not idempotent on %q: %q vs %q", in, once, twice)
		}
		if once, twice := SafeCharsOnly(in, false), SafeCharsOnly(SafeCharsOnly(in, false), false); once != twice {
			t.Errorf("SafeCharsOnly not idempotent on %q: %q vs %q", in, once, twice)
		}
		if once, twice := StripNonASCII(in), StripNonASCII(StripNonASCII(in)); once != twice {
			t.Errorf("StripNonASCII not idempotent on %q: %q vs %q", in, once, twice)
		}
	}
}

func TestProcessName_PipelineOrder(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() config.Config
		in   string
		want string
	}{
		{
			"asciify then collapse then underscore then lowercase",
			func() config.Config {
				cfg := config.DefaultConfig()
				cfg.CollapseSpaces = true
				cfg.Underscore = true
				cfg.Lowercase = true
				return cfg
			},
			"Çay   Evi.TXT", "cay_evi.txt",
		},
		{
			"safe-chars runs before lowercase",
			func() config.Config {
				cfg := config.DefaultConfig()
				cfg.SafeCharsOnly = true
				cfg.ReplaceUnsafe = true
				cfg.Lowercase = true
				return cfg
			},
			"A B.TXT", "a_b.txt",
		},
		{
			"camelcase runs last",
			func() config.Config {
				cfg := config.DefaultConfig()
				cfg.Lowercase = true
				cfg.CamelCase = true
				return cfg
			},
			"My File.TXT", "myFile.txt",
		},
		{
			"asciify feeds strip-non-ascii",
			func() config.Config {
				cfg := config.DefaultConfig()
				cfg.StripNonASCII = true
				return cfg
			},
			"şeker 🍬.txt", "seker .txt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg()
			got := ProcessName(tt.in, &cfg)
			if got != tt.want {
				t.Errorf("ProcessName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProcessName_AllDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Asciify = false
	in := "çılgın Dosya  adı!.TXT"
	if got := ProcessName(in, &cfg); got != in {
		t.Errorf("ProcessName with no steps enabled = %q, want input unchanged", got)
	}
}

func TestEnabledSteps_Order(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CamelCase = true
	cfg.CollapseSpaces = true

	got := EnabledSteps(&cfg)
	want := []string{"asciify", "collapse-spaces", "camelcase"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("EnabledSteps = %v, want %v", got, want)
	}
}

func TestNoStepIntroducesSeparator(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CollapseSpaces = true
	cfg.Underscore = true
	cfg.StripNonASCII = true
	cfg.SafeCharsOnly = true
	cfg.ReplaceUnsafe = true
	cfg.Lowercase = true
	cfg.CamelCase = true

	inputs := []string{"Çay Evi.txt", "a!b@c", "  spaced  ", "🎉party🎉"}
	for _, in := range inputs {
		if got := ProcessName(in, &cfg); strings.ContainsRune(got, '/') {
			t.Errorf("ProcessName(%q) = %q contains a path separator", in, got)
		}
	}
}
