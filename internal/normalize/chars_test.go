package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"control_chars", "\x00\x01abc\x7f", "abc"},
		{"bom", "\ufeffadenosine", "adenosine"},
		{"nbsp", "beta\u00a0receptor", "beta receptor"},
		{"whitespace_runs", "  dopamine \t d2\n receptor  ", "dopamine d2 receptor"},
		{"empty", "", ""},
		{"only_control", "\x00\x1f", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeThenTranslate(t *testing.T) {
	// Stripping the NUL and mapping the Greek letter yields plain ASCII.
	got := TranslateSpecials(Sanitize("\x00\u03b2 receptor"), nil, nil)
	assert.Equal(t, "beta receptor", got)
}

func TestFoldUnicode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "BRAF", "braf"},
		{"typographic_quotes", "5’-receptor", "5'-receptor"},
		{"long_dashes", "alpha–beta—gamma", "alpha-beta-gamma"},
		{"nfkc_fullwidth", "ＡＢＣ", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldUnicode(tt.in))
		})
	}
}

func TestFoldUnicodeIdempotent(t *testing.T) {
	inputs := []string{
		"β2-Adrenergic Receptor",
		"dopamine D2 “receptor”",
		"Ca²⁺ channel — α subunit",
		"",
	}
	for _, in := range inputs {
		once := FoldUnicode(in)
		assert.Equal(t, once, FoldUnicode(once), "not idempotent for %q", in)
	}
}

func TestTranslateSpecials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"greek", "β2 adrenergic", "beta2 adrenergic"},
		{"multiple_greek", "α and δ opioid", "alpha and delta opioid"},
		{"superscript", "ca²⁺", "ca2+"},
		{"subscript", "h₃ receptor", "h3 receptor"},
		{"passthrough", "dopamine d2", "dopamine d2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateSpecials(tt.in, nil, nil))
		})
	}
}

func TestTranslateSpecialsCustomMaps(t *testing.T) {
	greek := map[rune]string{'β': "B"}
	got := TranslateSpecials("β2", greek, nil)
	assert.Equal(t, "B2", got)
}

func TestFoldRomanNumerals(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"type_ii", "angiotensin ii receptor", "angiotensin 2 receptor"},
		{"longest_first", "factor viii", "factor 8"},
		{"never_single_v", "herpes simplex v", "herpes simplex v"},
		{"never_single_x", "factor x", "factor x"},
		{"not_inside_word", "vital", "vital"},
		{"urotensin", "urotensin ii", "urotensin 2"},
		{"xviii", "xviii", "18"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldRomanNumerals(tt.in))
		})
	}
}
