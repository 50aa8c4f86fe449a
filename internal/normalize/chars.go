// Package normalize implements the target-name normalization pipeline:
// character folding, structural extraction, mutation detection, receptor
// rewrite rules and gene-symbol candidate generation.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// GreekLetters maps Greek characters to their spelled-out ASCII names.
// Callers may pass their own map to TranslateSpecials to override it.
var GreekLetters = map[rune]string{
	'α': "alpha",
	'β': "beta",
	'γ': "gamma",
	'δ': "delta",
	'ε': "epsilon",
	'ζ': "zeta",
	'η': "eta",
	'θ': "theta",
	'ι': "iota",
	'κ': "kappa",
	'λ': "lambda",
	'μ': "mu",
	'ν': "nu",
	'ξ': "xi",
	'ο': "omicron",
	'π': "pi",
	'ρ': "rho",
	'σ': "sigma",
	'τ': "tau",
	'υ': "upsilon",
	'φ': "phi",
	'χ': "chi",
	'ψ': "psi",
	'ω': "omega",
}

// Superscripts maps superscript and subscript digits to plain ASCII digits.
var Superscripts = map[rune]string{
	'¹': "1",
	'²': "2",
	'³': "3",
	'⁴': "4",
	'⁵': "5",
	'⁶': "6",
	'⁷': "7",
	'⁸': "8",
	'⁹': "9",
	'⁰': "0",
	'₁': "1",
	'₂': "2",
	'₃': "3",
	'₄': "4",
	'₅': "5",
	'₆': "6",
	'₇': "7",
	'₈': "8",
	'₉': "9",
	'₀': "0",
}

var (
	controlCharsRE = regexp.MustCompile("[\\x00-\\x1f\\x7f]")
	multiSpaceRE   = regexp.MustCompile(`[\s\t]+`)
	typoQuotesRE   = regexp.MustCompile("[“”«»„’]")
	longDashRE     = regexp.MustCompile("[–—]")
)

// Sanitize strips control characters and the BOM, replaces non-breaking
// spaces, collapses whitespace runs and trims the result.
func Sanitize(text string) string {
	text = controlCharsRE.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\ufeff", "")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = multiSpaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// FoldUnicode applies NFKC normalization, lowercases, and maps typographic
// quotes to an apostrophe and en/em dashes to a plain hyphen. Idempotent.
func FoldUnicode(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ToLower(text)
	text = typoQuotesRE.ReplaceAllString(text, "'")
	text = longDashRE.ReplaceAllString(text, "-")
	return text
}

// TranslateSpecials rewrites Greek letters and superscript/subscript digits
// in one pass. Nil maps select the built-in tables. FoldUnicode should run
// first so variants like the micro sign collapse onto the Greek mu.
func TranslateSpecials(text string, greek, superscripts map[rune]string) string {
	if greek == nil {
		greek = GreekLetters
	}
	if superscripts == nil {
		superscripts = Superscripts
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if s, ok := greek[r]; ok {
			b.WriteString(s)
			continue
		}
		if s, ok := superscripts[r]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// romanNumerals covers whole-word numerals II through XX. Single-letter
// numerals (v, x) are excluded so gene symbols are not corrupted.
var romanNumerals = map[string]string{
	"ii":    "2",
	"iii":   "3",
	"iv":    "4",
	"vi":    "6",
	"vii":   "7",
	"viii":  "8",
	"ix":    "9",
	"xi":    "11",
	"xii":   "12",
	"xiii":  "13",
	"xiv":   "14",
	"xv":    "15",
	"xvi":   "16",
	"xvii":  "17",
	"xviii": "18",
	"xix":   "19",
	"xx":    "20",
}

// Longest alternatives first so "viii" is never clipped to "vii".
var romanNumeralRE = regexp.MustCompile(
	`\b(xviii|xvii|xiii|viii|xvi|xiv|xix|xii|vii|iii|xv|xi|ix|vi|xx|ii|iv)\b`)

// FoldRomanNumerals replaces standalone Roman numerals with digits.
// The input must already be lower-cased.
func FoldRomanNumerals(text string) string {
	return romanNumeralRE.ReplaceAllStringFunc(text, func(tok string) string {
		return romanNumerals[tok]
	})
}
