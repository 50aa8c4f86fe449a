package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

// StopWords are domain filler words removed from the query token stream.
// The dropped set is preserved separately for the audit hints.
var StopWords = map[string]bool{
	"protein":   true,
	"receptor":  true,
	"channel":   true,
	"isoform":   true,
	"fragment":  true,
	"subunit":   true,
	"chain":     true,
	"precursor": true,
	"like":      true,
	"putative":  true,
	"probable":  true,
	"predicted": true,
	"family":    true,
}

var (
	hyphenSpaceRE = regexp.MustCompile(`\s*-\s*`)
	hyphenTokenRE = regexp.MustCompile(`\b[a-z0-9]+(?:-[a-z0-9]+)+\b`)
	// A bare "letter space digit" (or reverse) residue means joining was
	// incomplete; such a base string is not offered as a canonical variant.
	letterDigitSplitRE = regexp.MustCompile(`\b(?:[a-z]\s+\d+|\d+\s+[a-z])\b`)
)

// Substitution pairs a spelling variant with the space-separated base
// pattern it replaces within the cleaned text.
type Substitution struct {
	Variant string
	Base    string
}

func isTokenDelim(r rune) bool {
	switch r {
	case '-', '_', '/', ',', ':', ';', '.':
		return true
	}
	return unicode.IsSpace(r)
}

// Tokenize splits text on whitespace, hyphen, underscore, slash, comma,
// colon, semicolon and period. A period or comma between two digits is not
// a split point, so numeric identifiers like "nav1.5" survive whole.
func Tokenize(text string) []string {
	runes := []rune(text)
	var tokens []string
	var cur strings.Builder
	for i, r := range runes {
		if isTokenDelim(r) {
			if (r == '.' || r == ',') && i > 0 && i+1 < len(runes) &&
				unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
				cur.WriteRune(r)
				continue
			}
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

// RemoveStopWords filters tokens against StopWords, returning the kept and
// dropped streams in their original order.
func RemoveStopWords(tokens []string) (kept, dropped []string) {
	for _, tok := range tokens {
		if StopWords[tok] {
			dropped = append(dropped, tok)
		} else {
			kept = append(kept, tok)
		}
	}
	return kept, dropped
}

// pretokenCleanup glues spaces around hyphens before splitting.
func pretokenCleanup(text string) string {
	return hyphenSpaceRE.ReplaceAllString(text, "-")
}

func isAlphaToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isDigitToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// LetterDigitVariants emits concatenated and hyphenated joins for every
// adjacent (alphabetic, numeric) token pair, tagged with the space-separated
// base pattern they substitute.
func LetterDigitVariants(tokens []string) []Substitution {
	var variants []Substitution
	for i := 0; i+1 < len(tokens); i++ {
		left, right := tokens[i], tokens[i+1]
		if isAlphaToken(left) && isDigitToken(right) {
			base := left + " " + right
			variants = append(variants,
				Substitution{Variant: left + right, Base: base},
				Substitution{Variant: left + "-" + right, Base: base})
		}
	}
	return variants
}

// HyphenVariants finds hyphen-joined alphanumeric tokens in text and emits
// both the hyphenated original and its concatenated form.
func HyphenVariants(text string) []Substitution {
	var variants []Substitution
	for _, token := range hyphenTokenRE.FindAllString(text, -1) {
		base := strings.ReplaceAll(token, "-", " ")
		variants = append(variants,
			Substitution{Variant: token, Base: base},
			Substitution{Variant: strings.ReplaceAll(token, "-", ""), Base: base})
	}
	return variants
}

// BuildVariantStrings generates the ordered unique variant strings for one
// token stream: the base string (unless it still contains an unjoined
// letter/digit split), each substitution applied to the base, each
// substitution standalone, and any extra standalone tokens.
func BuildVariantStrings(base string, subs []Substitution, extra []string) []string {
	var variants []string
	base = strings.TrimSpace(base)
	if base != "" && !letterDigitSplitRE.MatchString(base) {
		variants = append(variants, base)
	}
	for _, sub := range subs {
		if base != "" && strings.Contains(base, sub.Base) {
			variants = append(variants, strings.ReplaceAll(base, sub.Base, sub.Variant))
		}
		variants = append(variants, sub.Variant)
	}
	variants = append(variants, extra...)

	var out []string
	for _, v := range variants {
		v = strings.TrimSpace(v)
		if v != "" && !contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// dedupTokens removes duplicates while preserving first-occurrence order.
func dedupTokens(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	var out []string
	for _, tok := range tokens {
		if !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}
