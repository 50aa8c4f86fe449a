package normalize

import (
	"regexp"
	"strings"
)

// VariantGrammar is an optional external parser consulted for additional
// mutation-like tokens. Implementations must be safe for concurrent use.
// A nil grammar disables the supplementary pass.
type VariantGrammar interface {
	Valid(token string) bool
}

// mutationPattern is one pattern family of the detector. The families are
// applied in declaration order; earlier families win overlap conflicts.
type mutationPattern struct {
	re *regexp.Regexp
	// sameLetter skips matches whose first and last captured letters are
	// equal: a no-op substitution such as "A123A" is not a variant marker.
	sameLetter bool
	// noPDotPrefix skips matches directly preceded by "p." (handled in code
	// since RE2 has no lookbehind).
	noPDotPrefix bool
}

var mutationPatterns = []mutationPattern{
	{re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+[A-Z]`)},
	{re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+(?:\*|Ter)`)},
	{re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+(?:_[A-Z][0-9]+)?del`)},
	{re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+_[A-Z][0-9]+ins[A-Z]+`)},
	{re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+(?:_[A-Z][0-9]+)?dup`)},
	{re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+fs(?:\*[0-9]+)?`)},
	{re: regexp.MustCompile(`(?i)p\.Met1\?`)},
	{re: regexp.MustCompile(`(?i)p\.\*[0-9]+[A-Z]`)},
	{re: regexp.MustCompile(`(?i)p\.[A-Z][0-9]+(?:_[A-Z][0-9]+)?delins[A-Z]+`)},
	{re: regexp.MustCompile(`(?i)p\.[A-Z][a-z]{2}[0-9]+(?:[A-Z][a-z]{2}|\*|Ter)`)},
	{re: regexp.MustCompile(`(?i)\b([A-Z])(\d+)([A-Z])\b`), sameLetter: true},
	{re: regexp.MustCompile(`(?i)[A-Z][a-z]{2}[0-9]+(?:[A-Z][a-z]{2}|\*|Ter)\b`), noPDotPrefix: true},
	{re: regexp.MustCompile(`(?i)\b[pcgnmr]\.[0-9]+[+-]?[0-9]*(?:_[+-]?[0-9]+)?(?:[ACGT]>[ACGT]|delins|del|ins|dup|inv|fs\*?[0-9]*)\b`)},
	{re: regexp.MustCompile(`(?i)\b(?:[A-Z][0-9]+[A-Z])(?:/[A-Z][0-9]+[A-Z])+\b`)},
	{re: regexp.MustCompile(`(?i)(?:Δ|delta)\s?[A-Z][0-9]+`)},
	{re: regexp.MustCompile(`(?i)\b(mutant|variant|mut\.)\b`)},
}

// DefaultMutationWhitelist lists tokens shaped like mutations that are
// legitimate receptor or subunit identifiers and are never stripped.
var DefaultMutationWhitelist = []string{
	"m2",
	"h3",
	"d2",
	"p2x7",
	"p2x",
	"5-ht1a",
	"alpha1",
	"beta2",
}

// whitelistSet merges the default whitelist with caller extras, lowercased.
func whitelistSet(extra []string) map[string]bool {
	wl := make(map[string]bool, len(DefaultMutationWhitelist)+len(extra))
	for _, t := range DefaultMutationWhitelist {
		wl[t] = true
	}
	for _, t := range extra {
		wl[strings.ToLower(strings.TrimSpace(t))] = true
	}
	return wl
}

// FindMutations extracts mutation-like substrings from text in pattern-family
// priority order, then left to right. It must run on the pre-folded text so
// mixed-case amino-acid codes survive for matching. Whitelisted tokens are
// skipped; shorter matches contained in an already-accepted longer match are
// suppressed, and accepted matches contained in a later longer match are
// purged. When a grammar is supplied, each whitespace-delimited token it
// accepts is appended unless already covered.
func FindMutations(text string, whitelist map[string]bool, grammar VariantGrammar) []string {
	var found []string

	containedInFound := func(lower string) bool {
		for _, f := range found {
			if strings.Contains(strings.ToLower(f), lower) {
				return true
			}
		}
		return false
	}

	for _, mp := range mutationPatterns {
		for _, loc := range mp.re.FindAllStringSubmatchIndex(text, -1) {
			token := text[loc[0]:loc[1]]
			if mp.sameLetter {
				first := text[loc[2]:loc[3]]
				last := text[loc[6]:loc[7]]
				if strings.EqualFold(first, last) {
					continue
				}
			}
			if mp.noPDotPrefix && loc[0] >= 2 && strings.EqualFold(text[loc[0]-2:loc[0]], "p.") {
				continue
			}
			lower := strings.ToLower(token)
			if whitelist[lower] {
				continue
			}
			if containedInFound(lower) {
				continue
			}
			kept := found[:0]
			for _, f := range found {
				if !strings.Contains(lower, strings.ToLower(f)) {
					kept = append(kept, f)
				}
			}
			found = kept
			if !contains(found, token) {
				found = append(found, token)
			}
		}
	}

	if grammar != nil {
		for _, tok := range strings.Fields(text) {
			lower := strings.ToLower(tok)
			if whitelist[lower] || containedInFound(lower) {
				continue
			}
			if grammar.Valid(tok) {
				found = append(found, tok)
			}
		}
	}

	return found
}

// MutationTokenSet re-normalizes the captured mutation substrings through the
// character pipeline and tokenizes them, yielding the lowercase token set to
// subtract from the working token streams.
func MutationTokenSet(mutations []string) map[string]bool {
	tokens := make(map[string]bool)
	for _, mut := range mutations {
		s := FoldUnicode(mut)
		s = TranslateSpecials(s, nil, nil)
		s = FoldRomanNumerals(s)
		for _, tok := range Tokenize(s) {
			tokens[tok] = true
		}
	}
	return tokens
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
