package normalize

import (
	"regexp"
	"strings"
)

// DefaultTaxon is the NCBI taxonomy identifier assumed when the caller
// supplies none (human). The value is passed through, never interpreted.
const DefaultTaxon = 9606

// Options configures a single normalization run.
type Options struct {
	// StripMutations removes detected mutation tokens from the output
	// streams. Default true.
	StripMutations bool
	// DetectMutations enables the mutation detector; disable for throughput
	// when mutation hints are not needed. Default true.
	DetectMutations bool
	// MutationWhitelist lists extra tokens (case-insensitive) exempt from
	// mutation stripping, on top of DefaultMutationWhitelist.
	MutationWhitelist []string
	// Taxon is recorded verbatim in the result.
	Taxon int
	// Grammar, when set, is consulted as a supplementary mutation detector.
	Grammar VariantGrammar
}

// DefaultOptions returns the options used for a plain normalization run.
func DefaultOptions() Options {
	return Options{
		StripMutations:  true,
		DetectMutations: true,
		Taxon:           DefaultTaxon,
	}
}

// Hints records what normalization removed or recognized along the way.
type Hints struct {
	Parenthetical []string `json:"parenthetical"`
	Dropped       []string `json:"dropped"`
	Mutations     []string `json:"mutations"`
	// MutationsOnly is set when stripping mutation tokens would have left
	// nothing but bare letters and digits, so the stripping was rolled back.
	MutationsOnly bool `json:"mutations_only,omitempty"`
}

// Result is the structured output of one pipeline run. It has no identity
// beyond its field values and is owned exclusively by the caller.
type Result struct {
	Raw          string
	CleanText    string
	CleanTextAlt string
	QueryTokens  []string
	// GeneLikeCandidates holds lowercase candidate gene symbols, higher
	// confidence first, first-occurrence deduplicated.
	GeneLikeCandidates []string
	HintTaxon          int
	Hints              Hints
	RulesApplied       []string
}

// A token that is a single letter or bare digits carries no residual name
// content on its own.
var trivialTokenRE = regexp.MustCompile(`^(?:[a-z]|\d+)$`)

// Normalize runs the full pipeline over one raw target name. It is a total
// function: any input string yields a well-formed (possibly empty) result.
func Normalize(name string, opts Options) Result {
	stage := Sanitize(name)

	var mutations []string
	whitelist := whitelistSet(opts.MutationWhitelist)
	stripping := opts.DetectMutations && opts.StripMutations
	if stripping {
		// The detector needs the pre-folded text so mixed-case amino-acid
		// codes survive.
		mutations = FindMutations(stage, whitelist, opts.Grammar)
	}

	stage = FoldUnicode(stage)
	stage = TranslateSpecials(stage, nil, nil)
	stage = FoldRomanNumerals(stage)
	stage, parenthetical, parenTokens := ExtractParenthetical(stage)
	if len(parenTokens) > 0 {
		stage = strings.TrimSpace(stage + " " + strings.Join(parenTokens, " "))
	}
	stage = pretokenCleanup(stage)
	stage, ruleCandidates, rulesApplied := ApplyReceptorRules(stage)

	subs := HyphenVariants(stage)
	tokensBase := Tokenize(stage)
	subs = append(subs, LetterDigitVariants(tokensBase)...)

	tokensBaseNoStop, dropped := RemoveStopWords(tokensBase)
	tokensBaseAlt := dedupTokens(tokensBase)

	tokensNoStop := append([]string(nil), tokensBaseNoStop...)
	for _, sub := range subs {
		tokensNoStop = append(tokensNoStop, sub.Variant)
	}

	mutationsOnly := false
	if stripping {
		mutationTokens := MutationTokenSet(mutations)
		keep := func(tok string) bool {
			return !mutationTokens[tok] || whitelist[tok]
		}
		strippedNoStop := filterTokens(tokensNoStop, keep)
		strippedBaseNoStop := filterTokens(tokensBaseNoStop, keep)
		strippedBaseAlt := filterTokens(tokensBaseAlt, keep)

		if hasNonTrivialToken(strippedNoStop) {
			tokensNoStop = strippedNoStop
			tokensBaseNoStop = strippedBaseNoStop
			tokensBaseAlt = strippedBaseAlt
		} else {
			// The name was essentially a bare mutation descriptor; keep the
			// original streams rather than erase its only content.
			mutationsOnly = true
		}
	}

	tokensNoStop = dedupTokens(tokensNoStop)

	cleanVariants := BuildVariantStrings(strings.Join(tokensBaseNoStop, " "), subs, parenTokens)
	cleanVariantsAlt := BuildVariantStrings(strings.Join(tokensBaseAlt, " "), subs, parenTokens)

	cleanText := strings.Join(cleanVariants, "|")
	cleanTextAlt := strings.Join(cleanVariantsAlt, "|")

	candidateText := cleanTextAlt
	if candidateText == "" {
		candidateText = cleanText
	}
	candidates := append([]string(nil), ruleCandidates...)
	for _, c := range GenerateCandidates(candidateText, tokensNoStop) {
		if !contains(candidates, c) {
			candidates = append(candidates, c)
		}
	}

	return Result{
		Raw:                name,
		CleanText:          cleanText,
		CleanTextAlt:       cleanTextAlt,
		QueryTokens:        emptyIfNil(tokensNoStop),
		GeneLikeCandidates: emptyIfNil(candidates),
		HintTaxon:          opts.Taxon,
		Hints: Hints{
			Parenthetical: emptyIfNil(parenthetical),
			Dropped:       emptyIfNil(dropped),
			Mutations:     emptyIfNil(mutations),
			MutationsOnly: mutationsOnly,
		},
		RulesApplied: emptyIfNil(rulesApplied),
	}
}

func filterTokens(tokens []string, keep func(string) bool) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if keep(tok) {
			out = append(out, tok)
		}
	}
	return out
}

func hasNonTrivialToken(tokens []string) bool {
	for _, tok := range tokens {
		if !trivialTokenRE.MatchString(tok) {
			return true
		}
	}
	return false
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
