package normalize

import (
	"regexp"
	"strings"
)

// CandidateRule is one entry of a declarative candidate table. The rule
// fires when Pattern matches. Exclude stands in for a negative lookahead
// that RE2 cannot express: it rejects a pattern occurrence only when it
// matches at that occurrence's start (the longer phrase the lookahead would
// have refused), so the rule still fires when the pattern also matched
// elsewhere in the text. Suppress skips the rule outright when it matches
// anywhere, regardless of where Pattern matched. Symbols holds a fixed
// result list; Derive, when set, computes symbols from the submatches
// instead. Soft marks low-confidence family-level inferences that are
// appended only after every non-soft result.
type CandidateRule struct {
	Pattern  *regexp.Regexp
	Exclude  *regexp.Regexp
	Suppress *regexp.Regexp
	Symbols  []string
	Derive   func(groups []string) []string
	Soft     bool
}

// captureRule expands every match of a pattern through a template with
// $1-style back-references.
type captureRule struct {
	re       *regexp.Regexp
	template string
}

var captureRules = []captureRule{
	{regexp.MustCompile(`histamine\s+h(\d+)`), "hrh$1"},
	{regexp.MustCompile(`dopamine\s+d(\d+)`), "drd$1"},
	{regexp.MustCompile(`adrenergic\s+beta(\d+)`), "adrb$1"},
	{regexp.MustCompile(`p2x(\d+)`), "p2rx$1"},
	{regexp.MustCompile(`5[- ]?ht(\d+[a-z]?)`), "htr$1"},
	{regexp.MustCompile(`gaba\s+a\s+alpha(\d+)`), "gabra$1"},
	// TRP channels (trpv/trpm/trpc/trpa/trpk)
	{regexp.MustCompile(`trp\s*([vmcak])\s*(\d+)`), "trp$1$2"},
	// Ionotropic glutamate receptors
	{regexp.MustCompile(`glua(\d)`), "gria$1"},
	{regexp.MustCompile(`gluk(\d)`), "grik$1"},
	{regexp.MustCompile(`nr(1|2[a-d]|3[a-b])`), "grin$1"},
	// Metabotropic glutamate receptors
	{regexp.MustCompile(`mglur(\d)`), "grm$1"},
	// Chemokine receptors and full forms
	{regexp.MustCompile(`ccr\s*(\d+)`), "ccr$1"},
	{regexp.MustCompile(`cxcr\s*(\d+)`), "cxcr$1"},
	{regexp.MustCompile(`chemokine\s+cc\s*(\d+)`), "ccr$1"},
	{regexp.MustCompile(`chemokine\s+cxc\s*(\d+)`), "cxcr$1"},
}

// familyRule enumerates a receptor family's subunit genes when only the
// family keyword is present and no subtype token narrows it down.
type familyRule struct {
	keywords      []string
	subtypePrefix string
	symbols       []string
}

var familyRules = []familyRule{
	{[]string{"ampa"}, "glua", []string{"gria1", "gria2", "gria3", "gria4"}},
	{[]string{"nmda"}, "nr", []string{"grin1", "grin2a", "grin2b", "grin2c", "grin2d", "grin3a", "grin3b"}},
	{[]string{"kainate"}, "gluk", []string{"grik1", "grik2", "grik3", "grik4", "grik5"}},
	{[]string{"metabotropic", "glutamate"}, "mglur", []string{"grm1", "grm2", "grm3", "grm4", "grm5", "grm6", "grm7", "grm8"}},
}

// Literal ligand-name aliases resolving to the receptors they bind.
var aliasRules = []CandidateRule{
	{Pattern: regexp.MustCompile(`sdf[- ]?1`), Symbols: []string{"cxcr4"}},
	{Pattern: regexp.MustCompile(`il[- ]?8`), Symbols: []string{"cxcr1", "cxcr2"}},
	{Pattern: regexp.MustCompile(`rantes`), Symbols: []string{"ccr1", "ccr3", "ccr5"}},
	{Pattern: regexp.MustCompile(`fractalkine`), Symbols: []string{"cx3cr1"}},
}

// evalTables runs the declarative tables in order, splitting matches into
// the normal and soft tiers. Table order is preserved within each tier; no
// re-ranking by match position.
func evalTables(text string, tables ...[]CandidateRule) (normal, soft []string) {
	for _, table := range tables {
		for _, rule := range table {
			if rule.Suppress != nil && rule.Suppress.MatchString(text) {
				continue
			}
			m := matchRule(text, rule)
			if m == nil {
				continue
			}
			syms := rule.Symbols
			if rule.Derive != nil {
				syms = rule.Derive(m)
			}
			if rule.Soft {
				soft = append(soft, syms...)
			} else {
				normal = append(normal, syms...)
			}
		}
	}
	return normal, soft
}

// matchRule returns the submatches of the first Pattern occurrence that is
// not the prefix of an Exclude match, or nil when every occurrence is
// rejected.
func matchRule(text string, rule CandidateRule) []string {
	if rule.Exclude == nil {
		return rule.Pattern.FindStringSubmatch(text)
	}
	for _, loc := range rule.Pattern.FindAllStringSubmatchIndex(text, -1) {
		if x := rule.Exclude.FindStringIndex(text[loc[0]:]); x != nil && x[0] == 0 {
			continue
		}
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}
		return groups
	}
	return nil
}

// GenerateCandidates infers gene-symbol candidates. The declarative tables
// match against text (the stop-word-retaining clean variant string); the
// capture-expansion, alias and family-fallback rules match against the
// stop-word-filtered token stream. Results are merged as: table non-soft,
// alias, capture-expansion, then the soft tier (soft table entries followed
// by family fallback), deduplicated keeping first occurrence.
func GenerateCandidates(text string, tokens []string) []string {
	lower := strings.ToLower(text)
	tokenText := strings.Join(tokens, " ")

	normal, soft := evalTables(lower, rulesGPCR, rulesGPCRExtra, rulesCustom, rulesIonChannel)

	var out []string
	add := func(symbols ...string) {
		for _, s := range symbols {
			s = strings.ToLower(s)
			if s != "" && !contains(out, s) {
				out = append(out, s)
			}
		}
	}

	add(normal...)

	for _, rule := range aliasRules {
		if rule.Pattern.MatchString(tokenText) {
			add(rule.Symbols...)
		}
	}

	for _, rule := range captureRules {
		for _, loc := range rule.re.FindAllStringSubmatchIndex(tokenText, -1) {
			add(string(rule.re.ExpandString(nil, rule.template, tokenText, loc)))
		}
	}

	add(soft...)

	for _, fr := range familyRules {
		if !tokensContainAll(tokens, fr.keywords) || anyTokenHasPrefix(tokens, fr.subtypePrefix) {
			continue
		}
		add(fr.symbols...)
	}

	return out
}

func tokensContainAll(tokens, keywords []string) bool {
	for _, kw := range keywords {
		if !contains(tokens, kw) {
			return false
		}
	}
	return true
}

func anyTokenHasPrefix(tokens []string, prefix string) bool {
	for _, tok := range tokens {
		if strings.HasPrefix(tok, prefix) {
			return true
		}
	}
	return false
}
