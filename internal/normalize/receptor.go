package normalize

import "regexp"

// ReceptorRule rewrites one literal receptor-family phrase and names the
// gene symbol it implies. The matched pattern is recorded for audit.
type ReceptorRule struct {
	Pattern     *regexp.Regexp
	Replacement string
	Candidate   string
}

var receptorRules = []ReceptorRule{
	{regexp.MustCompile(`beta2\s+adrenergic\s+receptor`), "beta2 adrenergic", "adrb2"},
	{regexp.MustCompile(`dopamine\s+d2\s+receptor`), "dopamine d2", "drd2"},
	{regexp.MustCompile(`serotonin\s+5-ht1a\s+receptor`), "5-ht1a serotonin", "htr1a"},
	{regexp.MustCompile(`histamine\s+h3\s+receptor`), "histamine h3", "hrh3"},
}

// ApplyReceptorRules applies the literal receptor rewrite rules in table
// order. Every rule that matches rewrites the text in place and contributes
// its candidate symbol and pattern source; multiple rules may fire.
func ApplyReceptorRules(text string) (rewritten string, candidates, applied []string) {
	for _, r := range receptorRules {
		if r.Pattern.MatchString(text) {
			text = r.Pattern.ReplaceAllString(text, r.Replacement)
			candidates = append(candidates, r.Candidate)
			applied = append(applied, r.Pattern.String())
		}
	}
	return text, candidates, applied
}
