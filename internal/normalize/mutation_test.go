package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// substringGrammar accepts any token containing "fs" for testing the
// supplementary pass.
type substringGrammar struct{}

func (substringGrammar) Valid(token string) bool {
	return len(token) > 2 && token[len(token)-2:] == "fs"
}

func findMutations(text string, extra ...string) []string {
	return FindMutations(text, whitelistSet(extra), nil)
}

func TestFindMutations(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single_letter_triple", "BRAF V600E", []string{"V600E"}},
		{"same_letter_excluded", "AKT1 E17E", nil},
		{"hgvs_protein_short", "EGFR p.L858R", []string{"p.L858R"}},
		{"hgvs_protein_termination", "TP53 p.R196*", []string{"p.R196*"}},
		{"hgvs_deletion", "EGFR p.E746_A750del", []string{"p.E746_A750del"}},
		{"hgvs_frameshift", "p.T790fs*12", []string{"p.T790fs*12"}},
		{"hgvs_start_lost", "KIT p.Met1?", []string{"p.Met1?"}},
		{"three_letter_no_prefix", "BRAF Val600Glu", []string{"Val600Glu"}},
		{"nucleotide", "BRAF c.1799T>A", []string{"c.1799T>A"}},
		{"slash_combination", "KRAS G12D/G13D", []string{"G12D/G13D"}},
		{"delta_shorthand", "EGFR deltaE746", []string{"deltaE746"}},
		{"bare_mutant_word", "BRAF mutant", []string{"mutant"}},
		{"bare_variant_word", "splice variant", []string{"variant"}},
		{"no_mutation", "adenosine a2a receptor", nil},
		{"whitelisted_m2", "muscarinic M2", nil},
		{"whitelisted_h3", "histamine H3", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findMutations(tt.in))
		})
	}
}

func TestFindMutationsSubsumption(t *testing.T) {
	// The p.-prefixed family fires first; the bare V600E triple inside it
	// must be suppressed as a contained substring.
	got := findMutations("BRAF p.V600E")
	assert.Equal(t, []string{"p.V600E"}, got)
}

func TestFindMutationsCallerWhitelist(t *testing.T) {
	assert.Equal(t, []string{"V600E"}, findMutations("V600E"))
	assert.Nil(t, findMutations("V600E", "v600e"))
}

func TestFindMutationsGrammarSupplement(t *testing.T) {
	got := FindMutations("BRAF weirdfs", whitelistSet(nil), substringGrammar{})
	assert.Contains(t, got, "weirdfs")

	// Tokens already covered by a pattern match are not duplicated.
	got = FindMutations("BRAF V600E", whitelistSet(nil), substringGrammar{})
	assert.Equal(t, []string{"V600E"}, got)
}

func TestMutationTokenSet(t *testing.T) {
	set := MutationTokenSet([]string{"p.V600E", "Val600Glu"})
	assert.True(t, set["v600e"])
	assert.True(t, set["p"])
	assert.True(t, set["val600glu"])
	assert.False(t, set["braf"])
}
