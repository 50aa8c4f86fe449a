package hgvs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidProtein(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"short_missense", "p.V600E", true},
		{"short_nonsense", "p.R196*", true},
		{"short_synonymous", "p.G12=", true},
		{"short_frameshift", "p.T790fs*12", true},
		{"short_parenthesized", "p.(V600E)", true},
		{"long_missense", "p.Val600Glu", true},
		{"long_nonsense", "p.Gln23Ter", true},
		{"long_synonymous", "p.Gly12=", true},
		{"long_frameshift", "p.Arg97fs", true},
		{"range_deletion", "p.Lys23_Val25del", true},
		{"duplication", "p.Gly12dup", true},
		{"delins", "p.Cys28delinsTrpVal", true},
		{"insertion", "p.Lys23_Leu24insArg", true},
		{"start_lost_long", "p.Met1?", true},
		{"start_lost_short", "p.M1?", true},
		{"stop_extension", "p.*110Gln", true},
		{"bogus_code", "p.Zzz600Glu", false},
		{"bogus_range_code", "p.Lys23_Zzz25del", false},
		{"no_position", "p.ValGlu", false},
		{"missing_prefix", "V600E", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser()
			assert.Equal(t, tt.want, p.Valid(tt.token), "token %q", tt.token)
		})
	}
}

func TestValidNucleotide(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"coding_substitution", "c.1799T>A", true},
		{"genomic_substitution", "g.140453136A>T", true},
		{"coding_deletion", "c.76_78del", true},
		{"coding_insertion", "c.76_77insACT", true},
		{"intronic", "n.5+1G>A", true},
		{"duplication", "c.77dup", true},
		{"inversion", "c.76_78inv", true},
		{"not_a_variant", "c.receptor", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser()
			assert.Equal(t, tt.want, p.Valid(tt.token), "token %q", tt.token)
		})
	}
}

func TestValidRejectsPlainWords(t *testing.T) {
	p := NewParser()
	for _, token := range []string{
		"", "receptor", "histamine", "h3", "5-ht1a", "adrb2",
		"beta2-adrenergic", "nav1.5", "mutant",
	} {
		assert.False(t, p.Valid(token), "token %q", token)
	}
}

func TestZeroValueParserUsable(t *testing.T) {
	var p Parser
	assert.True(t, p.Valid("p.Val600Glu"))
}
