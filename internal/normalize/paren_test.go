package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractParenthetical(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantClean string
		wantHints []string
		wantKeep  []string
	}{
		{
			name:      "short_index_kept",
			in:        "histamine receptor (h3)",
			wantClean: "histamine receptor ",
			wantHints: []string{"h3"},
			wantKeep:  []string{"h3"},
		},
		{
			name:      "long_annotation_dropped",
			in:        "dopamine receptor (g protein coupled)",
			wantClean: "dopamine receptor ",
			wantHints: []string{"g protein coupled"},
			wantKeep:  nil,
		},
		{
			name:      "square_brackets",
			in:        "serotonin [5-ht1a] receptor",
			wantClean: "serotonin  receptor",
			wantHints: []string{"5-ht1a"},
			wantKeep:  []string{"5-ht1a"},
		},
		{
			name:      "curly_braces",
			in:        "receptor {p2x7}",
			wantClean: "receptor ",
			wantHints: []string{"p2x7"},
			wantKeep:  []string{"p2x7"},
		},
		{
			name:      "multiple_segments",
			in:        "x (m2) y [long annotation here]",
			wantClean: "x  y ",
			wantHints: []string{"m2", "long annotation here"},
			wantKeep:  []string{"m2"},
		},
		{
			name:      "inner_whitespace_compacted_for_check",
			in:        "receptor (h 3)",
			wantClean: "receptor ",
			wantHints: []string{"h 3"},
			wantKeep:  []string{"h 3"},
		},
		{
			name:      "no_brackets",
			in:        "plain name",
			wantClean: "plain name",
			wantHints: nil,
			wantKeep:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, hints, keep := ExtractParenthetical(tt.in)
			assert.Equal(t, tt.wantClean, clean)
			assert.Equal(t, tt.wantHints, hints)
			assert.Equal(t, tt.wantKeep, keep)
		})
	}
}
