package normalize

import "regexp"

// rulesCustom covers non-GPCR-family targets that show up under trivial
// names: sigma and opioid receptors, cannabinoid, muscarinic and nicotinic
// cholinergic receptors.
var rulesCustom = []CandidateRule{
	// --- Sigma ---
	{Pattern: regexp.MustCompile(`\bsigma[- ]?1\b`), Symbols: []string{"sigmar1"}},
	{Pattern: regexp.MustCompile(`\bsigma[- ]?2\b`), Symbols: []string{"tmem97"}},
	{
		Pattern: regexp.MustCompile(`\bsigma\s+receptor\b`),
		Symbols: []string{"sigmar1", "tmem97"},
		Soft:    true,
	},
	// --- Opioid ---
	{Pattern: regexp.MustCompile(`\bmu[-\s]?opioid\b|\bmor\b`), Symbols: []string{"oprm1"}},
	{Pattern: regexp.MustCompile(`\bdelta[-\s]?opioid\b|\bdor\b`), Symbols: []string{"oprd1"}},
	{Pattern: regexp.MustCompile(`\bkappa[-\s]?opioid\b|\bkor\b`), Symbols: []string{"oprk1"}},
	{
		Pattern:  regexp.MustCompile(`\bopioid\s+receptor\b`),
		Suppress: regexp.MustCompile(`\b(?:mu|delta|kappa|nociceptin)\b`),
		Symbols:  []string{"oprm1", "oprd1", "oprk1", "oprl1"},
		Soft:     true,
	},
	// --- Cannabinoid ---
	{Pattern: regexp.MustCompile(`\bcb[- ]?1\b`), Symbols: []string{"cb1", "cnr1"}},
	{Pattern: regexp.MustCompile(`\bcb[- ]?2\b`), Symbols: []string{"cb2", "cnr2"}},
	{
		Pattern:  regexp.MustCompile(`\bcannabinoid\s+receptor\b`),
		Suppress: regexp.MustCompile(`\bcb[- ]?[12]\b|\bcannabinoid\s+receptor\s+\d`),
		Symbols:  []string{"cnr1", "cnr2"},
		Soft:     true,
	},
	// --- Muscarinic cholinergic ---
	{
		Pattern: regexp.MustCompile(`\bmuscarinic\b.*\bm([1-5])\b|\bm([1-5])\b.*\bmuscarinic\b`),
		Derive: func(g []string) []string {
			n := g[1]
			if n == "" {
				n = g[2]
			}
			return []string{"chrm" + n}
		},
	},
	{
		Pattern:  regexp.MustCompile(`\bmuscarinic\b`),
		Suppress: regexp.MustCompile(`\bm[1-5]\b`),
		Symbols:  []string{"chrm1", "chrm2", "chrm3", "chrm4", "chrm5"},
		Soft:     true,
	},
	// --- Nicotinic cholinergic ---
	{
		Pattern: regexp.MustCompile(`\bnicotinic\b.*\balpha\s*(\d+)\b`),
		Derive:  func(g []string) []string { return []string{"chrna" + g[1]} },
	},
	{
		Pattern:  regexp.MustCompile(`\bnicotinic\b|\bnachr\b`),
		Suppress: regexp.MustCompile(`\balpha\s*\d`),
		Symbols:  []string{"chrna4", "chrna7", "chrnb2"},
		Soft:     true,
	},
}

// rulesIonChannel covers voltage- and ligand-gated ion channels. The
// numbered clone names (nav1.5, kv11.1, cav2.2) reach this table intact
// because the tokenizer keeps digit-internal periods.
var rulesIonChannel = []CandidateRule{
	// --- TRP ---
	{Pattern: regexp.MustCompile(`\bvanilloid\b`), Symbols: []string{"trpv1"}},
	{
		Pattern: regexp.MustCompile(`\btransient\s+receptor\s+potential\b|\btrp\s+channel\b`),
		Symbols: []string{"trpv1", "trpa1", "trpm8", "trpc3", "trpc6"},
		Soft:    true,
	},
	// --- Purinergic P2X ---
	{
		Pattern: regexp.MustCompile(`\bp2x\b`),
		Symbols: []string{"p2rx1", "p2rx2", "p2rx3", "p2rx4", "p2rx5", "p2rx6", "p2rx7"},
		Soft:    true,
	},
	// --- Voltage-gated sodium ---
	{
		Pattern: regexp.MustCompile(`\bnav\s*1\.(\d)\b`),
		Derive:  func(g []string) []string { return []string{"scn" + g[1] + "a"} },
	},
	{
		Pattern: regexp.MustCompile(`\bsodium\s+channel\b`),
		Symbols: []string{"scn1a", "scn2a", "scn5a", "scn9a", "scn10a"},
		Soft:    true,
	},
	// --- Voltage-gated potassium ---
	{
		Pattern: regexp.MustCompile(`\bkv\s*(\d+)\.(\d+)\b`),
		Derive: func(g []string) []string {
			if g[1] == "11" && g[2] == "1" {
				return []string{"kcnh2", "herg"}
			}
			prefixes := map[string]string{"1": "kcna", "2": "kcnb", "3": "kcnc", "4": "kcnd", "7": "kcnq"}
			if p, ok := prefixes[g[1]]; ok {
				return []string{p + g[2]}
			}
			return nil
		},
	},
	{Pattern: regexp.MustCompile(`\bherg\b`), Symbols: []string{"kcnh2", "herg"}},
	{Pattern: regexp.MustCompile(`\bbk\s+channel\b|\bmaxik\b`), Symbols: []string{"kcnma1"}},
	{
		Pattern: regexp.MustCompile(`\bsk\s+channel\b`),
		Symbols: []string{"kcnn1", "kcnn2", "kcnn3"},
		Soft:    true,
	},
	{Pattern: regexp.MustCompile(`\bkatp\b`), Symbols: []string{"kcnj11", "abcc8"}},
	{
		Pattern: regexp.MustCompile(`\bpotassium\s+channel\b`),
		Symbols: []string{"kcnq1", "kcna1", "kcnh2"},
		Soft:    true,
	},
	// --- Voltage-gated calcium ---
	{
		Pattern: regexp.MustCompile(`\bcav\s*(\d\.\d)\b`),
		Derive: func(g []string) []string {
			clones := map[string]string{
				"1.1": "cacna1s",
				"1.2": "cacna1c",
				"1.3": "cacna1d",
				"1.4": "cacna1f",
				"2.1": "cacna1a",
				"2.2": "cacna1b",
				"2.3": "cacna1e",
				"3.1": "cacna1g",
				"3.2": "cacna1h",
				"3.3": "cacna1i",
			}
			if sym, ok := clones[g[1]]; ok {
				return []string{sym}
			}
			return nil
		},
	},
	{
		Pattern: regexp.MustCompile(`\bcalcium\s+channel\b`),
		Symbols: []string{"cacna1c", "cacna1a", "cacna1b"},
		Soft:    true,
	},
	// --- HCN ---
	{
		Pattern: regexp.MustCompile(`\bhcn\s*([1-4])\b`),
		Derive:  func(g []string) []string { return []string{"hcn" + g[1]} },
	},
	// --- GABA ---
	{Pattern: regexp.MustCompile(`\bgaba\s*-?\s*b\b`), Symbols: []string{"gabbr1", "gabbr2"}},
	{
		Pattern: regexp.MustCompile(`\bgaba\s*-?\s*a\s+receptor\b|\bgabaa\b`),
		Symbols: []string{"gabra1", "gabrb2", "gabrg2"},
		Soft:    true,
	},
	// --- Glycine ---
	{
		Pattern: regexp.MustCompile(`\bglycine\s+receptor\b`),
		Symbols: []string{"glra1", "glra2", "glra3", "glrb"},
		Soft:    true,
	},
	// --- Ionotropic serotonin ---
	{Pattern: regexp.MustCompile(`\b5-?ht3\s+receptor\b`), Symbols: []string{"htr3a", "htr3b"}},
}
