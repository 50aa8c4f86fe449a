package normalize

import "regexp"

// rulesGPCR covers the aminergic and prostanoid GPCR families. Context
// requirements written as lookaheads in the source data ("a2a ... adenosine")
// are expressed as plain consuming alternatives, which is equivalent for
// match existence.
var rulesGPCR = []CandidateRule{
	// --- Adenosine ---
	{
		Pattern: regexp.MustCompile(`\badenosine\s+receptor\b`),
		Symbols: []string{"adora1", "adora2a", "adora2b", "adora3"},
		Soft:    true,
	},
	{
		Pattern: regexp.MustCompile(`\badenosine\s+a\s*1\b|\ba1\b.*adenosine`),
		Symbols: []string{"a1", "adora1"},
	},
	{
		Pattern: regexp.MustCompile(`\badenosine\s+a\s*2\s*a\b|\ba2a\b.*adenosine`),
		Symbols: []string{"a2a", "adora2a"},
	},
	{
		Pattern: regexp.MustCompile(`\badenosine\s+a\s*2\s*b\b|\ba2b\b.*adenosine`),
		Symbols: []string{"a2b", "adora2b"},
	},
	{
		Pattern: regexp.MustCompile(`\badenosine\s+a\s*3\b|\ba3\b.*adenosine`),
		Symbols: []string{"a3", "adora3"},
	},
	// --- Nociceptin / ORL1 ---
	{
		Pattern: regexp.MustCompile(`\bnociceptin\s+receptor\b|\borphanin\s*fq\s+receptor\b|\bnop\b|\borl1\b`),
		Symbols: []string{"nop", "orl1", "oprl1"},
	},
	// --- Neuropeptide Y ---
	{
		Pattern: regexp.MustCompile(`\bneuropeptide\s*y\s+receptor\b|\bnpy\s+receptor\b`),
		Symbols: []string{"npy1r", "npy2r", "npy4r", "npy5r"},
		Soft:    true,
	},
	{Pattern: regexp.MustCompile(`\b(?:y\s*1|npy\s*1)\b`), Symbols: []string{"y1", "npy1r"}},
	{Pattern: regexp.MustCompile(`\b(?:y\s*2|npy\s*2)\b`), Symbols: []string{"y2", "npy2r"}},
	{Pattern: regexp.MustCompile(`\b(?:y\s*4|npy\s*4)\b`), Symbols: []string{"y4", "npy4r"}},
	{Pattern: regexp.MustCompile(`\b(?:y\s*5|npy\s*5)\b`), Symbols: []string{"y5", "npy5r"}},
	// --- Melanocortin ---
	{
		Pattern: regexp.MustCompile(`\bmelanocortin\s+receptor\b|\bmcr\b`),
		Symbols: []string{"mc1r", "mc2r", "mc3r", "mc4r", "mc5r"},
		Soft:    true,
	},
	{
		Pattern: regexp.MustCompile(`\bmc\s*([1-5])\s*r?\b|\bmelanocortin\s*-\s*([1-5])\s*receptor\b`),
		Derive: func(g []string) []string {
			n := g[1]
			if n == "" {
				n = g[2]
			}
			return []string{"mc" + n + "r"}
		},
	},
	// --- Prostaglandin (EP/DP/FP/IP/TP) ---
	{
		Pattern: regexp.MustCompile(`\bprostaglandin\s+receptor\b`),
		Symbols: []string{"ptger1", "ptger2", "ptger3", "ptger4", "ptgdr", "ptgdr2", "ptgfr", "ptgir", "tbxa2r"},
		Soft:    true,
	},
	{
		Pattern: regexp.MustCompile(`\bep\s*([1-4])\b`),
		Derive: func(g []string) []string {
			return []string{"ep" + g[1], "ptger" + g[1]}
		},
	},
	{Pattern: regexp.MustCompile(`\bdp\s*1\b`), Symbols: []string{"dp1", "ptgdr"}},
	{Pattern: regexp.MustCompile(`\bdp\s*2\b|\bcrth2\b|\bgpr44\b`), Symbols: []string{"dp2", "crth2", "ptgdr2"}},
	{Pattern: regexp.MustCompile(`\bfp\b|\bpgf\s*2\s*a\b`), Symbols: []string{"fp", "ptgfr"}},
	{Pattern: regexp.MustCompile(`\bip\b|\bprostacyclin\s+receptor\b`), Symbols: []string{"ip", "ptgir"}},
	{Pattern: regexp.MustCompile(`\btp\b|\bthromboxane\s+receptor\b`), Symbols: []string{"tp", "tbxa2r"}},
}

// rulesGPCRExtra covers peptide, lipid and orphan GPCR families.
var rulesGPCRExtra = []CandidateRule{
	// Calcitonin/CGRP/Amylin (CALCR, CALCRL + RAMP)
	{
		Pattern: regexp.MustCompile(`\b(?:calcitonin|cgrp|amylin)\s+receptor\b|\bcalcrl?\b`),
		Exclude: regexp.MustCompile(`\b(?:calcitonin|cgrp|amylin)\s+receptor\s+\d`),
		Symbols: []string{"calcr", "calcrl", "ramp1", "ramp2", "ramp3"},
		Soft:    true,
	},
	{Pattern: regexp.MustCompile(`\bcgrp\b`), Symbols: []string{"calcrl", "ramp1", "ramp2", "ramp3"}},
	{Pattern: regexp.MustCompile(`\bamylin\b`), Symbols: []string{"calcr", "ramp1", "ramp2", "ramp3"}},
	// Parathyroid hormone
	{
		Pattern: regexp.MustCompile(`\bparathyroid\s+hormone\s+receptor\b|\bpth\s*receptor\b`),
		Exclude: regexp.MustCompile(`\b(?:parathyroid\s+hormone|pth)\s*receptor\s+\d`),
		Symbols: []string{"pth1r", "pth2r"},
		Soft:    true,
	},
	{Pattern: regexp.MustCompile(`\bpth\s*1\s*r?\b`), Symbols: []string{"pth1r"}},
	{Pattern: regexp.MustCompile(`\bpth\s*2\s*r?\b`), Symbols: []string{"pth2r"}},
	// Neuropeptide S
	{
		Pattern: regexp.MustCompile(`\bneuropeptide\s*s\s+receptor\b|\bnps\s*receptor\b|\bnpsr1\b`),
		Exclude: regexp.MustCompile(`\b(?:neuropeptide\s*s|nps)\s*receptor\s+\d`),
		Symbols: []string{"npsr1"},
	},
	// Neuropeptide FF
	{
		Pattern: regexp.MustCompile(`\bneuropeptide\s*ff\s+receptor\b|\bnpffr\b`),
		Exclude: regexp.MustCompile(`\bneuropeptide\s*ff\s+receptor\s+\d`),
		Symbols: []string{"npffr1", "npffr2"},
		Soft:    true,
	},
	{
		Pattern: regexp.MustCompile(`\bnpffr\s*([12])\b`),
		Derive:  func(g []string) []string { return []string{"npffr" + g[1]} },
	},
	// Neuropeptide B/W
	{
		Pattern: regexp.MustCompile(`\bneuropeptide\s*[bw]\s+receptor\b|\bnpbwr\b`),
		Exclude: regexp.MustCompile(`\bneuropeptide\s*[bw]\s+receptor\s+\d`),
		Symbols: []string{"npbwr1", "npbwr2"},
		Soft:    true,
	},
	{
		Pattern: regexp.MustCompile(`\bnpbwr\s*([12])\b`),
		Derive:  func(g []string) []string { return []string{"npbwr" + g[1]} },
	},
	// Neuromedin U
	{
		Pattern: regexp.MustCompile(`\bneuromedin\s*u\s+receptor\b|\bnmur\b`),
		Exclude: regexp.MustCompile(`\bneuromedin\s*u\s+receptor\s+\d`),
		Symbols: []string{"nmur1", "nmur2"},
		Soft:    true,
	},
	{
		Pattern: regexp.MustCompile(`\bnmur\s*([12])\b`),
		Derive:  func(g []string) []string { return []string{"nmur" + g[1]} },
	},
	// Kisspeptin
	{
		Pattern: regexp.MustCompile(`\bkisspeptin\s+receptor\b|\bgpr54\b|\bkiss1r\b`),
		Symbols: []string{"kiss1r", "gpr54"},
	},
	// Ghrelin
	{Pattern: regexp.MustCompile(`\bghrelin\s+receptor\b|\bghsr\b`), Symbols: []string{"ghsr"}},
	// Motilin
	{Pattern: regexp.MustCompile(`\bmotilin\s+receptor\b|\bmlnr\b|\bgpr38\b`), Symbols: []string{"mlnr", "gpr38"}},
	// Prolactin-releasing peptide
	{
		Pattern: regexp.MustCompile(`\bprolactin-?releasing\s+peptide\s+receptor\b|\bprlhr\b|\bgpr10\b`),
		Symbols: []string{"prlhr", "gpr10"},
	},
	// Melanin-concentrating hormone
	{
		Pattern: regexp.MustCompile(`\bmelanin-?concentrating\s+hormone\s+receptor\b|\bmchr\b`),
		Exclude: regexp.MustCompile(`\bmelanin-?concentrating\s+hormone\s+receptor\s+\d`),
		Symbols: []string{"mchr1", "mchr2"},
		Soft:    true,
	},
	{
		Pattern: regexp.MustCompile(`\bmchr\s*([12])\b`),
		Derive:  func(g []string) []string { return []string{"mchr" + g[1]} },
	},
	// Fractalkine receptor and XCR1
	{
		Pattern: regexp.MustCompile(`\bfractalkine\s+receptor\b|\bcx3cr1\b`),
		Exclude: regexp.MustCompile(`\bfractalkine\s+receptor\s+\d`),
		Symbols: []string{"cx3cr1"},
	},
	{
		Pattern: regexp.MustCompile(`\bxcr\s*1\b|\bxc\s*chemokine\s+receptor\s*1\b`),
		Symbols: []string{"xcr1"},
	},
	// Platelet-activating factor
	{
		Pattern: regexp.MustCompile(`\bplatelet-?activating\s+factor\s+receptor\b|\bptafr\b`),
		Exclude: regexp.MustCompile(`\bplatelet-?activating\s+factor\s+receptor\s+\d`),
		Symbols: []string{"ptafr"},
	},
	// Formyl peptide receptors
	{
		Pattern: regexp.MustCompile(`\bformyl\s+peptide\s+receptor\b|\bfpr\b`),
		Exclude: regexp.MustCompile(`\bformyl\s+peptide\s+receptor\s+\d`),
		Symbols: []string{"fpr1", "fpr2", "fpr3"},
		Soft:    true,
	},
	{
		Pattern: regexp.MustCompile(`\bfpr\s*([1-3])\b`),
		Derive:  func(g []string) []string { return []string{"fpr" + g[1]} },
	},
	{Pattern: regexp.MustCompile(`\balx\b`), Symbols: []string{"fpr2"}}, // FPR2/ALX
	// Free fatty acid receptors (FFAR/GPR40/41/43/120 + GPR84)
	{
		Pattern: regexp.MustCompile(`\bfree\s+fatty\s+acid\s+receptor\b|\bffar\b`),
		Exclude: regexp.MustCompile(`\bfree\s+fatty\s+acid\s+receptor\s+\d`),
		Symbols: []string{"ffar1", "ffar2", "ffar3", "ffar4", "gpr84"},
		Soft:    true,
	},
	{
		Pattern: regexp.MustCompile(`\bffar\s*([1-4])\b`),
		Derive:  func(g []string) []string { return []string{"ffar" + g[1]} },
	},
	{Pattern: regexp.MustCompile(`\bgpr\s*120\b`), Symbols: []string{"ffar4", "gpr120"}},
	{Pattern: regexp.MustCompile(`\bgpr\s*40\b`), Symbols: []string{"ffar1", "gpr40"}},
	{Pattern: regexp.MustCompile(`\bgpr\s*41\b`), Symbols: []string{"ffar3", "gpr41"}},
	{Pattern: regexp.MustCompile(`\bgpr\s*43\b`), Symbols: []string{"ffar2", "gpr43"}},
	{Pattern: regexp.MustCompile(`\bgpr\s*84\b`), Symbols: []string{"gpr84"}},
	// Hydroxycarboxylic acid receptors
	{
		Pattern: regexp.MustCompile(`\bhydroxycarboxylic\s+acid\s+receptor\b|\bhcar\b`),
		Exclude: regexp.MustCompile(`\bhydroxycarboxylic\s+acid\s+receptor\s+\d`),
		Symbols: []string{"hcar1", "hcar2", "hcar3"},
		Soft:    true,
	},
	{
		Pattern: regexp.MustCompile(`\bhcar\s*([1-3])\b`),
		Derive:  func(g []string) []string { return []string{"hcar" + g[1]} },
	},
	{Pattern: regexp.MustCompile(`\bgpr\s*81\b`), Symbols: []string{"hcar1", "gpr81"}},
	{Pattern: regexp.MustCompile(`\bgpr\s*109\s*a\b|\bhcar2\b`), Symbols: []string{"hcar2", "gpr109a"}},
	{Pattern: regexp.MustCompile(`\bgpr\s*109\s*b\b|\bhcar3\b`), Symbols: []string{"hcar3", "gpr109b"}},
	// Trace amine-associated receptors
	{
		Pattern: regexp.MustCompile(`\btrace\s+amine-?associated\s+receptor\b|\btaar\b`),
		Exclude: regexp.MustCompile(`\btrace\s+amine-?associated\s+receptor\s+\d`),
		Symbols: []string{"taar1", "taar2", "taar3", "taar4", "taar5", "taar6", "taar7", "taar8", "taar9"},
		Soft:    true,
	},
	{
		Pattern: regexp.MustCompile(`\btaar\s*([1-9])\b`),
		Derive:  func(g []string) []string { return []string{"taar" + g[1]} },
	},
	// Bile acid receptor (TGR5/GPBAR1)
	{
		Pattern: regexp.MustCompile(`\bbile\s+acid\s+receptor\b|\btgr5\b|\bgpbar1\b`),
		Exclude: regexp.MustCompile(`\bbile\s+acid\s+receptor\s+\d`),
		Symbols: []string{"gpbar1", "tgr5"},
	},
	// Urotensin II receptor
	{Pattern: regexp.MustCompile(`\burotensin\s+(?:ii|2)\s+receptor\b|\buts2r\b`), Symbols: []string{"uts2r"}},
	// Apelin receptor
	{Pattern: regexp.MustCompile(`\bapelin\s+receptor\b|\baplnr\b|\bagtrl1\b`), Symbols: []string{"aplnr"}},
}
