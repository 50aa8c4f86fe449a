// Package hgvs provides a lightweight syntactic validator for HGVS-style
// sequence variant notation. It checks notation shape only; it does not
// resolve references or verify coordinates.
package hgvs

import (
	"regexp"
	"strings"
)

// threeLetterCodes lists the amino-acid codes accepted in protein notation,
// including the Ter stop and Xaa unknown placeholders.
var threeLetterCodes = map[string]bool{
	"Ala": true, "Arg": true, "Asn": true, "Asp": true, "Cys": true,
	"Gln": true, "Glu": true, "Gly": true, "His": true, "Ile": true,
	"Leu": true, "Lys": true, "Met": true, "Phe": true, "Pro": true,
	"Ser": true, "Sec": true, "Thr": true, "Trp": true, "Tyr": true,
	"Val": true, "Ter": true, "Xaa": true,
}

var (
	// p.V600E, p.V600*, p.V600=, p.V600fs*12
	proteinShortRE = regexp.MustCompile(`^p\.\(?([A-Z])(\d+)([A-Z*=]|fs\*?\d*)\)?$`)
	// p.Val600Glu, p.Gln23Ter, p.Gly12=, p.Arg97fs, plus del/ins/dup/delins
	// ranges such as p.Lys23_Val25del.
	proteinLongRE = regexp.MustCompile(
		`^p\.\(?([A-Z][a-z]{2})(\d+)(?:_([A-Z][a-z]{2})(\d+))?([A-Z][a-z]{2}|=|\*|fs(?:\*\d*)?|del|dup|delins[A-Za-z]*|ins[A-Za-z]+)\)?$`)
	proteinStartLostRE = regexp.MustCompile(`^p\.(?:Met1|M1)\?$`)
	proteinExtRE       = regexp.MustCompile(`^p\.\*(\d+)([A-Z][a-z]{2}|[A-Z])(?:ext\*?\d*)?$`)
	// c.1799T>A, g.140453136A>T, c.76_78del, c.76_77insACT, n.5+1G>A
	nucleotideRE = regexp.MustCompile(
		`^[cgnmr]\.[0-9*+-]+(?:_[0-9*+-]+)?(?:[ACGTUacgtu]>[ACGTUacgtu]|delins[ACGTUacgtu]*|del[ACGTUacgtu]*|ins[ACGTUacgtu]+|dup[ACGTUacgtu]*|inv)$`)
)

// Parser validates variant-notation tokens. The zero value is ready to use
// and safe for concurrent use.
type Parser struct{}

// NewParser returns a ready-to-use parser.
func NewParser() *Parser {
	return &Parser{}
}

// Valid reports whether token is syntactically valid HGVS-style variant
// notation. Plain words, gene symbols and receptor indices are rejected.
func (p *Parser) Valid(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}

	if proteinStartLostRE.MatchString(token) || proteinShortRE.MatchString(token) {
		return true
	}
	if m := proteinLongRE.FindStringSubmatch(token); m != nil {
		return validCode(m[1]) && (m[3] == "" || validCode(m[3])) && validSuffix(m[5])
	}
	if m := proteinExtRE.FindStringSubmatch(token); m != nil {
		return len(m[2]) == 1 || validCode(m[2])
	}
	return nucleotideRE.MatchString(token)
}

func validCode(code string) bool {
	return threeLetterCodes[code]
}

// validSuffix accepts either an amino-acid code or one of the operator
// suffixes already constrained by the pattern.
func validSuffix(s string) bool {
	if len(s) == 3 && s[0] >= 'A' && s[0] <= 'Z' {
		return threeLetterCodes[s]
	}
	return true
}
