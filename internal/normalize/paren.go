package normalize

import (
	"regexp"
	"strings"
)

var (
	parenRE   = regexp.MustCompile(`\(([^(]*)\)|\[([^\]]*)\]|\{([^}]*)\}`)
	compactRE = regexp.MustCompile(`[\s_\-]`)
	// 1-3 alphanumerics, e.g. "h3", "cb1".
	shortTokenRE = regexp.MustCompile(`^[a-z0-9]{1,3}$`)
	// Receptor index shapes like "p2x7" or serotonin-style "5-ht1a".
	indexTokenRE = regexp.MustCompile(`^(?:[a-z]\d(?:[a-z]\d+)?|5-?ht\d+[a-z]?)$`)
)

// ExtractParenthetical removes (...)/[...]/{...} segments from text, records
// each captured inner string as a hint, and returns the short index-like
// captures that should be re-appended to the working text. Abbreviations
// like "(H3)" carry the receptor index and must not be lost with the rest
// of the bracketed annotation.
func ExtractParenthetical(text string) (clean string, hints, keep []string) {
	clean = parenRE.ReplaceAllStringFunc(text, func(seg string) string {
		for _, group := range parenRE.FindStringSubmatch(seg)[1:] {
			if group == "" {
				continue
			}
			token := strings.TrimSpace(group)
			hints = append(hints, token)
			compact := compactRE.ReplaceAllString(token, "")
			if shortTokenRE.MatchString(compact) || indexTokenRE.MatchString(compact) {
				keep = append(keep, token)
			}
		}
		return ""
	})
	return clean, hints, keep
}
