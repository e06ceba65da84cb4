package args

import (
	"regexp"
)

var placeholderPattern = regexp.MustCompile(`\$\{[^\$\{\}]+\}`)

// Substitute expands every exact "${name}" token in tokens using values
// from the table. A list-valued substitution expands its single token
// into multiple tokens; an unknown placeholder is left verbatim.
func Substitute(tokens []string, table map[string][]string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if name, ok := wholeTokenPlaceholder(tok); ok {
			if values, known := table[name]; known {
				out = append(out, values...)
				continue
			}
			out = append(out, tok)
			continue
		}
		out = append(out, substituteWithin(tok, table))
	}
	return out
}

// wholeTokenPlaceholder reports whether tok is exactly one "${name}"
// placeholder and nothing else, returning name.
func wholeTokenPlaceholder(tok string) (string, bool) {
	if len(tok) < 3 || tok[0] != '$' || tok[1] != '{' || tok[len(tok)-1] != '}' {
		return "", false
	}
	inner := tok[2 : len(tok)-1]
	if inner == "" || placeholderPattern.FindString(tok) != tok {
		return "", false
	}
	return inner, true
}

// substituteWithin replaces every placeholder found inside tok (a token
// that mixes literal text with one or more placeholders) with the first
// value of its substitution, joined back into a single token.
func substituteWithin(tok string, table map[string][]string) string {
	return placeholderPattern.ReplaceAllStringFunc(tok, func(match string) string {
		name := match[2 : len(match)-1]
		values, ok := table[name]
		if !ok || len(values) == 0 {
			return match
		}
		return values[0]
	})
}
