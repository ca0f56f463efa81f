// Package classnames composes CSS class lists for components.
package classnames

import "strings"

// Merge joins class lists in argument order. Each input may hold several
// whitespace-separated classes; empty tokens and exact repeats are dropped,
// keeping the first occurrence, so later inputs can only add classes and win
// conflicts through cascade order.
func Merge(inputs ...string) string {
	total := 0
	for _, input := range inputs {
		total += len(input) + 1
	}
	var b strings.Builder
	b.Grow(total)
	seen := make(map[string]struct{}, len(inputs))
	for _, input := range inputs {
		for _, class := range strings.Fields(input) {
			if _, ok := seen[class]; ok {
				continue
			}
			seen[class] = struct{}{}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(class)
		}
	}
	return b.String()
}

// Split returns the individual classes of a class attribute value.
func Split(value string) []string {
	return strings.Fields(value)
}
