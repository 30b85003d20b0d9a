package catalog

import "strings"

// MatchPrefix returns the items starting with input, ignoring case, keeping
// their order. A limit of zero or less means no limit.
func MatchPrefix(items []string, input string, limit int) []string {
	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]string, 0)
	for _, item := range items {
		if limit > 0 && len(matches) >= limit {
			break
		}
		if strings.HasPrefix(strings.ToLower(item), prefix) {
			matches = append(matches, item)
		}
	}
	return matches
}
