package core

import (
	"strings"

	"github.com/lib/pq"
)

// NormalizeTags trims tags and drops empty and duplicated entries, keeping the first occurrence order.
// A nil input yields an empty array so the column is never NULL.
func NormalizeTags(tags []string) pq.StringArray {
	seen := make(map[string]bool, len(tags))
	result := pq.StringArray{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}
