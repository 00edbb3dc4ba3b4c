package summarizer

import "strings"

// ParseActionItems extracts discrete bullet items from a model response.
// Per trimmed non-blank line: lines already starting with a bullet glyph are
// kept as-is; otherwise, only while no item has been collected and the line
// does not begin with "no" (guards against "No action items..." echoes), the
// line is kept with a "- " prefix. Everything else is dropped.
//
// The first-line-only auto-bullet rule is preserved deliberately; downstream
// consumers depend on the current leniency.
func ParseActionItems(text string) []string {
	items := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") {
			items = append(items, line)
		} else if len(items) == 0 && !strings.HasPrefix(strings.ToLower(line), "no") {
			items = append(items, "- "+line)
		}
	}
	return items
}
