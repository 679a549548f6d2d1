// Package docs embeds the plain-text reference articles served by
// 'mecheck docs': the MEC lexical rules, the record families, step
// merging, reference resolution, and the report taxonomy.
package docs

import (
	"fmt"
	"strings"
)

// Topic holds a single documentation article.
type Topic struct {
	Name    string // short slug used as CLI argument
	Title   string // human-readable title
	Summary string // one-line description for topic listing
	Content string // full article text (plain text, no ANSI)
}

// All returns every topic in display order.
func All() []Topic {
	return topics
}

// Get looks up a topic by slug, case-insensitively since slugs arrive
// as CLI arguments. Returns an error with a hint if not found.
func Get(name string) (Topic, error) {
	slug := strings.ToLower(name)
	for _, t := range topics {
		if t.Name == slug {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("unknown topic %q — run 'mecheck docs' to list available topics", name)
}
