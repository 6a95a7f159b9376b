package documents

import "strings"

// Filter returns the documents whose title or subject contains query,
// case-insensitively. It is pure and synchronous, applied over the already
// fetched set; an empty query returns the input unchanged.
func Filter(docs []Document, query string) []Document {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return docs
	}

	out := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Title), q) ||
			strings.Contains(strings.ToLower(doc.Subject), q) {
			out = append(out, doc)
		}
	}
	return out
}
