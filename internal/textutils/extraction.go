// Package textutils provides text assembly helpers for extracted documents.
package textutils

import "strings"

// JoinPages concatenates per-page texts into the single document text the
// balance scanner runs over. Each non-empty page contributes its text plus a
// trailing newline; pages whose extraction yielded nothing contribute
// nothing. Page order is preserved.
func JoinPages(pages []string) string {
	var b strings.Builder
	for _, page := range pages {
		if page == "" {
			continue
		}
		b.WriteString(page)
		b.WriteString("\n")
	}
	return b.String()
}

// Snippet shortens a text to at most n runes for log output.
func Snippet(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
