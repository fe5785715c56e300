package textutils_test

import (
	"testing"

	"fjacquet/saldo-xlsx/internal/textutils"

	"github.com/stretchr/testify/assert"
)

func TestJoinPages(t *testing.T) {
	tests := []struct {
		name     string
		pages    []string
		expected string
	}{
		{
			name:     "single page gains a trailing newline",
			pages:    []string{"04/09/25 123 SALDO DIA 500,00 C 15.043,90 C"},
			expected: "04/09/25 123 SALDO DIA 500,00 C 15.043,90 C\n",
		},
		{
			name:     "pages keep their order",
			pages:    []string{"first page", "second page", "third page"},
			expected: "first page\nsecond page\nthird page\n",
		},
		{
			name:     "empty pages contribute nothing",
			pages:    []string{"first page", "", "third page"},
			expected: "first page\nthird page\n",
		},
		{
			name:     "all pages empty",
			pages:    []string{"", "", ""},
			expected: "",
		},
		{
			name:     "no pages",
			pages:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textutils.JoinPages(tt.pages))
		})
	}
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "short", textutils.Snippet("short", 10))
	assert.Equal(t, "exact", textutils.Snippet("exact", 5))
	assert.Equal(t, "abc...", textutils.Snippet("abcdef", 3))
	assert.Equal(t, "", textutils.Snippet("", 5))
}
