package saldoparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealPageExtractor_RejectsGarbage(t *testing.T) {
	extractor := NewRealPageExtractor()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "plain text", data: []byte("this is not a pdf")},
		{name: "empty input", data: []byte{}},
		{name: "truncated header", data: []byte("%PDF-1.7\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := extractor.ExtractPages(tt.data)
			require.Error(t, err)
			assert.Nil(t, pages)
		})
	}
}

func TestMockPageExtractor(t *testing.T) {
	t.Run("returns predefined pages", func(t *testing.T) {
		want := []string{"page one", "page two"}
		extractor := NewMockPageExtractor(want, nil)

		pages, err := extractor.ExtractPages([]byte("ignored"))
		require.NoError(t, err)
		assert.Equal(t, want, pages)
	})

	t.Run("returns predefined error", func(t *testing.T) {
		wantErr := errors.New("boom")
		extractor := NewMockPageExtractor(nil, wantErr)

		pages, err := extractor.ExtractPages([]byte("ignored"))
		assert.Equal(t, wantErr, err)
		assert.Nil(t, pages)
	})
}

func TestPageExtractor_Implementations(t *testing.T) {
	var _ PageExtractor = (*RealPageExtractor)(nil)
	var _ PageExtractor = (*MockPageExtractor)(nil)
}
