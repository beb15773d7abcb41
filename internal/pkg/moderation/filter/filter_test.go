package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	words := []string{"badword", "Spam"}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"token match", "this has a badword here", true},
		{"no substring match", "thisbadwordhere", false},
		{"case-insensitive text", "this has a BADWORD here", true},
		{"case-insensitive list", "some spam text", true},
		{"clean text", "perfectly fine message", false},
		{"empty text", "", false},
		{"word at start", "badword leading", true},
		{"word at end", "trailing badword", true},
		{"tabs and newlines split tokens", "one\tbadword\ntwo", true},
		{"punctuation keeps token intact", "badword, with comma", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(tt.text, words))
		})
	}
}

func TestContainsEmptyList(t *testing.T) {
	assert.False(t, Contains("anything at all", nil))
	assert.False(t, Contains("anything at all", []string{}))
	assert.False(t, Contains("anything", []string{""}))
}
