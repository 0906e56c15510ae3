package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_RemovesHeaderLines(t *testing.T) {
	text := "CONFIDENTIAL\nThis agreement is made between the parties named below.\nThe parties agree to the following terms."

	result := NormalizeText(text)

	assert.NotContains(t, result, "CONFIDENTIAL")
	assert.Contains(t, result, "This agreement is made between the parties named below.")
}

func TestNormalizeText_RemovesFooterLines(t *testing.T) {
	text := "This agreement is made between the parties named below.\nThe parties agree to the following terms and conditions.\n© 2024 Acme Corp. All rights reserved."

	result := NormalizeText(text)

	assert.NotContains(t, result, "All rights reserved")
	assert.Contains(t, result, "terms and conditions")
}

func TestNormalizeText_RemovesPageNumbers(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"bare number", "4"},
		{"page n", "Page 4"},
		{"n of m", "4 of 12"},
		{"n slash m", "4/12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "The first obligation of the parties is described here.\nThe second obligation of the parties is described here.\n" + tt.line + "\nThe third obligation of the parties is described here.\nThe fourth obligation of the parties is described here."

			result := NormalizeText(text)

			assert.NotContains(t, result, "\n"+tt.line+"\n")
			assert.Contains(t, result, "third obligation")
		})
	}
}

func TestNormalizeText_CollapsesWhitespace(t *testing.T) {
	text := "The  parties\tagree   to the following terms of this agreement today."

	result := NormalizeText(text)

	assert.Equal(t, "The parties agree to the following terms of this agreement today.", result)
}

func TestNormalizeText_CollapsesNewlineRuns(t *testing.T) {
	text := "The first clause of this agreement is described here.\n\n\n\nThe second clause of this agreement is described here."

	result := NormalizeText(text)

	assert.NotContains(t, result, "\n\n\n")
	assert.Contains(t, result, "first clause")
	assert.Contains(t, result, "second clause")
}

func TestNormalizeText_KeepsBodyIntact(t *testing.T) {
	body := "1. Termination. Either party may terminate this agreement with 30 days notice.\n2. Payment Terms. Client shall pay all fees monthly in advance."

	result := NormalizeText(body)

	assert.Equal(t, body, result)
}
