package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"simple", "Monarch", "monarch"},
		{"spaces to hyphens", "Monarch Jhansi", "monarch-jhansi"},
		{"collapse whitespace", "  A   B  ", "a-b"},
		{"strip special characters", "Café Crème!!", "caf-crme"},
		{"collapse hyphens", "a---b--c", "a-b-c"},
		{"trim edge hyphens", "-edge-", "edge"},
		{"mixed", "  The  Corner—Store #1 ", "the-cornerstore-1"},
		{"only invalid characters", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}
