package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePageable(t *testing.T) {
	tests := []struct {
		name       string
		page       string
		size       string
		wantNumber int
		wantSize   int
	}{
		{"defaults when both absent", "", "", 0, 5},
		{"page 1 maps to 0", "1", "10", 0, 10},
		{"page 3 maps to 2", "3", "10", 2, 10},
		{"page 0 falls back", "0", "10", 0, 10},
		{"negative page falls back", "-4", "10", 0, 10},
		{"non-numeric page falls back", "abc", "10", 0, 10},
		{"whitespace page is trimmed", " 2 ", "10", 1, 10},
		{"size upper bound kept", "1", "100", 0, 100},
		{"size above max falls back", "1", "101", 0, 5},
		{"size 0 falls back", "1", "0", 0, 5},
		{"negative size falls back", "1", "-3", 0, 5},
		{"non-numeric size falls back", "1", "xyz", 0, 5},
		{"size 1 kept", "1", "1", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreatePageable(tt.page, tt.size)
			assert.Equal(t, tt.wantNumber, got.Number)
			assert.Equal(t, tt.wantSize, got.Size)
		})
	}
}

func TestCreatePageableSizeInvariant(t *testing.T) {
	// whatever goes in, Size must end up within [1, MaxPageSize]
	inputs := []string{"", "0", "-1", "1", "5", "100", "101", "99999", "NaN", " 50 "}
	for _, raw := range inputs {
		got := CreatePageable("1", raw)
		assert.GreaterOrEqual(t, got.Size, 1, "size input %q", raw)
		assert.LessOrEqual(t, got.Size, MaxPageSize, "size input %q", raw)
	}
}
