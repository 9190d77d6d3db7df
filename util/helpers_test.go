package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "Plain number", input: "800", expected: 800},
		{name: "Surrounding spaces", input: "  600 ", expected: 600},
		{name: "One", input: "1", expected: 1},
		{name: "Zero", input: "0", wantErr: true},
		{name: "Negative", input: "-5", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Letters", input: "abc", wantErr: true},
		{name: "Decimal", input: "12.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParsePositiveInt(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
