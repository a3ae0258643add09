package setting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockStringer struct {
	val string
}

func (m mockStringer) String() string {
	return m.val
}

func TestStringOptions(t *testing.T) {
	tests := []struct {
		name     string
		input    []mockStringer
		expected []string
	}{
		{
			name:     "Empty slice",
			input:    []mockStringer{},
			expected: []string{},
		},
		{
			name:     "Single item",
			input:    []mockStringer{{val: "Option 1"}},
			expected: []string{"Option 1"},
		},
		{
			name:     "Multiple items",
			input:    []mockStringer{{val: "glide"}, {val: "snap"}, {val: "Option 3"}},
			expected: []string{"glide", "snap", "Option 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StringOptions(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestStringOptionsWithDurations(t *testing.T) {
	assert.Equal(t, []string{"1s", "2.5s"}, StringOptions([]time.Duration{time.Second, 2500 * time.Millisecond}))
}
