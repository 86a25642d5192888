package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Field
		expectedError bool
	}{
		{
			name:     "word",
			input:    "word",
			expected: FieldWord,
		},
		{
			name:     "translation",
			input:    "translation",
			expected: FieldTranslation,
		},
		{
			name:          "case sensitive",
			input:         "Word",
			expectedError: true,
		},
		{
			name:          "empty",
			input:         "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := ParseField(tt.input)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, field)
				assert.Equal(t, tt.input, field.String())
			}
		})
	}
}

func TestField_Of(t *testing.T) {
	entry := Entry{Word: "manzana", Translation: "mela"}

	assert.Equal(t, "manzana", FieldWord.Of(entry))
	assert.Equal(t, "mela", FieldTranslation.Of(entry))
}
