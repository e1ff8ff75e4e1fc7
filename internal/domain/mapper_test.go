package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridesMapper_ToStorage(t *testing.T) {
	mapper := NewOverridesMapper()

	stored, err := mapper.ToStorage(Overrides{5: true, 12: false})
	require.NoError(t, err)

	var raw map[string]bool
	require.NoError(t, json.Unmarshal([]byte(stored), &raw))
	assert.Equal(t, map[string]bool{"5": true, "12": false}, raw)
}

func TestOverridesMapper_ToStorageEmpty(t *testing.T) {
	stored, err := NewOverridesMapper().ToStorage(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", stored)
}

func TestOverridesMapper_FromStorage(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		expected Overrides
	}{
		{
			name:     "empty string is an empty map",
			stored:   "",
			expected: Overrides{},
		},
		{
			name:     "well formed object",
			stored:   `{"5":true,"7":false}`,
			expected: Overrides{5: true, 7: false},
		},
		{
			name:     "invalid json is an empty map",
			stored:   `{"5":tru`,
			expected: Overrides{},
		},
		{
			name:     "json array is an empty map",
			stored:   `[true,false]`,
			expected: Overrides{},
		},
		{
			name:     "non integer keys are skipped",
			stored:   `{"abc":true,"3":true}`,
			expected: Overrides{3: true},
		},
		{
			name:     "non positive keys are skipped",
			stored:   `{"0":true,"-2":true,"8":false}`,
			expected: Overrides{8: false},
		},
		{
			name:     "non boolean values are skipped",
			stored:   `{"1":"yes","2":1,"3":null,"4":true}`,
			expected: Overrides{4: true},
		},
	}

	mapper := NewOverridesMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapper.FromStorage(tt.stored))
		})
	}
}

func TestOverridesMapper_RoundTrip(t *testing.T) {
	mapper := NewOverridesMapper()
	original := Overrides{1: true, 200: false}

	stored, err := mapper.ToStorage(original)
	require.NoError(t, err)

	assert.Equal(t, original, mapper.FromStorage(stored))
}

func TestThemeMapper(t *testing.T) {
	mapper := NewMapper().Theme

	assert.Equal(t, "dark", mapper.ToStorage(ThemeDark))
	assert.Equal(t, ThemeDark, mapper.FromStorage("dark"))
	assert.Equal(t, ThemeLight, mapper.FromStorage(""))
	assert.Equal(t, ThemeLight, mapper.FromStorage("neon"))
}
