package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "valid task with positive ID",
			task:     Task{ID: 1, Title: "delectus aut autem"},
			expected: true,
		},
		{
			name:     "invalid task with zero ID",
			task:     Task{ID: 0, Title: "orphan"},
			expected: false,
		},
		{
			name:     "invalid task with negative ID",
			task:     Task{ID: -4},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_Status(t *testing.T) {
	assert.Equal(t, "Completed", Task{Completed: true}.Status())
	assert.Equal(t, "In Progress", Task{Completed: false}.Status())
}

func TestTask_WithCompleted(t *testing.T) {
	original := Task{ID: 3, Title: "fugiat veniam minus", UserID: 1}

	updated := original.WithCompleted(true)

	assert.True(t, updated.Completed)
	assert.False(t, original.Completed, "original must not change")
	assert.Equal(t, original.Title, updated.Title)
	assert.Equal(t, "fugiat veniam minus", updated.String())
}

func TestOverrides_Effective(t *testing.T) {
	overrides := Overrides{1: true, 2: false}

	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"override true wins over remote false", Task{ID: 1, Completed: false}, true},
		{"override false wins over remote true", Task{ID: 2, Completed: true}, false},
		{"no override keeps remote true", Task{ID: 3, Completed: true}, true},
		{"no override keeps remote false", Task{ID: 4, Completed: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, overrides.Effective(tt.task))
			assert.Equal(t, tt.expected, overrides.Apply(tt.task).Completed)
		})
	}
}

func TestOverrides_NilMap(t *testing.T) {
	var overrides Overrides

	assert.True(t, overrides.Effective(Task{ID: 1, Completed: true}))

	clone := overrides.Clone()
	clone[1] = false
	assert.Len(t, clone, 1)
}

func TestOverrides_Clone(t *testing.T) {
	original := Overrides{5: true}
	clone := original.Clone()
	clone[5] = false
	clone[6] = true

	assert.Equal(t, Overrides{5: true}, original)
}

func TestTheme(t *testing.T) {
	theme, ok := ParseTheme(" Dark ")
	assert.True(t, ok)
	assert.Equal(t, ThemeDark, theme)
	assert.True(t, theme.IsDark())
	assert.Equal(t, ThemeLight, theme.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())

	_, ok = ParseTheme("sepia")
	assert.False(t, ok)
}

func TestPage_IsEmpty(t *testing.T) {
	assert.True(t, Page{Number: 1}.IsEmpty())
	assert.False(t, Page{Number: 3, TotalItems: 4}.IsEmpty())
}
