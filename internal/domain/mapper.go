package domain

import (
	"encoding/json"
	"strconv"

	"task-viewer/internal/logging"
)

// OverridesMapper handles conversion between the Overrides map and its stored
// JSON form: one object mapping task id (as a string key) to a boolean.
type OverridesMapper struct{}

// NewOverridesMapper creates a new OverridesMapper instance.
func NewOverridesMapper() *OverridesMapper {
	return &OverridesMapper{}
}

// ToStorage encodes the map as a JSON object.
func (m *OverridesMapper) ToStorage(overrides Overrides) (string, error) {
	raw := make(map[string]bool, len(overrides))
	for id, completed := range overrides {
		raw[strconv.FormatInt(id, 10)] = completed
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromStorage decodes a stored JSON object. Decoding is permissive: content that
// is not a JSON object yields an empty map, and entries whose key is not a
// positive integer or whose value is not a boolean are dropped so those tasks
// fall back to their remote completion flag.
func (m *OverridesMapper) FromStorage(stored string) Overrides {
	overrides := make(Overrides)
	if stored == "" {
		return overrides
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stored), &raw); err != nil {
		logging.Debugf("ignoring malformed overrides: %v\n", err)
		return overrides
	}

	for key, value := range raw {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil || id <= 0 {
			logging.Debugf("ignoring override with key %q\n", key)
			continue
		}
		var completed *bool
		if err := json.Unmarshal(value, &completed); err != nil || completed == nil {
			logging.Debugf("ignoring override %d with value %s\n", id, value)
			continue
		}
		overrides[id] = *completed
	}
	return overrides
}

// ThemeMapper handles conversion between Theme and its stored form.
type ThemeMapper struct{}

// NewThemeMapper creates a new ThemeMapper instance.
func NewThemeMapper() *ThemeMapper {
	return &ThemeMapper{}
}

// ToStorage returns the stored form of the theme.
func (m *ThemeMapper) ToStorage(theme Theme) string {
	return theme.String()
}

// FromStorage parses a stored theme, falling back to DefaultTheme.
func (m *ThemeMapper) FromStorage(stored string) Theme {
	if theme, ok := ParseTheme(stored); ok {
		return theme
	}
	return DefaultTheme
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Overrides *OverridesMapper
	Theme     *ThemeMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Overrides: NewOverridesMapper(),
		Theme:     NewThemeMapper(),
	}
}
