package domain

// Overrides maps a task ID to the completion flag chosen by the user.
// Entries only exist for tasks the user has toggled.
type Overrides map[int64]bool

// Effective returns the completion of t after applying the override map.
func (o Overrides) Effective(t Task) bool {
	if completed, ok := o[t.ID]; ok {
		return completed
	}
	return t.Completed
}

// Apply returns t with its completion replaced by the effective value.
func (o Overrides) Apply(t Task) Task {
	return t.WithCompleted(o.Effective(t))
}

// Clone returns an independent copy of the map. A nil map clones to an empty one.
func (o Overrides) Clone() Overrides {
	c := make(Overrides, len(o))
	for id, completed := range o {
		c[id] = completed
	}
	return c
}
