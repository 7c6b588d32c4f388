package replog

// DefaultExercises seed every new catalog.
var DefaultExercises = []string{"Push-ups", "Sit-ups", "Squats", "Pull-ups"}

// Catalog is the ordered set of exercise names available for selection.
// Insertion order is preserved and the catalog never shrinks within a
// session. Not safe for concurrent use, the owning service guards it.
type Catalog struct {
	names []string
	index map[string]struct{}
}

func NewCatalog(seed ...string) *Catalog {
	c := &Catalog{
		index: make(map[string]struct{}),
	}
	for _, name := range seed {
		_ = c.Add(name)
	}
	return c
}

// Add appends the name to the catalog. Empty and already present names
// are rejected and leave the catalog unchanged.
func (c *Catalog) Add(name string) error {
	if name == "" {
		return ErrEmptyExerciseName
	}
	if _, ok := c.index[name]; ok {
		return ErrDuplicateExercise
	}
	c.names = append(c.names, name)
	c.index[name] = struct{}{}
	return nil
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Names returns the exercise names in insertion order. The returned
// slice is a copy.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

func (c *Catalog) Len() int {
	return len(c.names)
}

// seedFromLog adds the distinct exercise names found in the log, in
// first-appearance order, so previously logged custom exercises are
// selectable (and chartable) again after a restart.
func (c *Catalog) seedFromLog(entries []Entry) {
	for _, e := range entries {
		if !c.Contains(e.ExerciseName) {
			_ = c.Add(e.ExerciseName)
		}
	}
}
