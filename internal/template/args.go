package template

// Argument is a named placeholder and the value bound to it
type Argument struct {
	Name  string
	Value string
}

// ArgumentSet holds one argument per distinct placeholder, in first-occurrence
// order. Entries are never reordered.
type ArgumentSet struct {
	args  []Argument
	index map[string]int
}

// NewArgumentSet creates an argument set for names. Values start empty unless
// globals holds a value for the same name.
func NewArgumentSet(names []string, globals map[string]string) *ArgumentSet {
	s := &ArgumentSet{
		args:  make([]Argument, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for _, name := range names {
		if _, dup := s.index[name]; dup {
			continue
		}
		s.index[name] = len(s.args)
		s.args = append(s.args, Argument{Name: name, Value: globals[name]})
	}
	return s
}

// Len returns the number of arguments
func (s *ArgumentSet) Len() int {
	return len(s.args)
}

// At returns the argument at position i
func (s *ArgumentSet) At(i int) Argument {
	return s.args[i]
}

// All returns a copy of the arguments in order
func (s *ArgumentSet) All() []Argument {
	out := make([]Argument, len(s.args))
	copy(out, s.args)
	return out
}

// Set replaces the value at position i
func (s *ArgumentSet) Set(i int, value string) {
	s.args[i].Value = value
}

// Lookup returns the value bound to name
func (s *ArgumentSet) Lookup(name string) (string, bool) {
	i, ok := s.index[name]
	if !ok {
		return "", false
	}
	return s.args[i].Value, true
}

// Position returns the index of name, or -1
func (s *ArgumentSet) Position(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// Missing returns the names that still have no value
func (s *ArgumentSet) Missing() []string {
	var missing []string
	for _, a := range s.args {
		if a.Value == "" {
			missing = append(missing, a.Name)
		}
	}
	return missing
}

// Ready reports whether every argument has a value. Every placeholder is
// mandatory.
func (s *ArgumentSet) Ready() bool {
	for _, a := range s.args {
		if a.Value == "" {
			return false
		}
	}
	return true
}

// Clone returns an independent copy
func (s *ArgumentSet) Clone() *ArgumentSet {
	c := &ArgumentSet{
		args:  s.All(),
		index: make(map[string]int, len(s.index)),
	}
	for k, v := range s.index {
		c.index[k] = v
	}
	return c
}
