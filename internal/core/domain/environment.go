package domain

// Environment is an ordered set of environment variables.
//
// Keys are unique; setting an existing key replaces its value in place so the
// listing order stays stable. An Environment is not safe for concurrent use.
type Environment struct {
	keys   []string
	values map[string]string

	onChange func()
}

// NewEnvironment returns an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]string)}
}

// Get returns the value stored for key.
func (e *Environment) Get(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Set stores value under key. Setting the current value is a no-op.
func (e *Environment) Set(key, value string) {
	if current, ok := e.values[key]; ok {
		if current == value {
			return
		}
		e.values[key] = value
		e.changed()
		return
	}
	e.keys = append(e.keys, key)
	e.values[key] = value
	e.changed()
}

// Unset removes key. Unsetting an absent key is a no-op.
func (e *Environment) Unset(key string) {
	if _, ok := e.values[key]; !ok {
		return
	}
	delete(e.values, key)
	for i, k := range e.keys {
		if k == key {
			e.keys = append(e.keys[:i], e.keys[i+1:]...)
			break
		}
	}
	e.changed()
}

// Len returns the number of variables.
func (e *Environment) Len() int {
	return len(e.keys)
}

// Keys returns the variable names in insertion order.
func (e *Environment) Keys() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// Pairs returns the variables as KEY=VALUE strings in insertion order.
func (e *Environment) Pairs() []string {
	out := make([]string, 0, len(e.keys))
	for _, k := range e.keys {
		out = append(out, k+"="+e.values[k])
	}
	return out
}

// Copy returns an independent copy. Change hooks are not carried over.
func (e *Environment) Copy() *Environment {
	c := NewEnvironment()
	c.keys = append(c.keys, e.keys...)
	for k, v := range e.values {
		c.values[k] = v
	}
	return c
}

func (e *Environment) changed() {
	if e.onChange != nil {
		e.onChange()
	}
}
