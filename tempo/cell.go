package tempo

// cell holds the one shared state value of a renderer. It is written
// exactly once when the loop starts. Callbacks that fire earlier observe
// an empty cell and do nothing.
type cell[S any] struct {
	value    *S
	hasValue bool
}

func (c *cell[S]) set(value *S) error {
	if c.hasValue {
		return ErrAlreadyStarted
	}

	c.value = value
	c.hasValue = true

	return nil
}

func (c *cell[S]) get() (*S, bool) {
	return c.value, c.hasValue
}
