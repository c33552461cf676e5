package domain

// Arguments holds a tool call's arguments after validation succeeded:
// defaults are applied, integer fields are narrowed to int, and keys the
// tool's schema does not declare have been dropped. Everything downstream
// of validation (request building, projection) works from this bag, never
// from the raw client input.
type Arguments map[string]any

// Has reports whether the argument is present.
func (a Arguments) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the named argument as a string.
// The second return value is false when the argument is absent or not a string.
func (a Arguments) String(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok
}

// Int returns the named argument as an int.
func (a Arguments) Int(name string) (int, bool) {
	v, ok := a[name].(int)
	return v, ok
}

// Float returns the named argument as a float64.
func (a Arguments) Float(name string) (float64, bool) {
	v, ok := a[name].(float64)
	return v, ok
}

// Bool returns the named argument as a bool.
func (a Arguments) Bool(name string) (bool, bool) {
	v, ok := a[name].(bool)
	return v, ok
}
