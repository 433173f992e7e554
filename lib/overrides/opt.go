package overrides

// Opt marks an overlay field as present or absent. The zero value is
// absent; Set makes it present, including with a nil value for nullable
// fields, which forces the field back to "no override".
type Opt[T any] struct {
	value T
	set   bool
}

// Set returns a present Opt holding v.
func Set[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// Get returns the held value and whether the Opt is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the Opt is present.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Ptr returns a pointer to v, for nullable fields in Go-authored overlays.
func Ptr[T any](v T) *T {
	return &v
}
