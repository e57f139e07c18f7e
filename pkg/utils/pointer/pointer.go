package pointer

// Ref returns a pointer to t.
func Ref[T any](t T) *T {
	return &t
}
