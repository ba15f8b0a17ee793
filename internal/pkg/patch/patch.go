package patch

// Coalesce returns *ptr when the field was sent, otherwise the current value.
func Coalesce[T any](ptr *T, current T) T {
	if ptr != nil {
		return *ptr
	}
	return current
}

// CoalesceOptional is Coalesce for nullable columns: an absent field keeps
// the current pointer, which may itself be nil.
func CoalesceOptional[T any](ptr *T, current *T) *T {
	if ptr != nil {
		return ptr
	}
	return current
}
