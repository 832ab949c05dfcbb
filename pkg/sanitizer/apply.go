package sanitizer

// Apply runs value through the given transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable pipeline from the given transforms. Preferred over
// repeated Apply calls when the same chain is evaluated many times, e.g. as
// the sanitize step of a validation rule.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
