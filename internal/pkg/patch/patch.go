// Package patch fills unset values from defaults.
package patch

// OrDefault treats the zero value as unset.
func OrDefault[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}
