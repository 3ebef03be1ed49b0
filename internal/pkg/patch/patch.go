// Package patch resolves optional request fields against their defaults.
package patch

// Coalesce returns *p when p is set, fallback otherwise.
func Coalesce[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}
