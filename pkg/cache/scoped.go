package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments can
// share one backend without colliding.
//
// Example usage:
//
//	// Keys for a staging server sharing the production Redis
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// CountKey generates a prefixed key for a counting result.
func (k *ScopedKeyer) CountKey(group, output string, partition []int) string {
	return k.prefix + k.inner.CountKey(group, output, partition)
}

// DrawingKey generates a prefixed key for a quotient drawing.
func (k *ScopedKeyer) DrawingKey(group, format string, partition []int) string {
	return k.prefix + k.inner.DrawingKey(group, format, partition)
}
