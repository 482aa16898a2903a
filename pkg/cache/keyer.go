package cache

// Keyer derives cache keys for counting computations.
type Keyer interface {
	// CountKey returns the key of a counting result for a partition under
	// a group, shaped by an output mode.
	CountKey(group, output string, partition []int) string

	// DrawingKey returns the key of a rendered quotient drawing.
	DrawingKey(group, format string, partition []int) string
}

// DefaultKeyer hashes the computation inputs into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// CountKey returns "count:<group>:<sha256>" over the output and partition.
func (DefaultKeyer) CountKey(group, output string, partition []int) string {
	return hashKey("count", group, output, partition)
}

// DrawingKey returns "drawing:<group>:<sha256>" over the format and partition.
func (DefaultKeyer) DrawingKey(group, format string, partition []int) string {
	return hashKey("drawing", group, format, partition)
}

var _ Keyer = DefaultKeyer{}
