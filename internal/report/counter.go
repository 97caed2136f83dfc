package report

// Counter tallies keys and remembers the order they were first seen.
type Counter[K comparable] struct {
	keys   []K
	counts map[K]int
	total  int
}

// NewCounter returns an empty Counter.
func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{counts: make(map[K]int)}
}

// Add increases the count of key by n.
func (c *Counter[K]) Add(key K, n int) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key] += n
	c.total += n
}

// Has reports whether key was ever added.
func (c *Counter[K]) Has(key K) bool {
	_, ok := c.counts[key]
	return ok
}

// Count returns the count of key.
func (c *Counter[K]) Count(key K) int {
	return c.counts[key]
}

// Keys returns keys in first-seen order.
func (c *Counter[K]) Keys() []K {
	return append([]K(nil), c.keys...)
}

// Total returns the sum of all counts.
func (c *Counter[K]) Total() int {
	return c.total
}

// Proportion returns the share of key in the total, or 0 when empty.
func (c *Counter[K]) Proportion(key K) float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.counts[key]) / float64(c.total)
}
