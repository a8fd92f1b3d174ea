package internal

// Exceeds reports whether count over capacity has reached max.
func Exceeds(count, capacity int, max float64) bool {
	return float64(count)/float64(capacity) >= max
}

// Index maps hash into [0, n).
func Index(hash uint64, n int) int {
	return int(hash % uint64(n))
}
