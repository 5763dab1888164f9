package render

// Normalize coerces v into [min, max]. Values not strictly inside the open
// interval (min, max) are clamped to whichever bound is numerically closer;
// ties go to min. In-range values pass through unchanged. Out-of-range input
// is never an error.
func Normalize(v, min, max int) int {
	if v > min && v < max {
		return v
	}
	if abs(v-max) < abs(v-min) {
		return max
	}
	return min
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
