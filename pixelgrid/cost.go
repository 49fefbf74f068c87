package pixelgrid

// Cost returns the traversal cost between two adjacent samples: the Manhattan
// distance between their red, green and blue channels. Alpha is ignored.
// The result is non-negative, symmetric and at most MaxCost.
func Cost(a, b Pixel) float32 {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

func absDiff(a, b uint8) float32 {
	if a > b {
		return float32(a - b)
	}
	return float32(b - a)
}
