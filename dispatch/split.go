package dispatch

// Range is a half-open interval [Start, End) of point indices.
type Range struct {
	Start, End int
}

// Len returns the number of indices covered by r.
func (r Range) Len() int { return r.End - r.Start }

// Split cuts n indices into at most parts contiguous ranges, in order.
// The first n%parts ranges hold one extra index. No range is empty, so fewer
// than parts ranges are returned when n < parts, and none when n == 0.
// parts < 1 is treated as 1.
func Split(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	size, extra := n/parts, n%parts
	out := make([]Range, parts)
	start := 0
	for i := range out {
		end := start + size
		if i < extra {
			end++
		}
		out[i] = Range{Start: start, End: end}
		start = end
	}

	return out
}
