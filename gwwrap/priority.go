// Package gwwrap implements the wrap/truncate engine (component G): column
// width adjustment toward a total-width target, and the cell text rewriting
// (hard-cut, cut-with-suffix, hard-wrap, keep-words wrap) that follows it.
package gwwrap

// Priority selects which column absorbs a width delta first.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityMax
	PriorityMin
	PriorityLeft
	PriorityRight
)

// Truncate decreases widths by exactly (sum(widths) - target), one column
// at a time, respecting each column's minimum, chosen by policy. widths is
// modified in place and also returned.
func Truncate(widths, mins []int, target int, policy Priority) []int {
	delta := sum(widths) - target
	if delta <= 0 {
		return widths
	}
	rr := 0
	for delta > 0 {
		i, ok := pickColumn(widths, mins, policy, &rr, true)
		if !ok {
			break // every column is at its minimum; cannot shrink further
		}
		widths[i]--
		delta--
	}
	return widths
}

// MinWidth increases widths by exactly (target - sum(widths)), mirroring
// Truncate's column selection (the same policy, applied to growth instead
// of shrinkage, with no upper bound per column).
func MinWidth(widths []int, target int, policy Priority) []int {
	delta := target - sum(widths)
	if delta <= 0 {
		return widths
	}
	rr := 0
	for delta > 0 {
		i, ok := pickColumn(widths, nil, policy, &rr, false)
		if !ok {
			break
		}
		widths[i]++
		delta--
	}
	return widths
}

func sum(widths []int) int {
	s := 0
	for _, w := range widths {
		s += w
	}
	return s
}

// pickColumn returns the index of the column to adjust next. shrinking
// selects among columns still above their minimum; growing has no floor.
func pickColumn(widths, mins []int, policy Priority, rr *int, shrinking bool) (int, bool) {
	eligible := func(i int) bool {
		if !shrinking {
			return true
		}
		min := 0
		if mins != nil {
			min = mins[i]
		}
		return widths[i] > min
	}

	switch policy {
	case PriorityMax:
		best, bestW := -1, -1
		for i := range widths {
			if eligible(i) && widths[i] > bestW {
				best, bestW = i, widths[i]
			}
		}
		return best, best >= 0
	case PriorityMin:
		best, bestW := -1, int(^uint(0)>>1)
		for i := range widths {
			if eligible(i) && widths[i] < bestW {
				best, bestW = i, widths[i]
			}
		}
		return best, best >= 0
	case PriorityLeft:
		for i := 0; i < len(widths); i++ {
			if eligible(i) {
				return i, true
			}
		}
		return -1, false
	case PriorityRight:
		for i := len(widths) - 1; i >= 0; i-- {
			if eligible(i) {
				return i, true
			}
		}
		return -1, false
	default: // PriorityNone: round-robin left to right, wrapping
		n := len(widths)
		for k := 0; k < n; k++ {
			i := (*rr + k) % n
			if eligible(i) {
				*rr = (i + 1) % n
				return i, true
			}
		}
		return -1, false
	}
}
