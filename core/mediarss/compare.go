// ABOUTME: Ordering primitives shared by every value type's Compare implementation
// ABOUTME: Component results combine with bitwise OR; only the zero/non-zero sign is meaningful

package mediarss

// Comparison results across this package are combined with bitwise OR,
// not lexicographic tie-breaking: the combined value is zero iff every
// component compared equal, and its exact magnitude otherwise carries
// no meaning beyond non-zero. Sorting code must only rely on the sign
// relative to zero.

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64s(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// compareSequence compares two ordered sequences element-wise in stored
// order. Once the shorter sequence is exhausted it compares as less;
// sequences of unequal length are therefore never equal.
func compareSequence[T any](a, b []T, cmp func(T, T) int) int {
	for i := range a {
		if i >= len(b) {
			return 1
		}
		if r := cmp(a[i], b[i]); r != 0 {
			return r
		}
	}
	if len(a) < len(b) {
		return -1
	}
	return 0
}

func compareStringSlices(a, b []string) int {
	return compareSequence(a, b, compareStrings)
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
