package clique

import "slices"

// Identifier sets are ascending []int slices without duplicates.

// intersectIDs returns the ids present in both a and b.
func intersectIDs(a, b []int) []int {
	if len(a) > len(b) {
		a, b = b, a
	}
	out := make([]int, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return slices.Clip(out)
}

// unionIDs merges any number of id sets into a new set.
func unionIDs(sets ...[]int) []int {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make([]int, 0, n)
	for _, s := range sets {
		out = append(out, s...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
