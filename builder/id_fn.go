package builder

import "strconv"

// IDFn maps a zero-based vertex index to the vertex value.
// It must be pure and injective over the indices a constructor uses.
type IDFn[T comparable] func(idx int) T

// IntIDs returns idx itself: 0, 1, 2, ...
func IntIDs(idx int) int { return idx }

// DecimalIDs returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalIDs(idx int) string { return strconv.Itoa(idx) }

// ExcelColumnIDs returns the “Excel-style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Negative indices map to the empty string.
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx).
func ExcelColumnIDs(idx int) string {
	if idx < 0 {
		return ""
	}
	// build letters in reverse order
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixedIDs returns prefix + decimal index, e.g. "v0", "v1", ...
func PrefixedIDs(prefix string) IDFn[string] {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
