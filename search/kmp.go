// Package search implements case-insensitive sender filtering over a list
// of MessageRecords using a real Knuth-Morris-Pratt substring search,
// ported from original_source/src/mbox-buf.c's
// mboxBufContainsCasePattern, rather than strings.Contains.
package search

// prefixTable computes the KMP failure function for pattern: the length
// of the longest proper prefix of pattern[:i+1] that is also a suffix,
// comparing bytes case-insensitively like ContainsPattern does.
func prefixTable(pattern string) []int {
	table := make([]int, len(pattern))
	if len(pattern) == 0 {
		return table
	}
	table[0] = 0
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && lower(pattern[k]) != lower(pattern[i]) {
			k = table[k-1]
		}
		if lower(pattern[k]) == lower(pattern[i]) {
			k++
		}
		table[i] = k
	}
	return table
}

// ContainsPattern returns the index of the first case-insensitive
// occurrence of pattern in s, or -1 if pattern is empty or not found.
func ContainsPattern(s, pattern string) int {
	if len(pattern) == 0 {
		return -1
	}
	table := prefixTable(pattern)

	q := 0
	for i := 0; i < len(s); i++ {
		for q > 0 && lower(pattern[q]) != lower(s[i]) {
			q = table[q-1]
		}
		if lower(pattern[q]) == lower(s[i]) {
			q++
		}
		if q == len(pattern) {
			return i - len(pattern) + 1
		}
	}
	return -1
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
