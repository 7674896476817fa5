package match

// Distance computes the Levenshtein edit distance (insert, delete, substitute
// each cost 1) between a and b, operating on runes so CJK input is counted
// per character. Rolling single-row buffer: O(min(m,n)) memory.
func Distance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) < len(br) {
		ar, br = br, ar
	}
	n := len(br)
	if n == 0 {
		return len(ar)
	}

	row := make([]int, n+1)
	for j := 0; j <= n; j++ {
		row[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= n; j++ {
			tmp := row[j]
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			row[j] = min3(row[j]+1, row[j-1]+1, prev+cost)
			prev = tmp
		}
	}
	return row[n]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
