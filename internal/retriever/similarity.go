package retriever

// sequenceRatio returns a symmetric similarity ratio in [0,1] between two
// rune sequences: 2*M / (len(a)+len(b)), where M is the total length of the
// matching blocks found by repeatedly taking the longest common substring
// and recursing into the pieces to its left and right.
func sequenceRatio(a, b []rune) float64 {
	if len(a)+len(b) == 0 {
		return 0
	}
	return 2 * float64(matchedLength(a, b)) / float64(len(a)+len(b))
}

type span struct {
	alo, ahi, blo, bhi int
}

// matchedLength sums the sizes of all matching blocks between a and b.
func matchedLength(a, b []rune) int {
	total := 0
	stack := []span{{0, len(a), 0, len(b)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i, j, size := longestMatch(a, b, s.alo, s.ahi, s.blo, s.bhi)
		if size == 0 {
			continue
		}
		total += size
		if s.alo < i && s.blo < j {
			stack = append(stack, span{s.alo, i, s.blo, j})
		}
		if i+size < s.ahi && j+size < s.bhi {
			stack = append(stack, span{i + size, s.ahi, j + size, s.bhi})
		}
	}
	return total
}

// longestMatch finds the longest block a[i:i+size] == b[j:j+size] within
// a[alo:ahi] and b[blo:bhi]. Ties resolve to the earliest position in a,
// then the earliest in b, keeping the scan deterministic.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, size int) {
	b2j := make(map[rune][]int, bhi-blo)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj = alo, blo
	// j2len[j] is the length of the match ending at a[i-1], b[j].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > size {
				besti, bestj, size = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, size
}
