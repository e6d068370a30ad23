package matchers

import "unicode/utf8"

type repeatMatcher struct {
	n int
}

// Repeat matches the first run of n or more identical consecutive
// characters, spanning the whole run.
func Repeat(n int) Matcher {
	return &repeatMatcher{
		n: n,
	}
}

func (m *repeatMatcher) Match(candidate []byte) (bool, int, int) {
	var (
		prev     rune
		runStart int
		runLen   int
	)

	for i := 0; i < len(candidate); {
		r, size := utf8.DecodeRune(candidate[i:])
		if runLen == 0 || r != prev {
			prev = r
			runStart = i
			runLen = 1
		} else {
			runLen++
		}
		i += size

		if runLen < m.n {
			continue
		}

		for i < len(candidate) {
			next, nextSize := utf8.DecodeRune(candidate[i:])
			if next != prev {
				break
			}
			i += nextSize
		}

		return true, runStart, i
	}

	return false, 0, 0
}
