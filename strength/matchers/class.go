package matchers

import "bytes"

type anyMatcher struct {
	chars string
}

// Any matches the first candidate character found in chars.
func Any(chars string) Matcher {
	return &anyMatcher{
		chars: chars,
	}
}

func (m *anyMatcher) Match(candidate []byte) (bool, int, int) {
	start := bytes.IndexAny(candidate, m.chars)
	if start == -1 {
		return false, 0, 0
	}

	return true, start, start + 1
}

type rangeMatcher struct {
	lo, hi byte
}

// Range matches the first candidate byte in the inclusive range [lo, hi].
func Range(lo, hi byte) Matcher {
	return &rangeMatcher{
		lo: lo,
		hi: hi,
	}
}

func (m *rangeMatcher) Match(candidate []byte) (bool, int, int) {
	for i := 0; i < len(candidate); i++ {
		if candidate[i] >= m.lo && candidate[i] <= m.hi {
			return true, i, i + 1
		}
	}

	return false, 0, 0
}
