package matchers

import "unicode/utf8"

type minLengthMatcher struct {
	n int
}

// MinLength matches candidates of at least n characters. Length counts
// runes, so a multi-byte character weighs the same as an ASCII one.
func MinLength(n int) Matcher {
	return &minLengthMatcher{
		n: n,
	}
}

func (m *minLengthMatcher) Match(candidate []byte) (bool, int, int) {
	if utf8.RuneCount(candidate) < m.n {
		return false, 0, 0
	}

	return true, 0, len(candidate)
}
