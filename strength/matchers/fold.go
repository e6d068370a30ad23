package matchers

import "bytes"

type foldMatcher struct {
	s []byte
}

// Fold matches s anywhere in the candidate, ignoring case.
func Fold(s string) Matcher {
	return &foldMatcher{
		s: bytes.ToLower([]byte(s)),
	}
}

func (m *foldMatcher) Match(candidate []byte) (bool, int, int) {
	start := bytes.Index(bytes.ToLower(candidate), m.s)
	if start == -1 {
		return false, 0, 0
	}

	end := start + len(m.s)

	return true, start, end
}
