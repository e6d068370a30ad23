package matchers

// Matcher reports whether a candidate contains a match, along with the
// byte offsets of the first match found.
type Matcher interface {
	Match(candidate []byte) (bool, int, int)
}
