package scanners

import "code.cloudfoundry.org/lager"

// Line is one candidate password read from an input stream.
type Line struct {
	Path       string
	LineNumber int
	Content    string
}

// Scanner yields candidate lines one at a time.
type Scanner interface {
	Scan(lager.Logger) bool
	Line(lager.Logger) *Line
	Err() error
}
