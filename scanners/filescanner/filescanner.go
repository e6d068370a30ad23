package filescanner

import (
	"bufio"
	"io"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/password-meter/scanners"
)

type fileScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
	content      string
	err          error
}

func New(r io.Reader, filename string) *fileScanner {
	return &fileScanner{
		path:         filename,
		bufioScanner: bufio.NewScanner(r),
	}
}

// Scan advances to the next non-blank line. Surrounding whitespace is
// trimmed so a password read from a file matches what a user would type.
// Blank lines still count toward the line number.
func (s *fileScanner) Scan(logger lager.Logger) bool {
	logger = logger.Session("file-scanner")

	for s.bufioScanner.Scan() {
		s.lineNumber++

		content := strings.TrimSpace(s.bufioScanner.Text())
		if content == "" {
			continue
		}

		s.content = content
		return true
	}

	if err := s.bufioScanner.Err(); err != nil {
		logger.Error("bufio-error", err)
		s.err = err
	}

	return false
}

func (s *fileScanner) Line(logger lager.Logger) *scanners.Line {
	return &scanners.Line{
		Path:       s.path,
		LineNumber: s.lineNumber,
		Content:    s.content,
	}
}

func (s *fileScanner) Err() error {
	return s.err
}
