package mimetype

import (
	"strings"

	"bitbucket.org/taruti/mimemagic"
)

// IsPlainText reports whether the buffer looks like text rather than a
// binary format. mimemagic only recognizes formats with a magic number,
// so an unrecognized buffer is treated as text.
func IsPlainText(prefix []byte) bool {
	if len(prefix) == 0 {
		return true
	}

	mime := mimemagic.Match("", prefix)

	return mime == "" || strings.HasPrefix(mime, "text/")
}
