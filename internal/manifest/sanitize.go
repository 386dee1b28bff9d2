package manifest

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Sanitize cleans text lifted out of an HTML page: the three entities the
// docs pages actually emit are decoded and any markup tags left on a line
// are stripped.
func Sanitize(text string) string {
	replacer := strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")
	text = replacer.Replace(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = tagPattern.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}
