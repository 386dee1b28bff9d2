package anthropic

import (
	"regexp"
	"strings"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:nginx|conf|apache)?\n(.*?)```")

// ExtractConfig isolates the configuration from a model response: a
// fenced code block if present, else the first balanced "server { ... }"
// block, else the raw response.
func ExtractConfig(response string) string {
	if m := fencedBlock.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	if block := serverBlock(response); block != "" {
		return block
	}
	return strings.TrimSpace(response)
}

// serverBlock finds a "server" keyword followed by a brace-balanced block.
func serverBlock(text string) string {
	idx := strings.Index(text, "server")
	for idx >= 0 {
		open := strings.IndexByte(text[idx:], '{')
		if open < 0 {
			return ""
		}
		between := text[idx+len("server") : idx+open]
		if strings.TrimSpace(between) == "" {
			depth := 0
			for i := idx + open; i < len(text); i++ {
				switch text[i] {
				case '{':
					depth++
				case '}':
					depth--
					if depth == 0 {
						return strings.TrimSpace(text[idx : i+1])
					}
				}
			}
			return ""
		}
		next := strings.Index(text[idx+len("server"):], "server")
		if next < 0 {
			return ""
		}
		idx += len("server") + next
	}
	return ""
}
