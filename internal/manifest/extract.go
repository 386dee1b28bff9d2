package manifest

import (
	"regexp"
	"sort"
	"strings"
)

// A strategy attempts to locate compose manifest text within a raw
// documentation page. It returns empty when it finds nothing.
type strategy func(doc, hint string) string

// Extraction strategies in decreasing order of confidence. The first
// non-empty result wins; later strategies are only consulted when earlier
// ones find nothing.
var strategies = []strategy{
	codeBlockScan,
	delimitedWithHint,
	delimitedAny,
	bareServicesBlock,
}

// Extract locates the compose manifest embedded in a documentation page.
// hint, when known, is the expected service name and narrows the
// delimiter-based search. Returns ErrNotFound when the page has no
// manifest-shaped content.
func Extract(doc, hint string) (string, error) {
	for _, s := range strategies {
		if candidate := s(doc, hint); candidate != "" {
			return Sanitize(candidate), nil
		}
	}
	return "", ErrNotFound
}

var (
	preBlocks  = regexp.MustCompile(`(?is)<pre[^>]*>(.*?)</pre>`)
	codeBlocks = regexp.MustCompile(`(?is)<code[^>]*>(.*?)</code>`)
)

// codeBlockScan walks the page's code regions in document order and
// returns the first whose text holds both a services key and a vendor
// image reference.
func codeBlockScan(doc, _ string) string {
	type region struct {
		start int
		text  string
	}
	var regions []region
	for _, re := range []*regexp.Regexp{preBlocks, codeBlocks} {
		for _, m := range re.FindAllStringSubmatchIndex(doc, -1) {
			regions = append(regions, region{start: m[0], text: doc[m[2]:m[3]]})
		}
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].start < regions[j].start })

	for _, r := range regions {
		text := Sanitize(r.text)
		if strings.Contains(text, "services:") && strings.Contains(text, VendorNamespace) {
			return strings.TrimSpace(text)
		}
	}
	return ""
}

var (
	docSeparator = regexp.MustCompile(`---[ \t]*\n`)
	trailingHead = regexp.MustCompile(`(?i)\n[ \t]*(?:docker cli|parameters)`)
)

// delimitedBlock scans for a document-separator line and returns the text
// from there up to a known trailing section heading (or end of document),
// provided the block declares services and, when hint is non-empty, names
// the hinted service.
func delimitedBlock(doc, hint string) string {
	for _, loc := range docSeparator.FindAllStringIndex(doc, -1) {
		block := doc[loc[0]:]
		if end := trailingHead.FindStringIndex(block); end != nil {
			block = block[:end[0]]
		}
		idx := strings.Index(block, "services:")
		if idx < 0 {
			continue
		}
		if hint != "" && !strings.Contains(block[idx:], hint+":") {
			continue
		}
		return strings.TrimSpace(block)
	}
	return ""
}

func delimitedWithHint(doc, hint string) string {
	if hint == "" {
		return ""
	}
	return delimitedBlock(doc, hint)
}

func delimitedAny(doc, _ string) string {
	return delimitedBlock(doc, "")
}

// servicesShape matches a bare services key followed by indented lines.
// Lowest confidence: no vendor marker required, and the result may be
// malformed when the page interleaves markup with the YAML.
var servicesShape = regexp.MustCompile(`services:[ \t]*\r?\n(?:[ \t]+[\w.-]+:[ \t]*\r?\n(?:[ \t]+.*\r?\n?)*)*`)

func bareServicesBlock(doc, _ string) string {
	return strings.TrimSpace(servicesShape.FindString(doc))
}
