package manifest

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Mount is one storage declaration within a service. Compose allows two
// shapes: the compact "host:container[:options]" string and the structured
// mapping with source/target keys. Both are represented here; node points
// back into the manifest tree so rewrites land in place.
type Mount struct {
	Compact bool

	Host      string // host path or named volume
	Container string // container-side path
	Options   string // trailing mount options, compact form only

	node *yaml.Node
}

// mountFromNode interprets a volumes sequence entry. Entries that are
// neither a compact string nor a source/target mapping are not mounts this
// tool understands and are skipped (left untouched in the tree).
func mountFromNode(entry *yaml.Node) (Mount, bool) {
	switch entry.Kind {
	case yaml.ScalarNode:
		host, container, options, ok := splitCompact(entry.Value)
		if !ok {
			return Mount{}, false
		}
		return Mount{Compact: true, Host: host, Container: container, Options: options, node: entry}, true
	case yaml.MappingNode:
		source := mappingValue(entry, "source")
		target := mappingValue(entry, "target")
		if source == nil || target == nil {
			return Mount{}, false
		}
		return Mount{Host: source.Value, Container: target.Value, node: entry}, true
	}
	return Mount{}, false
}

// splitCompact splits "host:container[:options]" keeping any options
// verbatim, colons included.
func splitCompact(s string) (host, container, options string, ok bool) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 {
		return "", "", "", false
	}
	host = strings.TrimSpace(parts[0])
	container = strings.TrimSpace(parts[1])
	if len(parts) == 3 {
		options = parts[2]
	}
	return host, container, options, true
}

// PathLike reports whether the mount's host side names a filesystem path
// rather than a named volume.
func (m Mount) PathLike() bool { return pathLike(m.Host) }

func pathLike(host string) bool {
	return strings.HasPrefix(host, "/") ||
		strings.HasPrefix(host, "~/") ||
		strings.HasPrefix(host, "./") ||
		strings.HasPrefix(host, "../")
}

// leafDir returns the final segment of a container path, used as the
// directory name under the canonical root. "/data/tvshows" -> "tvshows",
// "/" -> "data".
func leafDir(containerPath string) string {
	segments := strings.Split(strings.Trim(containerPath, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return "data"
}

// setHost replaces the mount's host side in the manifest tree, preserving
// container path and options.
func (m *Mount) setHost(host string) {
	m.Host = host
	if m.Compact {
		rebuilt := host + ":" + m.Container
		if m.Options != "" {
			rebuilt += ":" + m.Options
		}
		m.node.SetString(rebuilt)
		return
	}
	if source := mappingValue(m.node, "source"); source != nil {
		source.SetString(host)
	}
}
