package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vendor image markers identifying the documentation source whose
// manifests this tool targets.
const (
	VendorRegistry  = "lscr.io/linuxserver/"
	VendorNamespace = "linuxserver/"
)

// ErrNotFound is returned by Extract when the document contains no
// manifest-shaped content. It signals "try another input", not a failure.
var ErrNotFound = errors.New("no compose manifest found in document")

// ValidationError indicates manifest text that is not well-formed YAML or
// is missing the required structure.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid manifest: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid manifest: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Manifest is a parsed compose document. It wraps the YAML node tree so
// that fields the rewriter never touches (ports, environment, restart
// policy) survive a parse/encode round trip with order intact.
type Manifest struct {
	root *yaml.Node
}

// Parse decodes manifest text. It fails with a ValidationError when the
// text is not YAML or has no non-empty services mapping.
func Parse(text string) (*Manifest, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, &ValidationError{Reason: "not valid YAML", Err: err}
	}

	m := &Manifest{root: &root}
	services := m.servicesNode()
	if services == nil || len(services.Content) == 0 {
		return nil, &ValidationError{Reason: "no services defined"}
	}
	return m, nil
}

// Encode renders the manifest back to YAML using compose-conventional
// two-space indentation.
func (m *Manifest) Encode() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m.document()); err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}
	return buf.String(), nil
}

// document unwraps the DocumentNode yaml.Unmarshal produces.
func (m *Manifest) document() *yaml.Node {
	if m.root.Kind == yaml.DocumentNode && len(m.root.Content) > 0 {
		return m.root.Content[0]
	}
	return m.root
}

// servicesNode returns the mapping node under the top-level services key,
// or nil when absent.
func (m *Manifest) servicesNode() *yaml.Node {
	doc := m.document()
	if doc.Kind != yaml.MappingNode {
		return nil
	}
	return mappingValue(doc, "services")
}

// Service is one entry of the services mapping.
type Service struct {
	Name string
	node *yaml.Node
}

// Services returns the service entries in document order.
func (m *Manifest) Services() []Service {
	services := m.servicesNode()
	if services == nil || services.Kind != yaml.MappingNode {
		return nil
	}
	var out []Service
	for i := 0; i+1 < len(services.Content); i += 2 {
		out = append(out, Service{
			Name: services.Content[i].Value,
			node: services.Content[i+1],
		})
	}
	return out
}

// Image returns the service's image reference, or empty when not set.
func (s Service) Image() string {
	if img := mappingValue(s.node, "image"); img != nil {
		return img.Value
	}
	return ""
}

// volumesNode returns the service's volumes sequence node, or nil.
func (s Service) volumesNode() *yaml.Node {
	v := mappingValue(s.node, "volumes")
	if v == nil || v.Kind != yaml.SequenceNode {
		return nil
	}
	return v
}

// Mounts returns the service's mount declarations in order.
func (s Service) Mounts() []Mount {
	volumes := s.volumesNode()
	if volumes == nil {
		return nil
	}
	var out []Mount
	for _, entry := range volumes.Content {
		if mnt, ok := mountFromNode(entry); ok {
			out = append(out, mnt)
		}
	}
	return out
}

// mappingValue returns the value node for key within a mapping node.
func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// vendorService extracts the service name from a recognized vendor image
// reference, e.g. "lscr.io/linuxserver/jellyfin:latest" -> "jellyfin".
func vendorService(image string) string {
	idx := strings.LastIndex(image, VendorNamespace)
	if idx < 0 {
		return ""
	}
	name := image[idx+len(VendorNamespace):]
	if tag := strings.IndexByte(name, ':'); tag >= 0 {
		name = name[:tag]
	}
	return name
}
