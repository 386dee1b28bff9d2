package manifest

import "strings"

// fallbackService is used when nothing in the manifest identifies a
// service.
const fallbackService = "app"

// NormalizeService canonicalizes a service identifier for directory and
// DNS naming: lower-cased, with the docs-style "docker-" prefix removed.
func NormalizeService(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimPrefix(name, "docker-")
}

// ServiceIdentifier derives the canonical service name for a manifest.
// Priority: the explicit caller-supplied name, then the first recognized
// vendor image reference, then the first service key, then "app".
func (m *Manifest) ServiceIdentifier(explicit string) string {
	if explicit != "" {
		return NormalizeService(explicit)
	}
	services := m.Services()
	for _, svc := range services {
		if name := vendorService(svc.Image()); name != "" {
			return NormalizeService(name)
		}
	}
	if len(services) > 0 {
		return NormalizeService(services[0].Name)
	}
	return fallbackService
}
