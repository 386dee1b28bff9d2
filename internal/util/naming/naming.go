// Package naming centralizes the names derived from a service identifier
// and domain: DNS record names, nginx site filenames, and the canonical
// service directory. Keeping them in one place guarantees the proxy, the
// DNS record, and the on-disk layout stay in agreement.
package naming

import "path"

// Site returns the nginx site filename for a service, e.g.
// "jellyfin.example.com".
func Site(service, domain string) string {
	return service + "." + domain
}

// RecordName returns the fully-qualified DNS record name for a service.
// It is identical to the site name; DNS and proxy are keyed the same way.
func RecordName(service, domain string) string {
	return service + "." + domain
}

// ServiceDir returns the service's directory under the canonical root,
// still ~-relative when the root is.
func ServiceDir(root, service string) string {
	return path.Join(root, service)
}

// ManifestPath returns the canonical manifest location for a service.
func ManifestPath(root, service, filename string) string {
	return path.Join(root, service, filename)
}
