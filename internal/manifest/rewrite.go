package manifest

// CanonicalRoot is the standardized base directory under which all
// rewritten host paths live.
const CanonicalRoot = "~/Docker"

// RewriteMounts rewrites every path-like host side in the manifest to
// <root>/<serviceID>/<leaf>, where leaf is the final segment of the
// container path. Named volumes pass through untouched, as do entries
// already under the canonical root, which makes the rewrite idempotent.
// An empty serviceID is derived from the manifest; an empty root selects
// [CanonicalRoot].
//
// The transform is pure: everything except host sides is preserved.
func RewriteMounts(text, serviceID, root string) (string, error) {
	m, err := Parse(text)
	if err != nil {
		return "", err
	}
	if root == "" {
		root = CanonicalRoot
	}
	serviceID = m.ServiceIdentifier(serviceID)

	for _, svc := range m.Services() {
		for _, mnt := range svc.Mounts() {
			if !pathLike(mnt.Host) {
				continue
			}
			if hasCanonicalPrefix(mnt.Host, root) {
				continue
			}
			mnt.setHost(root + "/" + serviceID + "/" + leafDir(mnt.Container))
		}
	}

	return m.Encode()
}

// hasCanonicalPrefix reports whether host already lives under the
// canonical root. Such entries are skipped so repeated rewrites never
// stack prefixes.
func hasCanonicalPrefix(host, root string) bool {
	return host == root || len(host) > len(root) && host[:len(root)] == root && host[len(root)] == '/'
}
