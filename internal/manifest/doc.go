// Package manifest extracts docker-compose manifests from documentation
// pages and rewrites their volume mounts onto the canonical host layout.
//
// Extraction runs an ordered list of strategies against the raw page text
// ([Extract]); the first strategy that produces a candidate wins. Rewriting
// ([RewriteMounts]) operates on the parsed YAML node tree so that every
// field the rewriter does not touch round-trips unmodified.
package manifest
