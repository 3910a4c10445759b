// Package client implements the firesale CLI core: credential resolution,
// query and entry-point types, the Firestore-backed document store, and the
// JSON output envelope consumed by the cobra command layer.
package client

// DocumentQuery identifies a single document within a collection.
type DocumentQuery struct {
	CollectionName string
	DocumentName   string
}

// CollectionQuery identifies a whole collection.
type CollectionQuery struct {
	CollectionName string
}
