package client

import (
	"context"
	"errors"
	"time"
)

// ErrDocumentNotFound is returned when the requested document does not
// exist in the target collection.
var ErrDocumentNotFound = errors.New("document not found")

// Document is the printable representation of a single Firestore document.
type Document struct {
	Collection string                 `json:"collection" yaml:"collection"`
	Name       string                 `json:"name" yaml:"name"`
	Path       string                 `json:"path" yaml:"path"`
	CreateTime time.Time              `json:"create_time" yaml:"create_time"`
	UpdateTime time.Time              `json:"update_time" yaml:"update_time"`
	Fields     map[string]interface{} `json:"fields" yaml:"fields"`
}

// CollectionListing is the result payload for viewing a collection.
type CollectionListing struct {
	Collection string      `json:"collection" yaml:"collection"`
	Count      int         `json:"count" yaml:"count"`
	Documents  []*Document `json:"documents" yaml:"documents"`
}

// DeleteConfirmation is the result payload for a successful delete.
type DeleteConfirmation struct {
	Collection string `json:"collection" yaml:"collection"`
	Document   string `json:"document" yaml:"document"`
	Deleted    bool   `json:"deleted" yaml:"deleted"`
}

// DocumentStore is the interface the dispatch layer issues document
// operations through. DatabaseContext is the production implementation;
// tests substitute fakes.
type DocumentStore interface {
	GetDocument(ctx context.Context, query DocumentQuery) (*Document, error)
	ListCollection(ctx context.Context, query CollectionQuery, limit int) ([]*Document, error)
	DeleteDocument(ctx context.Context, query DocumentQuery) error
	Close() error
}
