package client

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DatabaseContext is the authenticated handle through which document
// operations are issued against Firestore. It implements DocumentStore.
type DatabaseContext struct {
	client *firestore.Client
}

// NewDatabaseContext builds a Firestore client for the resolved credentials.
// The credentials file is validated here, not during environment gathering,
// so a bad path fails with a client construction error before any handler
// runs.
func NewDatabaseContext(ctx context.Context, creds Credentials) (*DatabaseContext, error) {
	fc, err := firestore.NewClient(ctx, creds.ProjectID, option.WithCredentialsFile(creds.CredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create database context for project %s: %w", creds.ProjectID, err)
	}
	return &DatabaseContext{client: fc}, nil
}

// GetDocument fetches a single document. A missing document is reported as
// ErrDocumentNotFound.
func (d *DatabaseContext) GetDocument(ctx context.Context, query DocumentQuery) (*Document, error) {
	snap, err := d.client.Collection(query.CollectionName).Doc(query.DocumentName).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s/%s", ErrDocumentNotFound, query.CollectionName, query.DocumentName)
		}
		return nil, fmt.Errorf("failed to fetch document %s/%s: %w", query.CollectionName, query.DocumentName, err)
	}
	return snapshotToDocument(query.CollectionName, snap), nil
}

// ListCollection returns the documents of a collection in document-name
// order. A positive limit bounds the result; zero or negative means no
// limit.
func (d *DatabaseContext) ListCollection(ctx context.Context, query CollectionQuery, limit int) ([]*Document, error) {
	q := d.client.Collection(query.CollectionName).Query
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var docs []*Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list collection %s: %w", query.CollectionName, err)
		}
		docs = append(docs, snapshotToDocument(query.CollectionName, snap))
	}
	return docs, nil
}

// DeleteDocument deletes a single document. Firestore deletes are
// idempotent: deleting a nonexistent document succeeds.
func (d *DatabaseContext) DeleteDocument(ctx context.Context, query DocumentQuery) error {
	if _, err := d.client.Collection(query.CollectionName).Doc(query.DocumentName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", query.CollectionName, query.DocumentName, err)
	}
	return nil
}

// Close releases the underlying Firestore client.
func (d *DatabaseContext) Close() error {
	return d.client.Close()
}

func snapshotToDocument(collection string, snap *firestore.DocumentSnapshot) *Document {
	return &Document{
		Collection: collection,
		Name:       snap.Ref.ID,
		Path:       snap.Ref.Path,
		CreateTime: snap.CreateTime,
		UpdateTime: snap.UpdateTime,
		Fields:     snap.Data(),
	}
}
