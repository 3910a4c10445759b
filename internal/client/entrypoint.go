package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"firesale/internal/logging"
)

// EntryPointKind enumerates the actions a single invocation can resolve to.
type EntryPointKind int

const (
	// KindGetDocument fetches and prints a single document.
	KindGetDocument EntryPointKind = iota
	// KindViewCollection lists and prints the documents in a collection.
	KindViewCollection
	// KindDeleteDocument deletes a single document.
	KindDeleteDocument
	// KindUsage prints usage text and performs no database call.
	KindUsage
)

// String returns the kind name used in logs.
func (k EntryPointKind) String() string {
	switch k {
	case KindGetDocument:
		return "get_document"
	case KindViewCollection:
		return "view_collection"
	case KindDeleteDocument:
		return "delete_document"
	case KindUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// EntryPoint is the resolved action for one invocation. Exactly one variant
// is populated, selected by Kind: Document for get/delete, Collection for
// view, Help for usage.
type EntryPoint struct {
	Kind       EntryPointKind
	Document   *DocumentQuery
	Collection *CollectionQuery
	Help       string
}

// ResolveGet maps the positional arguments of the get subcommand to an entry
// point: a present document name selects a single-document fetch, an absent
// one selects a whole-collection view. The command grammar guarantees at
// least the collection name is present; an empty argument list resolves to
// a usage entry point.
func ResolveGet(args []string) EntryPoint {
	if len(args) == 0 {
		return EntryPoint{Kind: KindUsage}
	}
	if len(args) >= 2 {
		return EntryPoint{
			Kind:     KindGetDocument,
			Document: &DocumentQuery{CollectionName: args[0], DocumentName: args[1]},
		}
	}
	return EntryPoint{
		Kind:       KindViewCollection,
		Collection: &CollectionQuery{CollectionName: args[0]},
	}
}

// ResolveDelete maps the positional arguments of the delete subcommand to a
// delete entry point. The command grammar guarantees both arguments are
// present.
func ResolveDelete(args []string) EntryPoint {
	return EntryPoint{
		Kind:     KindDeleteDocument,
		Document: &DocumentQuery{CollectionName: args[0], DocumentName: args[1]},
	}
}

// UsageEntryPoint wraps generated help text for an invocation that matched
// no subcommand.
func UsageEntryPoint(help string) EntryPoint {
	return EntryPoint{Kind: KindUsage, Help: help}
}

// DispatchOptions carries the per-invocation settings the handlers need.
type DispatchOptions struct {
	// Limit bounds collection listing; zero means unlimited.
	Limit int
	// Format selects the envelope rendering, json or yaml.
	Format string
	// Logger receives operation logs. Nil disables logging.
	Logger logging.Logger
}

// Dispatch invokes exactly one handler for the resolved entry point and
// writes its result to w. Usage entry points are a no-op: the help text was
// already printed by the command layer. The returned error reflects handler
// failure; envelope writing failures are returned as-is.
func Dispatch(ctx context.Context, ep EntryPoint, store DocumentStore, w io.Writer, opts DispatchOptions) error {
	if ep.Kind == KindUsage {
		return nil
	}

	start := time.Now()
	var err error
	switch ep.Kind {
	case KindGetDocument:
		err = handleGetDocument(ctx, *ep.Document, store, w, opts)
	case KindViewCollection:
		err = handleViewCollection(ctx, *ep.Collection, store, w, opts)
	case KindDeleteDocument:
		err = handleDeleteDocument(ctx, *ep.Document, store, w, opts)
	default:
		err = fmt.Errorf("unknown entry point kind %d", ep.Kind)
	}

	if opts.Logger != nil {
		opts.Logger.LogDuration(ctx, ep.Kind.String(), time.Since(start), nil)
	}
	return err
}

func handleGetDocument(ctx context.Context, q DocumentQuery, store DocumentStore, w io.Writer, opts DispatchOptions) error {
	if opts.Logger != nil {
		opts.Logger.Debug(ctx, "fetching document", logging.Fields{
			"collection": q.CollectionName,
			"document":   q.DocumentName,
		})
	}
	doc, err := store.GetDocument(ctx, q)
	if err != nil {
		return err
	}
	return WriteSuccess(w, opts.Format, doc)
}

func handleViewCollection(ctx context.Context, q CollectionQuery, store DocumentStore, w io.Writer, opts DispatchOptions) error {
	if opts.Logger != nil {
		opts.Logger.Debug(ctx, "listing collection", logging.Fields{
			"collection": q.CollectionName,
			"limit":      opts.Limit,
		})
	}
	docs, err := store.ListCollection(ctx, q, opts.Limit)
	if err != nil {
		return err
	}
	return WriteSuccess(w, opts.Format, CollectionListing{
		Collection: q.CollectionName,
		Count:      len(docs),
		Documents:  docs,
	})
}

func handleDeleteDocument(ctx context.Context, q DocumentQuery, store DocumentStore, w io.Writer, opts DispatchOptions) error {
	if opts.Logger != nil {
		opts.Logger.Debug(ctx, "deleting document", logging.Fields{
			"collection": q.CollectionName,
			"document":   q.DocumentName,
		})
	}
	if err := store.DeleteDocument(ctx, q); err != nil {
		return err
	}
	return WriteSuccess(w, opts.Format, DeleteConfirmation{
		Collection: q.CollectionName,
		Document:   q.DocumentName,
		Deleted:    true,
	})
}
