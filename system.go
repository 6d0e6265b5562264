package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/w-h-a/memory/providers/store"
)

type memorySystem struct {
	options Options
}

func (m *memorySystem) Add(ctx context.Context, content string, opts ...AddOption) (int64, error) {
	if len(strings.TrimSpace(content)) == 0 {
		return 0, errors.New("content is required")
	}

	options := NewAddOptions(opts...)

	vector, err := m.options.Embedder.Embed(ctx, content)
	if err != nil {
		return 0, fmt.Errorf("embed content: %w", err)
	}

	createdAt := options.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	meta := store.NewMetadata(options.Tags, options.Category, createdAt)

	id, err := m.options.Store.Insert(ctx, content, vector, m.options.Model, meta, createdAt)
	if err != nil {
		return 0, fmt.Errorf("add memory: %w", err)
	}

	return id, nil
}

func (m *memorySystem) Search(ctx context.Context, query string, opts ...SearchOption) ([]Result, error) {
	options := NewSearchOptions(opts...)

	if options.Limit < 1 {
		return nil, errors.New("limit must be at least 1")
	}

	vector, err := m.options.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	records, err := m.options.Store.Search(ctx, vector, options.Limit)
	if err != nil {
		return nil, fmt.Errorf("search memories: %w", err)
	}

	results := make([]Result, 0, len(records))
	for _, rec := range records {
		results = append(results, Result{
			Id:         rec.Id,
			Content:    rec.Content,
			Tags:       rec.Metadata.Tags,
			Category:   rec.Metadata.Category,
			Similarity: rec.Score,
		})
	}

	return results, nil
}

func (m *memorySystem) Get(ctx context.Context, id int64) (Record, bool, error) {
	rec, found, err := m.options.Store.Get(ctx, id)
	if err != nil {
		return Record{}, false, fmt.Errorf("get memory %d: %w", id, err)
	}

	if !found {
		return Record{}, false, nil
	}

	return Record{
		Id:        rec.Id,
		Content:   rec.Content,
		Tags:      rec.Metadata.Tags,
		Category:  rec.Metadata.Category,
		Model:     rec.Model,
		CreatedAt: rec.CreatedAt,
	}, true, nil
}

func (m *memorySystem) Update(ctx context.Context, id int64, opts ...UpdateOption) (bool, error) {
	options := NewUpdateOptions(opts...)

	patch := store.Patch{
		Tags:     options.Tags,
		Category: options.Category,
	}

	// New content and its embedding land in the same patch so the store can
	// apply them atomically with any metadata change.
	if options.Content != nil {
		vector, err := m.options.Embedder.Embed(ctx, *options.Content)
		if err != nil {
			return false, fmt.Errorf("embed content: %w", err)
		}
		patch.Content = options.Content
		patch.Embedding = vector
	}

	updated, err := m.options.Store.Update(ctx, id, patch)
	if err != nil {
		return false, fmt.Errorf("update memory %d: %w", id, err)
	}

	return updated, nil
}

func (m *memorySystem) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := m.options.Store.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete memory %d: %w", id, err)
	}

	return deleted, nil
}

func New(opts ...Option) Memory {
	options := NewOptions(opts...)

	if options.Store == nil {
		detail := "a store is required to construct a memory system"
		slog.ErrorContext(options.Context, detail)
		panic(detail)
	}

	if options.Embedder == nil {
		detail := "an embedder is required to construct a memory system"
		slog.ErrorContext(options.Context, detail)
		panic(detail)
	}

	return &memorySystem{
		options: options,
	}
}
