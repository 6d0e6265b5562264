package memory

import (
	"context"
	"time"

	"github.com/w-h-a/memory/providers/embedder"
	"github.com/w-h-a/memory/providers/store"
)

type Option func(*Options)

type Options struct {
	Store    store.Store
	Embedder embedder.Embedder
	Model    string
	Context  context.Context
}

func WithStore(store store.Store) Option {
	return func(o *Options) {
		o.Store = store
	}
}

func WithEmbedder(embedder embedder.Embedder) Option {
	return func(o *Options) {
		o.Embedder = embedder
	}
}

// WithModel records the embedding model identifier on every row so that
// mixed-model corpora remain interpretable.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Model:   "all-MiniLM-L6-v2",
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

type AddOption func(*AddOptions)

type AddOptions struct {
	Tags      []string
	Category  string
	CreatedAt time.Time
	Context   context.Context
}

func WithTags(tags ...string) AddOption {
	return func(o *AddOptions) {
		o.Tags = tags
	}
}

func WithCategory(category string) AddOption {
	return func(o *AddOptions) {
		o.Category = category
	}
}

func WithCreatedAt(createdAt time.Time) AddOption {
	return func(o *AddOptions) {
		o.CreatedAt = createdAt
	}
}

func NewAddOptions(opts ...AddOption) AddOptions {
	options := AddOptions{
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

type SearchOption func(*SearchOptions)

type SearchOptions struct {
	Limit   int
	Context context.Context
}

func WithSearchLimit(limit int) SearchOption {
	return func(o *SearchOptions) {
		o.Limit = limit
	}
}

func NewSearchOptions(opts ...SearchOption) SearchOptions {
	options := SearchOptions{
		Limit:   5,
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

type UpdateOption func(*UpdateOptions)

// UpdateOptions carries explicit presence markers: a nil field means "leave
// unchanged", so callers can still set an empty string or list deliberately.
type UpdateOptions struct {
	Content  *string
	Tags     *[]string
	Category *string
	Context  context.Context
}

func WithNewContent(content string) UpdateOption {
	return func(o *UpdateOptions) {
		o.Content = &content
	}
}

func WithNewTags(tags []string) UpdateOption {
	return func(o *UpdateOptions) {
		o.Tags = &tags
	}
}

func WithNewCategory(category string) UpdateOption {
	return func(o *UpdateOptions) {
		o.Category = &category
	}
}

func NewUpdateOptions(opts ...UpdateOption) UpdateOptions {
	options := UpdateOptions{
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
