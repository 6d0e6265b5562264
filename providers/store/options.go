package store

import "context"

type Option func(*Options)

type Options struct {
	Location  string
	Table     string
	Dimension int
	Lists     int
	Context   context.Context
}

func WithLocation(loc string) Option {
	return func(o *Options) {
		o.Location = loc
	}
}

func WithTable(table string) Option {
	return func(o *Options) {
		o.Table = table
	}
}

func WithDimension(dim int) Option {
	return func(o *Options) {
		o.Dimension = dim
	}
}

func WithLists(lists int) Option {
	return func(o *Options) {
		o.Lists = lists
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Table:     "vector_store",
		Dimension: 384, // all-MiniLM-L6-v2
		Lists:     100,
		Context:   context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
