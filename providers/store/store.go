package store

import (
	"context"
	"time"
)

type Store interface {
	Insert(ctx context.Context, content string, vector []float32, model string, meta Metadata, createdAt time.Time) (int64, error)
	Search(ctx context.Context, vector []float32, limit int) ([]Record, error)
	Get(ctx context.Context, id int64) (Record, bool, error)
	Update(ctx context.Context, id int64, patch Patch) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
