package memory

import (
	"context"
	"time"
)

// Memory is the surface every external collaborator calls. Absence of a
// record is a normal outcome, reported through the found/ok results rather
// than an error.
type Memory interface {
	Add(ctx context.Context, content string, opts ...AddOption) (int64, error)
	Search(ctx context.Context, query string, opts ...SearchOption) ([]Result, error)
	Get(ctx context.Context, id int64) (Record, bool, error)
	Update(ctx context.Context, id int64, opts ...UpdateOption) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type Record struct {
	Id        int64
	Content   string
	Tags      []string
	Category  string
	Model     string
	CreatedAt time.Time
}

type Result struct {
	Id         int64
	Content    string
	Tags       []string
	Category   string
	Similarity float32
}
