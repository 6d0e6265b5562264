package store

import "time"

type Record struct {
	Id        int64
	Content   string
	Metadata  Metadata
	Embedding []float32
	Model     string
	Score     float32
	CreatedAt time.Time
}

// Patch describes a partial change to a record. Nil fields are left
// untouched; Embedding is only written when Content is set.
type Patch struct {
	Content   *string
	Embedding []float32
	Tags      *[]string
	Category  *string
}
