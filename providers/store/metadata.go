package store

import (
	"encoding/json"
	"time"
)

const (
	DefaultCategory = "Uncategorized"

	// TimestampLayout is the capture-time format carried inside the
	// metadata blob, e.g. 202601021504.
	TimestampLayout = "200601021504"
)

// Metadata is the semi-structured bundle stored alongside each record,
// distinct from its content and embedding.
type Metadata struct {
	Tags      []string `json:"tags"`
	Category  string   `json:"category"`
	Timestamp string   `json:"timestamp"`
}

func NewMetadata(tags []string, category string, createdAt time.Time) Metadata {
	if tags == nil {
		tags = []string{}
	}

	if len(category) == 0 {
		category = DefaultCategory
	}

	return Metadata{
		Tags:      tags,
		Category:  category,
		Timestamp: createdAt.Format(TimestampLayout),
	}
}

func EncodeMetadata(meta Metadata) ([]byte, error) {
	if meta.Tags == nil {
		meta.Tags = []string{}
	}

	if len(meta.Category) == 0 {
		meta.Category = DefaultCategory
	}

	return json.Marshal(meta)
}

// DecodeMetadata tolerates missing keys by substituting defaults.
func DecodeMetadata(bs []byte) (Metadata, error) {
	meta := Metadata{}

	if len(bs) > 0 {
		if err := json.Unmarshal(bs, &meta); err != nil {
			return Metadata{}, err
		}
	}

	if meta.Tags == nil {
		meta.Tags = []string{}
	}

	if len(meta.Category) == 0 {
		meta.Category = DefaultCategory
	}

	return meta, nil
}
