package memory

import (
	"reflect"
	"testing"
	"time"
)

func TestNewAddOptions(t *testing.T) {
	options := NewAddOptions()

	if options.Tags != nil {
		t.Fatalf("expected no tags, got %v", options.Tags)
	}

	if len(options.Category) != 0 {
		t.Fatalf("expected no category, got %s", options.Category)
	}

	if !options.CreatedAt.IsZero() {
		t.Fatalf("expected zero created at, got %v", options.CreatedAt)
	}

	createdAt := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	options = NewAddOptions(
		WithTags("marathon", "running"),
		WithCategory("Sports"),
		WithCreatedAt(createdAt),
	)

	if !reflect.DeepEqual(options.Tags, []string{"marathon", "running"}) {
		t.Fatalf("unexpected tags: %v", options.Tags)
	}

	if options.Category != "Sports" {
		t.Fatalf("unexpected category: %s", options.Category)
	}

	if !options.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected created at: %v", options.CreatedAt)
	}
}

func TestNewSearchOptions(t *testing.T) {
	options := NewSearchOptions()

	if options.Limit != 5 {
		t.Fatalf("expected default limit 5, got %d", options.Limit)
	}

	options = NewSearchOptions(WithSearchLimit(2))

	if options.Limit != 2 {
		t.Fatalf("expected limit 2, got %d", options.Limit)
	}
}

// Omitted update fields must be distinguishable from deliberately empty ones.
func TestNewUpdateOptionsPresence(t *testing.T) {
	options := NewUpdateOptions()

	if options.Content != nil || options.Tags != nil || options.Category != nil {
		t.Fatalf("expected all fields absent, got %+v", options)
	}

	options = NewUpdateOptions(WithNewTags([]string{}))

	if options.Tags == nil {
		t.Fatal("expected tags to be present")
	}

	if len(*options.Tags) != 0 {
		t.Fatalf("expected empty tags, got %v", *options.Tags)
	}

	if options.Content != nil || options.Category != nil {
		t.Fatal("expected content and category to remain absent")
	}

	options = NewUpdateOptions(
		WithNewContent(""),
		WithNewCategory("Technology"),
	)

	if options.Content == nil || *options.Content != "" {
		t.Fatal("expected empty content to be present")
	}

	if options.Category == nil || *options.Category != "Technology" {
		t.Fatal("expected category to be present")
	}
}
