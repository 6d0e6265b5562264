package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/alecthomas/kong"
	"github.com/w-h-a/memory"
	"github.com/w-h-a/memory/providers/embedder"
	"github.com/w-h-a/memory/providers/embedder/fastembed"
	"github.com/w-h-a/memory/providers/embedder/google"
	"github.com/w-h-a/memory/providers/embedder/openai"
	"github.com/w-h-a/memory/providers/store"
	"github.com/w-h-a/memory/providers/store/postgres"
)

var (
	cfg struct {
		// Store config
		DatabaseURL string `help:"PostgreSQL connection URL" env:"DATABASE_URL"`
		Dimension   int    `help:"Embedding dimension of the store; must match the provider's output" default:"384"`

		// Embedder config
		Provider     string `help:"Embedding provider (fastembed, openai, or google)" default:"fastembed"`
		APIKey       string `help:"API key for the OpenAI embedding provider" env:"OPENAI_API_KEY" default:""`
		GoogleAPIKey string `help:"API key for the Google embedding provider" env:"GOOGLE_API_KEY" default:""`
		Model        string `help:"Model identifier for vector embeddings" default:""`
		CacheDir     string `help:"Cache directory for local models" default:".fastembed"`

		// Search config
		K int `help:"Number of search results" default:"2"`
	}
)

type sample struct {
	content  string
	tags     []string
	category string
}

// resolveModel picks the provider's default model when none is given; the
// result is also what gets recorded per row.
func resolveModel(provider, model string) string {
	if len(model) > 0 {
		return model
	}

	switch provider {
	case "openai":
		return "text-embedding-3-small"
	case "google":
		return "text-embedding-004"
	default:
		return "all-MiniLM-L6-v2"
	}
}

func main() {
	// Parse inputs
	_ = kong.Parse(&cfg)
	ctx := context.Background()

	if len(cfg.DatabaseURL) == 0 {
		log.Fatal("❌ DATABASE_URL is required")
	}

	// 1. Create embedder
	modelName := resolveModel(cfg.Provider, cfg.Model)

	var emb embedder.Embedder
	switch cfg.Provider {
	case "openai":
		emb = openai.NewEmbedder(
			embedder.WithApiKey(cfg.APIKey),
			embedder.WithModel(modelName),
		)
	case "google":
		emb = google.NewEmbedder(
			embedder.WithApiKey(cfg.GoogleAPIKey),
			embedder.WithModel(modelName),
		)
	default:
		emb = fastembed.NewEmbedder(
			embedder.WithModel(modelName),
			embedder.WithCacheDir(cfg.CacheDir),
		)
	}

	if closer, ok := emb.(io.Closer); ok {
		defer closer.Close()
	}

	// 2. Create store
	st := postgres.NewStore(
		store.WithLocation(cfg.DatabaseURL),
		store.WithDimension(cfg.Dimension),
	)

	// 3. Create memory system
	mem := memory.New(
		memory.WithStore(st),
		memory.WithEmbedder(emb),
		memory.WithModel(modelName),
	)

	fmt.Println("--- Memory Store Demo ---")

	// 4. Add memories
	samples := []sample{
		{"I have run the Guangzhou Marathon", []string{"marathon", "running"}, "Sports"},
		{"My favorite food is chicken wings", []string{"food", "favorite"}, "Personal"},
		{"I like R&B music", []string{"music", "preference"}, "Personal"},
		{"I want to see Mount Fuji", []string{"travel", "Japan"}, "Personal"},
		{"I am familiar with Docker Compose and have set up a MySQL master-slave structure for testing", []string{"Docker", "MySQL"}, "Technology"},
	}

	ids := make([]int64, 0, len(samples))
	for _, s := range samples {
		id, err := mem.Add(
			ctx,
			s.content,
			memory.WithTags(s.tags...),
			memory.WithCategory(s.category),
		)
		if err != nil {
			log.Fatalf("❌ failed to add memory: %v", err)
		}
		ids = append(ids, id)
		fmt.Printf("✅ Added memory %d: %s\n", id, s.content)
	}

	// 5. Search memories
	fmt.Println("\nSearching for memories about technology...")
	results, err := mem.Search(ctx, "technology", memory.WithSearchLimit(cfg.K))
	if err != nil {
		log.Fatalf("❌ failed to search: %v", err)
	}
	for _, r := range results {
		fmt.Printf("ID: %d | Similarity: %.4f | Category: %s | Tags: %v\n  %s\n", r.Id, r.Similarity, r.Category, r.Tags, r.Content)
	}

	// 6. Update a memory
	fmt.Println("\nUpdating a memory...")
	updated, err := mem.Update(
		ctx,
		ids[0],
		memory.WithNewContent("I have completed the Guangzhou Marathon"),
		memory.WithNewTags([]string{"marathon", "running", "achievement"}),
	)
	if err != nil {
		log.Fatalf("❌ failed to update memory: %v", err)
	}
	if updated {
		rec, _, err := mem.Get(ctx, ids[0])
		if err != nil {
			log.Fatalf("❌ failed to get memory: %v", err)
		}
		fmt.Printf("✅ Updated memory %d: %s (tags: %v, category: %s)\n", rec.Id, rec.Content, rec.Tags, rec.Category)
	}

	// 7. Delete a memory
	fmt.Println("\nDeleting a memory...")
	last := ids[len(ids)-1]
	deleted, err := mem.Delete(ctx, last)
	if err != nil {
		log.Fatalf("❌ failed to delete memory: %v", err)
	}
	if deleted {
		_, found, err := mem.Get(ctx, last)
		if err != nil {
			log.Fatalf("❌ failed to get memory: %v", err)
		}
		fmt.Printf("✅ Deleted memory %d (still present: %v)\n", last, found)
	}
}
