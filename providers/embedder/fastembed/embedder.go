package fastembed

import (
	"context"
	"errors"
	"log/slog"

	fastembed "github.com/anush008/fastembed-go"
	"github.com/w-h-a/memory/providers/embedder"
)

// fastEmbedder runs the sentence-transformer ONNX models locally. The
// default model, all-MiniLM-L6-v2, produces 384-dimensional vectors.
type fastEmbedder struct {
	options embedder.Options
	model   *fastembed.FlagEmbedding
}

func (e *fastEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.model.QueryEmbed(text)
	if err != nil {
		return nil, err
	}

	if len(vec) == 0 {
		return nil, errors.New("no embedding produced")
	}

	return vec, nil
}

func (e *fastEmbedder) Close() error {
	if e.model != nil {
		e.model.Destroy()
	}
	return nil
}

// resolveEmbeddingModel maps the canonical sentence-transformers name to the
// library's identifier; anything else passes through untouched.
func resolveEmbeddingModel(name string) fastembed.EmbeddingModel {
	switch name {
	case "", "all-MiniLM-L6-v2":
		return fastembed.AllMiniLML6V2
	default:
		return fastembed.EmbeddingModel(name)
	}
}

func NewEmbedder(opts ...embedder.Option) embedder.Embedder {
	options := embedder.NewOptions(opts...)

	e := &fastEmbedder{
		options: options,
	}

	flag, err := fastembed.NewFlagEmbedding(&fastembed.InitOptions{
		Model:    resolveEmbeddingModel(options.Model),
		CacheDir: options.CacheDir,
	})
	if err != nil {
		detail := "failed to load model for fastembed embedder"
		slog.ErrorContext(context.Background(), detail, "error", err)
		panic(detail)
	}

	e.model = flag

	return e
}
