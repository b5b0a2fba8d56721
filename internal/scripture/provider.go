// Package scripture serves Bible text from the bundled chapter files,
// optionally fronted by a Redis cache.
package scripture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/logger"
)

var ErrChapterNotFound = errors.New("chapter not found")

// Chapter is one chapter of Bible text.
type Chapter struct {
	Book    int      `json:"book"`
	Chapter int      `json:"chapter"`
	Verses  []string `json:"verses"`
}

// Provider reads chapters from <dir>/<book>/<chapter>.json. The text is
// immutable, so cached entries never need invalidation.
type Provider struct {
	dir   string
	cache *Cache
	log   logger.Logger
}

// NewProvider creates a provider. cache may be nil.
func NewProvider(dir string, cache *Cache, log logger.Logger) *Provider {
	return &Provider{dir: dir, cache: cache, log: log}
}

// Chapter returns one chapter of text.
func (p *Provider) Chapter(ctx context.Context, book, chapter int) (Chapter, error) {
	ref := domain.VerseRef{Book: book, Chapter: chapter, Verse: 1}
	if err := ref.Validate(); err != nil {
		return Chapter{}, err
	}

	if p.cache != nil {
		if ch, ok := p.cache.Get(ctx, book, chapter); ok {
			return ch, nil
		}
	}

	path := filepath.Join(p.dir, strconv.Itoa(book), strconv.Itoa(chapter)+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Chapter{}, fmt.Errorf("%w: book %d chapter %d", ErrChapterNotFound, book, chapter)
		}
		return Chapter{}, fmt.Errorf("failed to read chapter file: %w", err)
	}

	var ch Chapter
	if err := json.Unmarshal(data, &ch); err != nil {
		return Chapter{}, fmt.Errorf("failed to parse chapter file %s: %w", path, err)
	}

	if p.cache != nil {
		p.cache.Put(ctx, ch)
	}
	return ch, nil
}
