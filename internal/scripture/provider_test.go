package scripture

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/logger"
)

func writeChapter(t *testing.T, dir string, book, chapter int, content string) {
	t.Helper()
	bookDir := filepath.Join(dir, strconv.Itoa(book))
	if err := os.MkdirAll(bookDir, 0o755); err != nil {
		t.Fatalf("failed to create book dir: %v", err)
	}
	path := filepath.Join(bookDir, strconv.Itoa(chapter)+".json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write chapter file: %v", err)
	}
}

func TestChapterReadsFile(t *testing.T) {
	dir := t.TempDir()
	writeChapter(t, dir, 43, 3, `{"book":43,"chapter":3,"verses":["first","second"]}`)
	p := NewProvider(dir, nil, logger.New("error", false))

	ch, err := p.Chapter(context.Background(), 43, 3)
	if err != nil {
		t.Fatalf("Chapter failed: %v", err)
	}
	if ch.Book != 43 || ch.Chapter != 3 || len(ch.Verses) != 2 {
		t.Errorf("unexpected chapter: %+v", ch)
	}
}

func TestChapterMissingFile(t *testing.T) {
	p := NewProvider(t.TempDir(), nil, logger.New("error", false))

	if _, err := p.Chapter(context.Background(), 1, 1); !errors.Is(err, ErrChapterNotFound) {
		t.Fatalf("expected ErrChapterNotFound, got %v", err)
	}
}

func TestChapterRejectsInvalidRef(t *testing.T) {
	p := NewProvider(t.TempDir(), nil, logger.New("error", false))

	if _, err := p.Chapter(context.Background(), 67, 1); !errors.Is(err, domain.ErrInvalidBook) {
		t.Fatalf("expected ErrInvalidBook, got %v", err)
	}
	if _, err := p.Chapter(context.Background(), 1, 0); !errors.Is(err, domain.ErrInvalidChapter) {
		t.Fatalf("expected ErrInvalidChapter, got %v", err)
	}
}

func TestChapterCorruptFile(t *testing.T) {
	dir := t.TempDir()
	writeChapter(t, dir, 1, 1, `{broken`)
	p := NewProvider(dir, nil, logger.New("error", false))

	if _, err := p.Chapter(context.Background(), 1, 1); err == nil {
		t.Fatal("expected an error for a corrupt chapter file")
	}
}
