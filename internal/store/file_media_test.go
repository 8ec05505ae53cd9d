package store

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/amnayelamri/ResinByDounia/internal/config"
	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/models"
)

func newTestMediaStore(t *testing.T) (MediaStore, string) {
	t.Helper()
	dir := t.TempDir()

	media, err := NewMediaFileStore(config.Files{MediaDir: dir}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create media store: %v", err)
	}
	return media, dir
}

func TestMediaFileStore_SaveFile(t *testing.T) {
	media, dir := newTestMediaStore(t)
	ctx := context.Background()

	publicPath, err := media.SaveFile(ctx, "products", models.FileUpload{
		Name:    "tray.JPG",
		Content: strings.NewReader("image-bytes"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(publicPath, "/uploads/products/") {
		t.Errorf("expected public path under /uploads/products/, got %s", publicPath)
	}

	// name is "<unix-ms>-<uuid fragment>" plus the lowercased original extension
	name := filepath.Base(publicPath)
	if matched, _ := regexp.MatchString(`^\d+-[0-9a-f]+\.jpg$`, name); !matched {
		t.Errorf("unexpected generated file name: %s", name)
	}

	stored, err := os.ReadFile(filepath.Join(dir, "products", name))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(stored) != "image-bytes" {
		t.Errorf("stored content mismatch: %q", stored)
	}
}

func TestMediaFileStore_SaveFile_UniqueNames(t *testing.T) {
	media, _ := newTestMediaStore(t)
	ctx := context.Background()

	first, err := media.SaveFile(ctx, "creations", models.FileUpload{Name: "a.png", Content: strings.NewReader("1")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := media.SaveFile(ctx, "creations", models.FileUpload{Name: "a.png", Content: strings.NewReader("2")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected two uploads of the same file name to get distinct stored names")
	}
}

func TestMediaFileStore_SaveFile_CancelledContext(t *testing.T) {
	media, _ := newTestMediaStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := media.SaveFile(ctx, "products", models.FileUpload{Name: "a.jpg", Content: strings.NewReader("x")}); err == nil {
		t.Error("expected error for cancelled context, got nil")
	}
}

func TestNewMediaFileStore_MissingDir(t *testing.T) {
	if _, err := NewMediaFileStore(config.Files{}, logger.Nop()); err == nil {
		t.Error("expected error for unconfigured media directory, got nil")
	}
}
