package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/amnayelamri/ResinByDounia/internal/config"
	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/models"
	"github.com/google/uuid"
)

// publicUploadsPrefix is the URL path prefix the stored files are served
// from by the HTTP layer.
const publicUploadsPrefix = "/uploads"

// mediaFileStore is the disk-backed implementation of [MediaStore].
// Uploaded files are written under <mediaDir>/<kind>/ with generated,
// collision-free names; the database only holds the resulting public URL
// paths.
type mediaFileStore struct {
	mediaDir string
	logger   *logger.Logger
}

// NewMediaFileStore constructs a [MediaStore] rooted at cfg.MediaDir.
// The root directory is created if it does not exist.
func NewMediaFileStore(cfg config.Files, logger *logger.Logger) (MediaStore, error) {
	if cfg.MediaDir == "" {
		return nil, fmt.Errorf("media directory is not configured")
	}

	if err := os.MkdirAll(cfg.MediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating media directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.MediaDir).Msg("creating media file store")
	return &mediaFileStore{
		mediaDir: cfg.MediaDir,
		logger:   logger,
	}, nil
}

// SaveFile streams the upload to disk under <mediaDir>/<kind>/ and returns
// the public URL path ("/uploads/<kind>/<name>") to store in the database.
//
// Stored names are "<unix-ms>-<uuid-fragment><ext>": the timestamp keeps
// directory listings chronological, the uuid fragment avoids collisions
// between uploads landing in the same millisecond.
func (s *mediaFileStore) SaveFile(ctx context.Context, kind string, upload models.FileUpload) (string, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.mediaDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Err(err).Str("func", "*mediaFileStore.SaveFile").Msg("error creating media subdirectory")
		return "", fmt.Errorf("error creating media subdirectory: %w", err)
	}

	name := generateFileName(upload.Name)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		log.Err(err).Str("func", "*mediaFileStore.SaveFile").Msg("error creating media file")
		return "", fmt.Errorf("error creating media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, upload.Content); err != nil {
		log.Err(err).Str("func", "*mediaFileStore.SaveFile").Msg("error writing media file")
		return "", fmt.Errorf("error writing media file: %w", err)
	}

	return path.Join(publicUploadsPrefix, kind, name), nil
}

func generateFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	suffix := strings.Split(uuid.NewString(), "-")[0]

	return millis + "-" + suffix + ext
}
