package storage

import (
	"os"
	"path/filepath"

	"github.com/tair/blog-platform/pkg/logger"
)

// ImageStore manages uploaded image files on local disk. Deletion is a
// best-effort side effect: failures are logged and never reach the caller.
type ImageStore struct {
	baseDir string
}

// NewImageStore creates an image store rooted at baseDir
func NewImageStore(baseDir string) *ImageStore {
	return &ImageStore{baseDir: baseDir}
}

// ScheduleDelete removes an image in the background. The primary
// operation must never wait on or fail because of it.
func (s *ImageStore) ScheduleDelete(filename, category string) {
	if filename == "" {
		return
	}

	path := filepath.Join(s.baseDir, category, filepath.Base(filename))

	go func() {
		if err := os.Remove(path); err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("file", filename).
				Str("category", category).
				Msg("Failed to delete image")
			return
		}
		logger.Logger.Info().
			Str("file", filename).
			Str("category", category).
			Msg("Deleted unused image")
	}()
}
