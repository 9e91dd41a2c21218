package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/finsightlabs/finsight/constants"
)

// WatchConfig controls the inbox watcher, which auto-submits PDFs dropped
// into a directory on behalf of a fixed owner.
type WatchConfig struct {
	Root        string
	OwnerID     string
	Query       string        // empty uses the default analysis query
	InitialScan bool          // if true, walk root and submit existing files
	Debounce    time.Duration // coalesce rapid write/rename bursts
}

// Watcher feeds files from an inbox directory into the ingest service.
type Watcher struct {
	svc    *Service
	cfg    WatchConfig
	logger *slog.Logger
}

func NewWatcher(svc *Service, cfg WatchConfig, logger *slog.Logger) (*Watcher, error) {
	if strings.TrimSpace(cfg.Root) == "" {
		return nil, errors.New("watch root is required")
	}
	if cfg.OwnerID == "" {
		cfg.OwnerID = "inbox"
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}
	return &Watcher{svc: svc, cfg: cfg, logger: logger}, nil
}

// Run blocks until ctx is cancelled.
func (wa *Watcher) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		wa.logger.Error("failed to create fsnotify watcher", "error", err)
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			wa.logger.Warn("failed to close watcher", "error", err)
		}
	}()

	// Add root recursively; a dropped subtree is watched too.
	addDir := func(root string) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return w.Add(path)
			}
			if wa.cfg.InitialScan && allowedFile(path) {
				wa.submit(ctx, path)
			}
			return nil
		})
	}
	if err := addDir(wa.cfg.Root); err != nil {
		wa.logger.Error("failed to watch inbox", "root", wa.cfg.Root, "error", err)
		return err
	}
	wa.logger.Info("inbox watcher started", "root", wa.cfg.Root, "owner_id", wa.cfg.OwnerID)

	var timer *time.Timer
	pending := map[string]struct{}{}

	flush := func() {
		for p := range pending {
			delete(pending, p)
			wa.submit(ctx, p)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if e.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(e.Name); err == nil && info.IsDir() {
					if err := addDir(e.Name); err != nil {
						wa.logger.Warn("failed to watch new directory", "path", e.Name, "error", err)
					}
					continue
				}
			}
			if allowedFile(e.Name) && e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				pending[e.Name] = struct{}{}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(wa.cfg.Debounce, flush)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			wa.logger.Error("watcher error", "error", err)
		}
	}
}

func (wa *Watcher) submit(ctx context.Context, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		wa.logger.Error("failed to read inbox file", "path", path, "error", err)
		return
	}
	res, err := wa.svc.Submit(ctx, SubmitRequest{
		OwnerID:  wa.cfg.OwnerID,
		Filename: filepath.Base(path),
		Content:  content,
		Query:    wa.cfg.Query,
	})
	if err != nil {
		wa.logger.Error("inbox submit failed", "path", path, "error", err)
		return
	}
	wa.logger.Info("inbox file submitted", "path", path, "document_id", res.Document.ID, "duplicate", res.Duplicate)
	if err := os.Remove(path); err != nil {
		wa.logger.Warn("failed to remove ingested inbox file", "path", path, "error", err)
	}
}

func allowedFile(path string) bool {
	return constants.AllowedExt(constants.NormalizeExt(filepath.Ext(path)))
}
