package watcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/minhngocdo/meeting-summarizer/internal/logger"
	"github.com/minhngocdo/meeting-summarizer/internal/meeting"
)

// settleDelay gives the writer time to finish before the file is picked up.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	inputDir string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	wg       sync.WaitGroup
}

// Start monitors the intake directory for newly created meeting files and
// dispatches them to the handler. Runs are handled one at a time; the
// pipeline serializes them anyway, and intake order is preserved.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching for meeting recordings in: %s", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Intake watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}

			kind := meeting.ClassifySource(event.Name)
			if kind == meeting.SourceUnknown {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New %s file detected: %s", kind, event.Name)
			time.Sleep(settleDelay)

			w.wg.Add(1)
			func() {
				defer w.wg.Done()
				if err := w.handler(ctx, event.Name, kind); err != nil {
					w.logger.Error(ctx, "Failed to process %s: %v", event.Name, err)
				}
			}()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
