package watcher

import (
	"context"

	"github.com/minhngocdo/meeting-summarizer/internal/meeting"
)

// Watcher defines the interface for intake directory monitoring.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one detected meeting file.
type EventHandler func(ctx context.Context, filePath string, kind meeting.SourceKind) error
