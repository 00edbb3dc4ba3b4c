package executor

import "context"

// Executor defines the interface for executing external commands.
// The audio pipeline depends on this interface so tests can substitute a
// deterministic stand-in for ffmpeg, ffprobe and whisper.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	LookPath(name string) error
}
