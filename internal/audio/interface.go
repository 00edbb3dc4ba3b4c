package audio

import "context"

// Transcriber converts a prepared 16kHz mono WAV file into plain text.
// The pipeline depends on this interface so tests can substitute a
// deterministic stand-in for the speech-recognition model.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
