package summarizer

import (
	"context"

	"github.com/minhngocdo/meeting-summarizer/internal/meeting"
)

// Summarizer produces a structured summary and action items for a transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string, meetingType meeting.Type) (meeting.SummaryResult, error)
}

// Generator issues a single text-generation request to a language model.
// The pipeline depends on this interface so tests can substitute a
// deterministic stand-in for live model calls.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
