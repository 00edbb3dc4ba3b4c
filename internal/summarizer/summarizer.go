package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/minhngocdo/meeting-summarizer/internal/errs"
	"github.com/minhngocdo/meeting-summarizer/internal/logger"
	"github.com/minhngocdo/meeting-summarizer/internal/meeting"
)

type implSummarizer struct {
	gen    Generator
	logger logger.Logger
}

// New creates a Summarizer that drives the given Generator.
func New(gen Generator, log logger.Logger) Summarizer {
	return &implSummarizer{
		gen:    gen,
		logger: log,
	}
}

// Summarize issues two independent generation calls, one for the summary and
// one for the action items, using the prompt pair for the meeting type. Both
// calls must succeed; no partial result is returned.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string, meetingType meeting.Type) (meeting.SummaryResult, error) {
	if strings.TrimSpace(transcript) == "" {
		return meeting.SummaryResult{}, errs.New(errs.KindEmptyTranscript, "transcript is empty")
	}

	pair := promptsFor(meetingType)

	s.logger.Info(ctx, "Generating summary for %s meeting...", meetingType)
	summary, err := s.gen.Generate(ctx, fmt.Sprintf(pair.summary, transcript))
	if err != nil {
		return meeting.SummaryResult{}, errs.Wrap(errs.KindGenerationFailed, err, "summary generation failed")
	}

	s.logger.Info(ctx, "Generating action items...")
	actionText, err := s.gen.Generate(ctx, fmt.Sprintf(pair.actions, transcript))
	if err != nil {
		return meeting.SummaryResult{}, errs.Wrap(errs.KindGenerationFailed, err, "action item generation failed")
	}

	items := ParseActionItems(strings.TrimSpace(actionText))
	s.logger.Info(ctx, "Generated summary and %d action items", len(items))

	return meeting.SummaryResult{
		Summary:     strings.TrimSpace(summary),
		ActionItems: items,
	}, nil
}
