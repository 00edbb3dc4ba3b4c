// Package pipeline drives one meeting through intake, transcription,
// summarization and document assembly.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minhngocdo/meeting-summarizer/internal/audio"
	"github.com/minhngocdo/meeting-summarizer/internal/config"
	"github.com/minhngocdo/meeting-summarizer/internal/document"
	"github.com/minhngocdo/meeting-summarizer/internal/errs"
	"github.com/minhngocdo/meeting-summarizer/internal/logger"
	"github.com/minhngocdo/meeting-summarizer/internal/meeting"
	"github.com/minhngocdo/meeting-summarizer/internal/summarizer"
)

// Pipeline owns the current session and runs stages strictly in sequence.
// The mutex guarantees at most one active run mutates the current session.
type Pipeline struct {
	cfg        *config.Config
	extractor  *audio.Extractor
	transcriber audio.Transcriber
	summarizer summarizer.Summarizer
	assembler  *document.Assembler
	logger     logger.Logger

	mu      sync.Mutex
	current *Session
}

func New(
	cfg *config.Config,
	extractor *audio.Extractor,
	transcriber audio.Transcriber,
	summ summarizer.Summarizer,
	assembler *document.Assembler,
	log logger.Logger,
) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		extractor:  extractor,
		transcriber: transcriber,
		summarizer: summ,
		assembler:  assembler,
		logger:     log,
	}
}

// Run processes one source to completion or failure. A failed run keeps any
// transcript or summary already produced on the returned session; no stage
// is retried. Text sources skip the audio stages entirely.
func (p *Pipeline) Run(ctx context.Context, src meeting.Source, meetingType meeting.Type, report ProgressFunc) (*Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if report == nil {
		report = func(Progress) {}
	}

	sess := &Session{
		ID:          uuid.NewString(),
		MeetingType: meetingType,
		State:       StateIdle,
		StartedAt:   time.Now(),
	}
	p.current = sess

	p.logger.Info(ctx, "Starting run %s (%s, %s meeting)", sess.ID, src.Kind, meetingType)

	if int64(len(src.Data)) > p.cfg.MaxFileSizeBytes() {
		return p.fail(ctx, sess, report,
			errs.New(errs.KindFileTooLarge, "file size exceeds %dMB limit", p.cfg.Upload.MaxFileSizeMB))
	}

	transcript, err := p.deriveTranscript(ctx, sess, src, report)
	if err != nil {
		return p.fail(ctx, sess, report, err)
	}
	sess.Transcript = transcript

	p.setState(ctx, sess, report, StateSummarizing, 70, "Generating summary and action items...")
	result, err := p.summarizer.Summarize(ctx, transcript, meetingType)
	if err != nil {
		return p.fail(ctx, sess, report, err)
	}
	sess.Summary = result.Summary
	sess.ActionItems = result.ActionItems

	p.setState(ctx, sess, report, StateAssemblingDocument, 90, "Creating document...")
	artifact, err := p.assembler.Assemble(ctx, transcript, result.Summary, result.ActionItems, time.Now())
	if err != nil {
		return p.fail(ctx, sess, report, err)
	}
	sess.Artifact = artifact

	sess.State = StateComplete
	report(Progress{State: StateComplete, Percent: 100, Message: "Processing complete"})
	p.logger.Info(ctx, "Run %s completed in %s", sess.ID, time.Since(sess.StartedAt))

	return sess, nil
}

// Current returns the most recent session, which may still be in flight.
func (p *Pipeline) Current() *Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// deriveTranscript resolves the source into transcript text, running the
// audio stages only for video and audio sources. The rendered WAV is
// released before returning on every path.
func (p *Pipeline) deriveTranscript(ctx context.Context, sess *Session, src meeting.Source, report ProgressFunc) (string, error) {
	switch src.Kind {
	case meeting.SourceText:
		transcript := strings.TrimSpace(string(src.Data))
		if transcript == "" {
			return "", errs.New(errs.KindEmptyTranscript, "transcript file is empty")
		}
		return transcript, nil

	case meeting.SourceVideo:
		p.setState(ctx, sess, report, StateExtractingAudio, 10, "Extracting audio from video...")
		wavPath, cleanup, err := p.extractor.ExtractFromVideo(ctx, src.Data, filepath.Ext(src.Name))
		if err != nil {
			return "", err
		}
		defer cleanup()
		return p.transcribe(ctx, sess, report, wavPath)

	case meeting.SourceAudio:
		p.setState(ctx, sess, report, StateExtractingAudio, 10, "Preparing audio file...")
		wavPath, cleanup, err := p.extractor.PrepareAudio(ctx, src.Data, filepath.Ext(src.Name))
		if err != nil {
			return "", err
		}
		defer cleanup()
		return p.transcribe(ctx, sess, report, wavPath)

	default:
		return "", fmt.Errorf("unsupported source type for %q", src.Name)
	}
}

func (p *Pipeline) transcribe(ctx context.Context, sess *Session, report ProgressFunc, wavPath string) (string, error) {
	p.setState(ctx, sess, report, StateTranscribing, 40, "Converting speech to text...")
	return p.transcriber.Transcribe(ctx, wavPath)
}

func (p *Pipeline) setState(ctx context.Context, sess *Session, report ProgressFunc, state State, percent int, msg string) {
	sess.State = state
	p.logger.Info(ctx, "[%d%%] %s", percent, msg)
	report(Progress{State: state, Percent: percent, Message: msg})
}

// fail moves the session into the absorbing failed state. Partial results
// already recorded on the session are left in place.
func (p *Pipeline) fail(ctx context.Context, sess *Session, report ProgressFunc, err error) (*Session, error) {
	sess.State = StateFailed
	sess.Err = err
	p.logger.Error(ctx, "Run %s failed: %v", sess.ID, err)
	report(Progress{State: StateFailed, Percent: 100, Message: err.Error()})
	return sess, err
}
