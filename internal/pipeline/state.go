package pipeline

import (
	"time"

	"github.com/minhngocdo/meeting-summarizer/internal/meeting"
)

// State is the coarse position of a run inside the pipeline.
type State int

const (
	StateIdle State = iota
	StateExtractingAudio
	StateTranscribing
	StateSummarizing
	StateAssemblingDocument
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateExtractingAudio:
		return "extracting_audio"
	case StateTranscribing:
		return "transcribing"
	case StateSummarizing:
		return "summarizing"
	case StateAssemblingDocument:
		return "assembling_document"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Progress is a coarse checkpoint reported at stage boundaries. Percent is
// monotonically non-decreasing within a run; the exact values are not a
// contract.
type Progress struct {
	State   State
	Percent int
	Message string
}

// ProgressFunc observes progress checkpoints during a run.
type ProgressFunc func(Progress)

// Session owns the mutable state of one processing run. It is created fresh
// per run and replaced wholesale when the next run starts. After a failure
// any transcript or summary already produced remains readable for
// diagnostics; the artifact only exists once every stage has succeeded.
type Session struct {
	ID          string
	MeetingType meeting.Type
	Transcript  string
	Summary     string
	ActionItems []string
	Artifact    *meeting.Artifact
	State       State
	Err         error
	StartedAt   time.Time
}
