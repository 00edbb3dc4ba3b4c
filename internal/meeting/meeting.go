// Package meeting holds the domain model shared by every pipeline stage.
package meeting

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Type classifies a meeting and selects which prompt pair drives summarization.
type Type string

const (
	TypeGeneral       Type = "general"
	TypeStandup       Type = "standup"
	TypePlanning      Type = "planning"
	TypeRetrospective Type = "retrospective"
)

// ParseType maps a tag to a known meeting type. Unrecognized tags fall back
// to general, matching the prompt lookup behavior.
func ParseType(s string) Type {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeStandup:
		return TypeStandup
	case TypePlanning:
		return TypePlanning
	case TypeRetrospective:
		return TypeRetrospective
	default:
		return TypeGeneral
	}
}

// SourceKind identifies what kind of input the caller supplied.
type SourceKind int

const (
	SourceUnknown SourceKind = iota
	SourceVideo
	SourceAudio
	SourceText
)

func (k SourceKind) String() string {
	switch k {
	case SourceVideo:
		return "video"
	case SourceAudio:
		return "audio"
	case SourceText:
		return "text"
	default:
		return "unknown"
	}
}

var (
	videoExtensions = map[string]bool{".mp4": true, ".webm": true, ".avi": true, ".mov": true}
	audioExtensions = map[string]bool{".mp3": true, ".wav": true, ".m4a": true, ".flac": true}
)

// ClassifySource determines the source kind from the file extension.
func ClassifySource(name string) SourceKind {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case videoExtensions[ext]:
		return SourceVideo
	case audioExtensions[ext]:
		return SourceAudio
	case ext == ".txt":
		return SourceText
	default:
		return SourceUnknown
	}
}

// Source is a single uploaded input. Data is consumed once by the pipeline
// and not retained after the transcript is derived.
type Source struct {
	Kind SourceKind
	Name string
	Data []byte
}

// SummaryResult is the output of the language-model stage. ActionItems keeps
// the order in which items were parsed from the model response.
type SummaryResult struct {
	Summary     string
	ActionItems []string
}

// Artifact is the assembled output document, held fully in memory.
type Artifact struct {
	Filename  string
	Data      []byte
	CreatedAt time.Time
}

// ArtifactFilename builds the download name for a document generated at t.
func ArtifactFilename(t time.Time) string {
	return fmt.Sprintf("meeting_summary_%s.docx", t.Format("20060102_150405"))
}
