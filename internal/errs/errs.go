// Package errs provides the closed set of error kinds used across the
// meeting processing pipeline. Every stage failure carries a machine-readable
// Kind plus structured context, so callers can branch on the kind without
// parsing message strings.
package errs

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error code.
type Kind string

const (
	// KindFileTooLarge indicates the uploaded file exceeds the configured limit.
	KindFileTooLarge Kind = "FILE_TOO_LARGE"
	// KindNoAudioTrack indicates the video container has no audio stream.
	KindNoAudioTrack Kind = "NO_AUDIO_TRACK"
	// KindAudioExtractionFailed indicates audio rendering produced no usable output.
	KindAudioExtractionFailed Kind = "AUDIO_EXTRACTION_FAILED"
	// KindAudioUnreadable indicates the audio file is missing or empty.
	KindAudioUnreadable Kind = "AUDIO_UNREADABLE"
	// KindNoSpeechDetected indicates transcription yielded no text.
	KindNoSpeechDetected Kind = "NO_SPEECH_DETECTED"
	// KindEmptyTranscript indicates a blank transcript was offered for summarization.
	KindEmptyTranscript Kind = "EMPTY_TRANSCRIPT"
	// KindGenerationFailed indicates a language-model call errored or timed out.
	KindGenerationFailed Kind = "GENERATION_FAILED"
	// KindDocumentAssemblyFailed indicates the output document could not be materialized.
	KindDocumentAssemblyFailed Kind = "DOCUMENT_ASSEMBLY_FAILED"
	// KindInvalidWebhookURL indicates the webhook URL failed validation.
	KindInvalidWebhookURL Kind = "INVALID_WEBHOOK_URL"
	// KindNoContent indicates there is nothing meaningful to send.
	KindNoContent Kind = "NO_CONTENT"
	// KindWebhookSendFailed indicates the webhook POST failed.
	KindWebhookSendFailed Kind = "WEBHOOK_SEND_FAILED"
)

// Error is the pipeline error type. Message is human-readable; Path and
// HTTPStatus carry structured diagnostics where they apply.
type Error struct {
	Kind       Kind
	Message    string
	Path       string
	HTTPStatus int
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// WithPath attaches the offending file path and returns the receiver.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

// WithHTTPStatus attaches a remote status code and returns the receiver.
func (e *Error) WithHTTPStatus(status int) *Error {
	e.HTTPStatus = status
	return e
}

// New creates an Error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind around an underlying cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf returns the Kind of err, or the empty string if err is not an Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
