package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/minhngocdo/meeting-summarizer/internal/config"
	"github.com/minhngocdo/meeting-summarizer/internal/errs"
	"github.com/minhngocdo/meeting-summarizer/internal/logger"
	"github.com/minhngocdo/meeting-summarizer/pkg/executor"
)

type whisperTranscriber struct {
	cfg    config.WhisperConfig
	exec   executor.Executor
	logger logger.Logger
}

// NewWhisperTranscriber creates a Transcriber backed by a whisper.cpp binary.
func NewWhisperTranscriber(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &whisperTranscriber{
		cfg:    cfg,
		exec:   exec,
		logger: log,
	}
}

// Transcribe runs whisper.cpp over a prepared WAV file and returns the
// plain-text transcript. The intermediate text output file is removed
// before returning.
func (w *whisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return "", errs.New(errs.KindAudioUnreadable, "audio file not found").WithPath(audioPath)
	}
	if info.Size() == 0 {
		return "", errs.New(errs.KindAudioUnreadable, "audio file is empty").WithPath(audioPath)
	}

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Threads, audioPath)

	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := w.exec.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	defer func() {
		if err := os.Remove(txtPath); err != nil && !os.IsNotExist(err) {
			w.logger.Warn(ctx, "Failed to cleanup transcript file %s: %v", txtPath, err)
		}
	}()

	raw, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript output: %w", err)
	}

	transcript := strings.TrimSpace(string(raw))
	if transcript == "" {
		return "", errs.New(errs.KindNoSpeechDetected, "no speech detected in audio").WithPath(audioPath)
	}

	w.logger.Info(ctx, "Transcription completed: %d characters", len(transcript))
	return transcript, nil
}
