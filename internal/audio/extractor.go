// Package audio turns uploaded video and audio bytes into transcripts.
// All intermediate files are scoped temporaries, removed on every exit path.
package audio

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/minhngocdo/meeting-summarizer/internal/errs"
	"github.com/minhngocdo/meeting-summarizer/internal/logger"
	"github.com/minhngocdo/meeting-summarizer/pkg/executor"
)

// Extractor renders uploaded media into 16kHz mono WAV files ready for
// transcription. Whisper expects that exact format; resampling here instead
// of relying on the model's own loader avoids silent accuracy loss.
type Extractor struct {
	tempDir string
	exec    executor.Executor
	logger  logger.Logger
}

func NewExtractor(tempDir string, exec executor.Executor, log logger.Logger) *Extractor {
	return &Extractor{
		tempDir: tempDir,
		exec:    exec,
		logger:  log,
	}
}

// ExtractFromVideo writes the uploaded video bytes to a scoped temporary file,
// verifies an audio stream exists, and renders it to a 16kHz mono PCM WAV.
// The video temporary is removed before returning on every path; the caller
// must invoke cleanup to release the returned WAV.
func (e *Extractor) ExtractFromVideo(ctx context.Context, data []byte, ext string) (string, func(), error) {
	videoPath, err := e.writeTemp(data, "upload-*"+ext)
	if err != nil {
		return "", nil, fmt.Errorf("write video temp: %w", err)
	}
	defer e.removeTemp(ctx, videoPath)

	hasAudio, err := e.probeAudioStream(ctx, videoPath)
	if err != nil {
		return "", nil, errs.Wrap(errs.KindAudioExtractionFailed, err, "could not inspect video file").WithPath(videoPath)
	}
	if !hasAudio {
		return "", nil, errs.New(errs.KindNoAudioTrack, "no audio track found in video file").WithPath(videoPath)
	}

	wavPath, cleanup, err := e.renderWAV(ctx, videoPath)
	if err != nil {
		return "", nil, err
	}

	e.logger.Info(ctx, "Audio extracted successfully: %s", wavPath)
	return wavPath, cleanup, nil
}

// PrepareAudio writes uploaded audio bytes to a scoped temporary file and
// resamples them to 16kHz mono WAV. The caller must invoke cleanup to
// release the returned WAV.
func (e *Extractor) PrepareAudio(ctx context.Context, data []byte, ext string) (string, func(), error) {
	srcPath, err := e.writeTemp(data, "upload-*"+ext)
	if err != nil {
		return "", nil, fmt.Errorf("write audio temp: %w", err)
	}
	defer e.removeTemp(ctx, srcPath)

	wavPath, cleanup, err := e.renderWAV(ctx, srcPath)
	if err != nil {
		return "", nil, err
	}

	e.logger.Info(ctx, "Audio prepared successfully: %s", wavPath)
	return wavPath, cleanup, nil
}

// renderWAV runs ffmpeg over srcPath producing a 16kHz mono PCM WAV
// temporary. On any failure the WAV temporary is removed before returning.
func (e *Extractor) renderWAV(ctx context.Context, srcPath string) (string, func(), error) {
	wavFile, err := os.CreateTemp(e.tempDir, "audio-*.wav")
	if err != nil {
		return "", nil, fmt.Errorf("create audio temp: %w", err)
	}
	wavPath := wavFile.Name()
	wavFile.Close()

	// -vn drops any video stream; 16kHz mono PCM is what Whisper expects.
	args := []string{
		"-i", srcPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := e.exec.Execute(ctx, "ffmpeg", args...); err != nil {
		e.removeTemp(ctx, wavPath)
		return "", nil, errs.Wrap(errs.KindAudioExtractionFailed, err, "failed to extract audio").WithPath(srcPath)
	}

	info, err := os.Stat(wavPath)
	if err != nil || info.Size() == 0 {
		e.removeTemp(ctx, wavPath)
		return "", nil, errs.New(errs.KindAudioExtractionFailed, "extracted audio file is missing or empty").WithPath(wavPath)
	}

	cleanup := func() { e.removeTemp(context.Background(), wavPath) }
	return wavPath, cleanup, nil
}

// probeAudioStream asks ffprobe whether srcPath carries at least one audio stream.
func (e *Extractor) probeAudioStream(ctx context.Context, srcPath string) (bool, error) {
	out, err := e.exec.Execute(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=codec_type",
		"-of", "csv=p=0",
		srcPath,
	)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

func (e *Extractor) writeTemp(data []byte, pattern string) (string, error) {
	f, err := os.CreateTemp(e.tempDir, pattern)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func (e *Extractor) removeTemp(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		e.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		e.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
