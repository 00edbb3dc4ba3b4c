package audio

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/minhngocdo/meeting-summarizer/internal/config"
	"github.com/minhngocdo/meeting-summarizer/internal/errs"
	"github.com/minhngocdo/meeting-summarizer/internal/logger"
)

// fakeExecutor stands in for ffmpeg/ffprobe/whisper binaries. It mimics
// their observable behavior: ffmpeg writes the output file named by its
// last argument, whisper writes <prefix>.txt.
type fakeExecutor struct {
	probeOutput string
	probeErr    error
	ffmpegErr   error
	ffmpegData  []byte
	whisperText string
	whisperErr  error
	calls       []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, name)
	switch name {
	case "ffprobe":
		return f.probeOutput, f.probeErr
	case "ffmpeg":
		if f.ffmpegErr != nil {
			return "", f.ffmpegErr
		}
		outPath := args[len(args)-1]
		if err := os.WriteFile(outPath, f.ffmpegData, 0644); err != nil {
			return "", err
		}
		return "", nil
	default: // whisper binary
		if f.whisperErr != nil {
			return "", f.whisperErr
		}
		prefix := ""
		for i, a := range args {
			if a == "--output-file" && i+1 < len(args) {
				prefix = args[i+1]
			}
		}
		if err := os.WriteFile(prefix+".txt", []byte(f.whisperText), 0644); err != nil {
			return "", err
		}
		return "", nil
	}
}

func (f *fakeExecutor) LookPath(string) error { return nil }

func testLogger() logger.Logger {
	return logger.NewWithWriter("error", &bytes.Buffer{})
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestExtractFromVideoNoAudioTrack(t *testing.T) {
	tempDir := t.TempDir()
	exec := &fakeExecutor{probeOutput: "\n"}
	e := NewExtractor(tempDir, exec, testLogger())

	_, _, err := e.ExtractFromVideo(context.Background(), []byte("video-bytes"), ".mp4")
	if !errs.Is(err, errs.KindNoAudioTrack) {
		t.Fatalf("expected NoAudioTrack, got %v", err)
	}

	if left := dirEntries(t, tempDir); len(left) != 0 {
		t.Errorf("temp files leaked: %v", left)
	}
}

func TestExtractFromVideoSuccess(t *testing.T) {
	tempDir := t.TempDir()
	exec := &fakeExecutor{probeOutput: "audio\n", ffmpegData: []byte("RIFF....WAVE")}
	e := NewExtractor(tempDir, exec, testLogger())

	wavPath, cleanup, err := e.ExtractFromVideo(context.Background(), []byte("video-bytes"), ".mp4")
	if err != nil {
		t.Fatalf("ExtractFromVideo() error = %v", err)
	}

	if filepath.Ext(wavPath) != ".wav" {
		t.Errorf("expected .wav output, got %s", wavPath)
	}
	// Only the rendered WAV may remain until cleanup runs.
	if left := dirEntries(t, tempDir); len(left) != 1 {
		t.Errorf("expected only the WAV in temp dir, found: %v", left)
	}

	cleanup()
	if left := dirEntries(t, tempDir); len(left) != 0 {
		t.Errorf("temp files leaked after cleanup: %v", left)
	}
}

func TestExtractFromVideoRenderFailure(t *testing.T) {
	tempDir := t.TempDir()
	exec := &fakeExecutor{probeOutput: "audio\n", ffmpegErr: errors.New("codec error")}
	e := NewExtractor(tempDir, exec, testLogger())

	_, _, err := e.ExtractFromVideo(context.Background(), []byte("video-bytes"), ".mp4")
	if !errs.Is(err, errs.KindAudioExtractionFailed) {
		t.Fatalf("expected AudioExtractionFailed, got %v", err)
	}

	if left := dirEntries(t, tempDir); len(left) != 0 {
		t.Errorf("temp files leaked: %v", left)
	}
}

func TestExtractFromVideoEmptyRender(t *testing.T) {
	tempDir := t.TempDir()
	exec := &fakeExecutor{probeOutput: "audio\n", ffmpegData: nil}
	e := NewExtractor(tempDir, exec, testLogger())

	_, _, err := e.ExtractFromVideo(context.Background(), []byte("video-bytes"), ".mp4")
	if !errs.Is(err, errs.KindAudioExtractionFailed) {
		t.Fatalf("expected AudioExtractionFailed for zero-length output, got %v", err)
	}

	if left := dirEntries(t, tempDir); len(left) != 0 {
		t.Errorf("temp files leaked: %v", left)
	}
}

func TestPrepareAudio(t *testing.T) {
	tempDir := t.TempDir()
	exec := &fakeExecutor{ffmpegData: []byte("RIFF....WAVE")}
	e := NewExtractor(tempDir, exec, testLogger())

	wavPath, cleanup, err := e.PrepareAudio(context.Background(), []byte("mp3-bytes"), ".mp3")
	if err != nil {
		t.Fatalf("PrepareAudio() error = %v", err)
	}
	if filepath.Ext(wavPath) != ".wav" {
		t.Errorf("expected .wav output, got %s", wavPath)
	}

	cleanup()
	if left := dirEntries(t, tempDir); len(left) != 0 {
		t.Errorf("temp files leaked after cleanup: %v", left)
	}
}

func whisperConfig() config.WhisperConfig {
	return config.WhisperConfig{
		BinaryPath: "whisper",
		ModelPath:  "models/ggml-base.bin",
		Language:   "en",
		Threads:    4,
	}
}

func TestTranscribe(t *testing.T) {
	tempDir := t.TempDir()
	wavPath := filepath.Join(tempDir, "audio-1.wav")
	if err := os.WriteFile(wavPath, []byte("RIFF....WAVE"), 0644); err != nil {
		t.Fatal(err)
	}

	exec := &fakeExecutor{whisperText: "  Alice will send the report by Monday.\n"}
	tr := NewWhisperTranscriber(whisperConfig(), exec, testLogger())

	got, err := tr.Transcribe(context.Background(), wavPath)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got != "Alice will send the report by Monday." {
		t.Errorf("Transcribe() = %q", got)
	}

	// Intermediate .txt output must not linger.
	if left := dirEntries(t, tempDir); len(left) != 1 || left[0] != "audio-1.wav" {
		t.Errorf("unexpected files after transcription: %v", left)
	}
}

func TestTranscribeMissingFile(t *testing.T) {
	tr := NewWhisperTranscriber(whisperConfig(), &fakeExecutor{}, testLogger())

	_, err := tr.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	if !errs.Is(err, errs.KindAudioUnreadable) {
		t.Fatalf("expected AudioUnreadable, got %v", err)
	}
}

func TestTranscribeEmptyFile(t *testing.T) {
	wavPath := filepath.Join(t.TempDir(), "empty.wav")
	if err := os.WriteFile(wavPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tr := NewWhisperTranscriber(whisperConfig(), &fakeExecutor{}, testLogger())

	_, err := tr.Transcribe(context.Background(), wavPath)
	if !errs.Is(err, errs.KindAudioUnreadable) {
		t.Fatalf("expected AudioUnreadable, got %v", err)
	}
}

func TestTranscribeNoSpeech(t *testing.T) {
	tempDir := t.TempDir()
	wavPath := filepath.Join(tempDir, "audio-2.wav")
	if err := os.WriteFile(wavPath, []byte("RIFF....WAVE"), 0644); err != nil {
		t.Fatal(err)
	}

	exec := &fakeExecutor{whisperText: "   \n\t"}
	tr := NewWhisperTranscriber(whisperConfig(), exec, testLogger())

	_, err := tr.Transcribe(context.Background(), wavPath)
	if !errs.Is(err, errs.KindNoSpeechDetected) {
		t.Fatalf("expected NoSpeechDetected, got %v", err)
	}

	if left := dirEntries(t, tempDir); len(left) != 1 || left[0] != "audio-2.wav" {
		t.Errorf("unexpected files after failed transcription: %v", left)
	}
}

// Extraction followed by transcription, success or failure, must leave the
// temp directory empty once the extraction cleanup has run.
func TestExtractThenTranscribeHygiene(t *testing.T) {
	tests := []struct {
		name        string
		whisperText string
		whisperErr  error
	}{
		{"transcription succeeds", "hello world", nil},
		{"transcription fails", "", errors.New("model crashed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			exec := &fakeExecutor{
				probeOutput: "audio\n",
				ffmpegData:  []byte("RIFF....WAVE"),
				whisperText: tt.whisperText,
				whisperErr:  tt.whisperErr,
			}
			e := NewExtractor(tempDir, exec, testLogger())
			tr := NewWhisperTranscriber(whisperConfig(), exec, testLogger())

			wavPath, cleanup, err := e.ExtractFromVideo(context.Background(), []byte("video-bytes"), ".mp4")
			if err != nil {
				t.Fatalf("ExtractFromVideo() error = %v", err)
			}

			_, _ = tr.Transcribe(context.Background(), wavPath)
			cleanup()

			if left := dirEntries(t, tempDir); len(left) != 0 {
				t.Errorf("temp files leaked: %v", left)
			}
		})
	}
}
