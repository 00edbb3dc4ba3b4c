package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
					ModelPath:  "models/ggml-base.bin",
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing model path",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing paths",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
					ModelPath:  "models/ggml-base.bin",
				},
				Paths: PathsConfig{},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			BinaryPath: "./whisper",
			ModelPath:  "models/ggml-base.bin",
		},
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Gemini.Model != "gemini-1.5-flash" {
		t.Errorf("Gemini.Model = %q, want gemini-1.5-flash", cfg.Gemini.Model)
	}
	if cfg.Upload.MaxFileSizeMB != 100 {
		t.Errorf("Upload.MaxFileSizeMB = %d, want 100", cfg.Upload.MaxFileSizeMB)
	}
	if cfg.Display.MaxTranscriptChars != 1000 {
		t.Errorf("Display.MaxTranscriptChars = %d, want 1000", cfg.Display.MaxTranscriptChars)
	}
	if cfg.MaxFileSizeBytes() != 100*1024*1024 {
		t.Errorf("MaxFileSizeBytes() = %d, want %d", cfg.MaxFileSizeBytes(), 100*1024*1024)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}

	content := `
whisper:
  binary_path: "./whisper"
  model_path: "models/ggml-base.bin"
  language: "en"

gemini:
  model: "gemini-1.5-flash"

paths:
  input: "data/input"
  output: "data/output"

upload:
  max_file_size_mb: 50

logging:
  level: "info"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GEMINI_API_KEY", "key-one, key-two")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/ggml-base.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/ggml-base.bin")
	}
	if cfg.Upload.MaxFileSizeMB != 50 {
		t.Errorf("MaxFileSizeMB = %d, want 50", cfg.Upload.MaxFileSizeMB)
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[0] != "key-one" || cfg.Gemini.APIKeys[1] != "key-two" {
		t.Errorf("APIKeys = %v, want [key-one key-two]", cfg.Gemini.APIKeys)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
