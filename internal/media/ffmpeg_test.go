package media

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBuildFFprobeArgs(t *testing.T) {
	args := BuildFFprobeArgs("/tmp/song.mp3")

	expectedArgs := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		"/tmp/song.mp3",
	}

	if len(args) != len(expectedArgs) {
		t.Fatalf("Expected %d args, got %d", len(expectedArgs), len(args))
	}

	for i, expected := range expectedArgs {
		if args[i] != expected {
			t.Errorf("Arg %d: expected %s, got %s", i, expected, args[i])
		}
	}
}

func TestCheckFFmpeg(t *testing.T) {
	present := &FFmpeg{lookPath: func(string) (string, error) { return "/usr/bin/ffmpeg", nil }}
	if err := present.CheckFFmpeg(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	missing := &FFmpeg{lookPath: func(string) (string, error) { return "", errors.New("not found") }}
	if err := missing.CheckFFmpeg(); !errors.Is(err, ErrFFmpegMissing) {
		t.Errorf("Expected ErrFFmpegMissing, got %v", err)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		runErr   error
		expected time.Duration
		wantErr  bool
	}{
		{"whole seconds", "212\n", nil, 212 * time.Second, false},
		{"fractional seconds", "3.5\n", nil, 3500 * time.Millisecond, false},
		{"garbage", "N/A\n", nil, 0, true},
		{"negative", "-1\n", nil, 0, true},
		{"ffprobe failure", "", errors.New("exit status 1"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotName string
			var gotArgs []string
			prober := &FFmpeg{
				output: func(ctx context.Context, name string, args ...string) ([]byte, error) {
					gotName = name
					gotArgs = args
					return []byte(tt.output), tt.runErr
				},
			}

			d, err := prober.Duration(context.Background(), "/tmp/song.mp3")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got %v", d)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if d != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, d)
			}
			if gotName != FFprobeCommand || gotArgs[len(gotArgs)-1] != "/tmp/song.mp3" {
				t.Errorf("Unexpected invocation: %s %v", gotName, gotArgs)
			}
		})
	}
}

func TestNewFFmpeg(t *testing.T) {
	var _ Prober = NewFFmpeg()
}
