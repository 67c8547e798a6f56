package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestEnsureOutputDir(t *testing.T) {
	tempDir := t.TempDir()
	template := filepath.Join(tempDir, "downloads", "%(title)s.%(ext)s")

	if err := EnsureOutputDir(template); err != nil {
		t.Fatalf("EnsureOutputDir failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tempDir, "downloads")); err != nil {
		t.Fatalf("Output directory was not created: %v", err)
	}

	// Bare templates write into the working directory
	if err := EnsureOutputDir("%(title)s.%(ext)s"); err != nil {
		t.Fatalf("EnsureOutputDir without directory failed: %v", err)
	}
}

func TestScratchDirLifecycle(t *testing.T) {
	dir, err := NewScratchDir()
	if err != nil {
		t.Fatalf("NewScratchDir failed: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(dir), "clippy-") {
		t.Errorf("Unexpected scratch dir name: %s", dir)
	}

	writeFile(t, filepath.Join(dir, "clip.mp4"), 16)
	writeFile(t, filepath.Join(dir, "clip.mp4.part"), 8)

	if err := RemoveScratchDir(dir); err != nil {
		t.Fatalf("RemoveScratchDir failed: %v", err)
	}

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Scratch dir still exists: %s", dir)
	}

	// Removing twice or removing nothing is not an error
	if err := RemoveScratchDir(dir); err != nil {
		t.Errorf("Second RemoveScratchDir failed: %v", err)
	}
	if err := RemoveScratchDir(""); err != nil {
		t.Errorf("RemoveScratchDir(\"\") failed: %v", err)
	}
}

func TestFindDownloadedFile(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]int
		expected string
		wantErr  bool
	}{
		{
			name:     "single merged file",
			files:    map[string]int{"My Clip.mp4": 100},
			expected: "My Clip.mp4",
		},
		{
			name:     "partial files are ignored",
			files:    map[string]int{"My Clip.mp4.part": 500, "My Clip.mp4": 100, "My Clip.mp4.ytdl": 10},
			expected: "My Clip.mp4",
		},
		{
			name:     "largest leftover stream wins",
			files:    map[string]int{"My Clip.f137.mp4": 900, "My Clip.f140.m4a": 100},
			expected: "My Clip.f137.mp4",
		},
		{
			name:    "only partial files",
			files:   map[string]int{"My Clip.mp4.part": 500},
			wantErr: true,
		},
		{
			name:    "empty directory",
			files:   map[string]int{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, size := range tt.files {
				writeFile(t, filepath.Join(dir, name), size)
			}

			got, err := FindDownloadedFile(dir)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if filepath.Base(got) != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, filepath.Base(got))
			}
		})
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.txt")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestFindFileWithFallback_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_file.txt")
	writeFile(t, path, 1)

	foundPath, err := FindFileWithFallback(path)
	if err != nil {
		t.Fatalf("Failed to find existing file: %v", err)
	}

	if foundPath != path {
		t.Errorf("Expected path %s, got %s", path, foundPath)
	}
}

func TestFindFileWithFallback_SimilarFileName(t *testing.T) {
	tempDir := t.TempDir()

	originalPath := filepath.Join(tempDir, "test_video.mp4")
	similarPath := filepath.Join(tempDir, "-test_video.mp4")
	writeFile(t, similarPath, 1)

	foundPath, err := FindFileWithFallback(originalPath)
	if err != nil {
		t.Fatalf("Failed to find similar file: %v", err)
	}

	if foundPath != similarPath {
		t.Errorf("Expected path %s, got %s", similarPath, foundPath)
	}
}

func TestFindFileWithFallback_NoSimilarFile(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "a.mp4"), 1)

	originalPath := filepath.Join(tempDir, "test_video.mp4")
	_, err := FindFileWithFallback(originalPath)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	expectedError := "file not found: " + originalPath
	if err.Error() != expectedError {
		t.Errorf("Expected error message %s, got %v", expectedError, err)
	}
}

func TestFindFileWithFallback_RejectsURL(t *testing.T) {
	if _, err := FindFileWithFallback("https://youtube.com/watch?v=1"); err == nil {
		t.Error("Expected error for URL input")
	}
}

func TestIsSimilarFileName(t *testing.T) {
	tests := []struct {
		name1, name2 string
		expected     bool
	}{
		{"test", "test", true},
		{"test", "-test", true},
		{"test", "test-", true},
		{"test", "_test", true},
		{"test", "test_", true},
		{"test", " test", true},
		{"test", "other", false},
		{"test_video", "test_video_long", true},
		{"test_video_long", "test_video", true},
		{"test_video_very_long_name", "test_video", false},
	}

	for _, tt := range tests {
		t.Run(tt.name1+"_"+tt.name2, func(t *testing.T) {
			result := isSimilarFileName(tt.name1, tt.name2)
			if result != tt.expected {
				t.Errorf("isSimilarFileName(%q, %q) = %v, expected %v",
					tt.name1, tt.name2, result, tt.expected)
			}
		})
	}
}
