package platform

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/clippy/internal/model"
)

func ptr[T any](v T) *T { return &v }

const sampleInfoJSON = `{"id":"dQw4w9WgXcQ","title":"Never Gonna Give You Up","uploader":"Rick Astley","duration":212.0,` +
	`"webpage_url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ","formats":[` +
	`{"format_id":"sb0","ext":"mhtml","acodec":"none","vcodec":"none","format_note":"storyboard"},` +
	`{"format_id":"140","ext":"m4a","acodec":"mp4a.40.2","vcodec":"none","format_note":"medium","filesize":3433514},` +
	`{"format_id":"18","ext":"mp4","acodec":"mp4a.40.2","vcodec":"avc1.42001E","height":360,"filesize":null,"filesize_approx":11964316.4},` +
	`{"format_id":"137","ext":"mp4","vcodec":"avc1.640028","height":1080,"format_note":"1080p"}]}`

func TestParseVideoInfo(t *testing.T) {
	info, err := ParseVideoInfo(sampleInfoJSON)
	if err != nil {
		t.Fatalf("ParseVideoInfo failed: %v", err)
	}

	want := &model.VideoInfo{
		ID:         "dQw4w9WgXcQ",
		Title:      "Never Gonna Give You Up",
		Uploader:   "Rick Astley",
		Duration:   ptr(212.0),
		WebpageURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Formats: []model.Format{
			{FormatID: "sb0", Ext: "mhtml", ACodec: "none", VCodec: "none", FormatNote: "storyboard"},
			{FormatID: "140", Ext: "m4a", ACodec: "mp4a.40.2", VCodec: "none", FormatNote: "medium", FileSize: ptr(int64(3433514))},
			{FormatID: "18", Ext: "mp4", ACodec: "mp4a.40.2", VCodec: "avc1.42001E", Height: ptr(360), FileSizeApprox: ptr(int64(11964316))},
			{FormatID: "137", Ext: "mp4", VCodec: "avc1.640028", FormatNote: "1080p", Height: ptr(1080)},
		},
	}

	if diff := cmp.Diff(want, info); diff != "" {
		t.Errorf("ParseVideoInfo() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseVideoInfo_SkipsNoise(t *testing.T) {
	output := "[youtube] Extracting URL\n" +
		"[download]  45.0% of 10.00MiB\n" +
		`{"id":"a","title":"first","_filename":"/tmp/first.mp4"}` + "\n" +
		`{"id":"b","title":"second","requested_downloads":[{"filepath":"/tmp/second.mp3"}],"_filename":"/tmp/second.webm"}` + "\n" +
		"[ExtractAudio] Destination: /tmp/second.mp3\n"

	info, err := ParseVideoInfo(output)
	if err != nil {
		t.Fatalf("ParseVideoInfo failed: %v", err)
	}

	if info.ID != "b" {
		t.Errorf("expected the last document, got id %q", info.ID)
	}
	if info.Filename != "/tmp/second.mp3" {
		t.Errorf("expected post-processed file path, got %q", info.Filename)
	}
}

func TestParseVideoInfo_FilenameFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{"underscore filename", `{"id":"x","_filename":"a.mp4"}`, "a.mp4"},
		{"plain filename", `{"id":"x","filename":"b.mp4"}`, "b.mp4"},
		{"requested download _filename", `{"id":"x","requested_downloads":[{"_filename":"c.mkv"}]}`, "c.mkv"},
		{"nothing", `{"id":"x"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ParseVideoInfo(tt.output)
			if err != nil {
				t.Fatalf("ParseVideoInfo failed: %v", err)
			}
			if info.Filename != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, info.Filename)
			}
		})
	}
}

func TestParseVideoInfo_MovedPath(t *testing.T) {
	output := `{"id":"x","title":"T","_filename":"downloads/T.webm"}` + "\n" +
		"[ExtractAudio] Destination: downloads/T.mp3\n" +
		"downloads/T.mp3\n"

	info, err := ParseVideoInfo(output)
	if err != nil {
		t.Fatalf("ParseVideoInfo failed: %v", err)
	}
	if info.Filename != "downloads/T.mp3" {
		t.Errorf("expected the post-processed path, got %q", info.Filename)
	}

	info, err = ParseVideoInfo(`{"id":"x","_filename":"downloads/T.webm"}` + "\n")
	if err != nil {
		t.Fatalf("ParseVideoInfo failed: %v", err)
	}
	if info.Filename != "downloads/T.webm" {
		t.Errorf("expected the info filename without a moved path, got %q", info.Filename)
	}
}

func TestParseVideoInfo_UnsetCodecs(t *testing.T) {
	output := `{"formats":[{"format_id":"0","ext":"mp4","height":720},{"format_id":"1","ext":"m4a","vcodec":"none"}]}`

	info, err := ParseVideoInfo(output)
	if err != nil {
		t.Fatalf("ParseVideoInfo failed: %v", err)
	}

	video, audio := model.ClassifyFormats(info.Formats)
	if len(video) != 1 || video[0].FormatID != "0" {
		t.Errorf("expected format 0 as the only video option, got %+v", video)
	}
	if len(audio) != 1 || audio[0].FormatID != "1" {
		t.Errorf("expected format 1 as the only audio option, got %+v", audio)
	}
	if video[0].NeedsAudioMerge() {
		t.Error("format without codec info should be downloaded as is")
	}
}

func TestParseVideoInfo_Errors(t *testing.T) {
	if _, err := ParseVideoInfo(""); !errors.Is(err, ErrNoInfoJSON) {
		t.Errorf("expected ErrNoInfoJSON for empty output, got %v", err)
	}

	if _, err := ParseVideoInfo("ERROR: [youtube] xyz: Video unavailable"); !errors.Is(err, ErrNoInfoJSON) {
		t.Errorf("expected ErrNoInfoJSON for log-only output, got %v", err)
	}

	if _, err := ParseVideoInfo(`{"id": broken`); err == nil {
		t.Error("expected decode error for malformed JSON")
	}
}

func TestParseVideoInfo_Classification(t *testing.T) {
	info, err := ParseVideoInfo(sampleInfoJSON)
	if err != nil {
		t.Fatalf("ParseVideoInfo failed: %v", err)
	}

	video, audio := model.ClassifyFormats(info.Formats)
	if len(video) != 2 || len(audio) != 1 {
		t.Fatalf("expected 2 video and 1 audio options, got %d and %d", len(video), len(audio))
	}

	f, _ := info.FindFormat("137")
	if !f.NeedsAudioMerge() {
		t.Error("format without acodec should need an audio merge")
	}
}
