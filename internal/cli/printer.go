package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ytget/clippy/internal/model"
)

const unknownValue = "unknown"

func printBasicInfo(w io.Writer, info *model.VideoInfo) {
	if info == nil {
		fmt.Fprintln(w, "No info available.")
		return
	}
	fmt.Fprintln(w, "Title:", info.Title)
	fmt.Fprintln(w, "Uploader:", info.Uploader)
	fmt.Fprintln(w, "Duration (s):", durationText(info.Duration))
	fmt.Fprintln(w, "Webpage URL:", info.WebpageURL)
	fmt.Fprintln(w, "ID:", info.ID)
	fmt.Fprintln(w, "Available formats count:", len(info.Formats))
}

func printFormats(w io.Writer, info *model.VideoInfo, limit int) {
	if info == nil {
		fmt.Fprintln(w, "No info/formats available.")
		return
	}

	fmt.Fprintf(w, "\nShowing up to %d formats (format_id, ext, height, note, approx filesize):\n\n", limit)

	formats := info.Formats
	if limit >= 0 && len(formats) > limit {
		formats = formats[:limit]
	}
	for _, f := range formats {
		size := unknownValue
		if s := f.Size(); s != nil {
			size = model.HumanSize(s)
		}
		fmt.Fprintf(w, "%s\t%s\theight=%s\t%s\tfilesize=%s\n", f.FormatID, f.Ext, heightText(f.Height), f.FormatNote, size)
	}
}

func printSaved(w io.Writer, task *model.DownloadTask) {
	path := task.OutputPath
	if path == "" {
		path = unknownValue
	}
	fmt.Fprintln(w, "Saved:", path)
}

func printAudioSaved(w io.Writer, task *model.DownloadTask) {
	fmt.Fprintln(w, "Audio saved. Title:", taskTitle(task))
}

func printPlaylist(w io.Writer, playlist *model.Playlist) {
	if playlist == nil || playlist.Len() == 0 {
		fmt.Fprintln(w, "No playlist entries available.")
		return
	}
	fmt.Fprintln(w, "Playlist:", playlist.Title)
	for _, entry := range playlist.Entries {
		fmt.Fprintf(w, "%3d. %s\t%s\n", entry.Index, entry.Title, entry.URL)
	}
	fmt.Fprintln(w, "Entries:", playlist.Len())
}

func durationText(d *float64) string {
	if d == nil {
		return unknownValue
	}
	return strconv.FormatFloat(*d, 'f', -1, 64)
}

func heightText(h *int) string {
	if h == nil {
		return unknownValue
	}
	return strconv.Itoa(*h)
}
