// Package download drives yt-dlp (via github.com/lrstanley/go-ytdlp) for
// metadata lookups and downloads. It owns the failure kinds shown to users,
// the merge policy for picked options and the scratch-directory lifecycle of
// files offered through a save action.
package download
