package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
	"github.com/ytget/ytdlp/v2/client"

	"github.com/ytget/clippy/internal/model"
)

// Timeout constants
const (
	DefaultPlaylistParseTimeout = 60 * time.Second
	DefaultPlaylistRetries      = 3
)

// URL parameters
const (
	PlaylistURLParam = "list"
)

// Default values
const (
	DefaultDuration         = "Unknown"
	DefaultPlaylistTitle    = "Untitled Playlist"
	DefaultTitleSuffix      = " - Playlist"
	MaxTitleLength          = 50 // runes
	TitleTruncateSuffix     = "..."
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
	PlaylistUserAgent       = "clippy/1.0"
)

// PlaylistItem is one video reported by the playlist source
type PlaylistItem struct {
	VideoID string
	Title   string
}

// PlaylistSource fetches the items of a playlist by id
type PlaylistSource interface {
	Items(ctx context.Context, playlistID string) ([]PlaylistItem, error)
}

// ytgetSource lists playlists through the native ytget client
type ytgetSource struct {
	timeout time.Duration
	retries int
}

func (s *ytgetSource) Items(ctx context.Context, playlistID string) ([]PlaylistItem, error) {
	c := client.NewWith(client.Config{
		Timeout:   s.timeout,
		Retries:   s.retries,
		UserAgent: PlaylistUserAgent,
	})

	d := ytdlp.New().WithHTTPClient(c.HTTPClient)
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	out := make([]PlaylistItem, 0, len(items))
	for _, it := range items {
		out = append(out, PlaylistItem{VideoID: it.VideoID, Title: it.Title})
	}
	return out, nil
}

// PlaylistParserService handles parsing of YouTube playlists
type PlaylistParserService struct {
	timeout time.Duration
	source  PlaylistSource
}

// NewPlaylistParserService creates a new playlist parser service
func NewPlaylistParserService() *PlaylistParserService {
	return &PlaylistParserService{
		timeout: DefaultPlaylistParseTimeout,
		source: &ytgetSource{
			timeout: DefaultPlaylistParseTimeout,
			retries: DefaultPlaylistRetries,
		},
	}
}

// SetTimeout sets the timeout for playlist parsing
func (p *PlaylistParserService) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// SetSource replaces the playlist source
func (p *PlaylistParserService) SetSource(source PlaylistSource) {
	p.source = source
}

// ParsePlaylist lists the videos of a YouTube playlist URL
func (p *PlaylistParserService) ParsePlaylist(ctx context.Context, rawURL string) (*model.Playlist, error) {
	playlistID, err := ExtractPlaylistID(rawURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	items, err := p.source.Items(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	playlist := model.NewPlaylist(playlistID, rawURL)
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		playlist.AddEntry(&model.PlaylistEntry{
			ID:       it.VideoID,
			Title:    it.Title,
			URL:      fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
			Duration: DefaultDuration,
		})
	}
	playlist.Title = extractPlaylistTitle(playlist.Entries)

	return playlist, nil
}

// ExtractPlaylistID extracts the playlist ID from a YouTube URL. Supported:
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&start_radio=1
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(rawURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("invalid playlist URL format: %w", err)
	}

	values := parsed.Query()
	if !values.Has(PlaylistURLParam) {
		return "", fmt.Errorf("invalid playlist URL format: %s", rawURL)
	}

	playlistID := values.Get(PlaylistURLParam)
	if playlistID == "" {
		return "", fmt.Errorf("empty playlist ID")
	}

	return playlistID, nil
}

// extractPlaylistTitle derives a display title from the first entry
func extractPlaylistTitle(entries []*model.PlaylistEntry) string {
	if len(entries) == 0 {
		return DefaultPlaylistTitle
	}

	firstTitle := entries[0].Title
	if runes := []rune(firstTitle); len(runes) > MaxTitleLength {
		firstTitle = string(runes[:MaxTitleLength]) + TitleTruncateSuffix
	}

	return firstTitle + DefaultTitleSuffix
}
