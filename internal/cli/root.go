package cli

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytget/clippy/internal/download"
	"github.com/ytget/clippy/internal/model"
)

// Service is the part of the download service the commands use
type Service interface {
	FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error)
	ResolveSelector(ctx context.Context, url, formatID string) (string, bool, error)
	Download(ctx context.Context, req download.Request) (*model.DownloadTask, error)
}

// PlaylistLister lists the videos of a playlist URL
type PlaylistLister interface {
	ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error)
}

// ServiceFactory builds the download service once flags are parsed
type ServiceFactory func(proxy string) Service

type rootOptions struct {
	verbose bool
	proxy   string

	newService ServiceFactory
	service    Service
	playlists  PlaylistLister
}

// NewRootCommand builds the clippy command tree
func NewRootCommand(newService ServiceFactory, playlists PlaylistLister) *cobra.Command {
	opts := &rootOptions{newService: newService, playlists: playlists}

	root := &cobra.Command{
		Use:           "clippy",
		Short:         "yt-dlp based downloader",
		Long:          "Fetch metadata, list formats and download videos or audio with yt-dlp.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, opts.verbose)
			opts.service = opts.newService(opts.proxy)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print debug logs, including the yt-dlp command line")
	root.PersistentFlags().StringVar(&opts.proxy, "proxy", "", "Proxy URL passed to yt-dlp")

	root.AddCommand(
		newInfoCommand(opts),
		newFormatsCommand(opts),
		newDownloadCommand(opts),
		newAudioCommand(opts),
		newPlaylistCommand(opts),
	)
	return root
}

func setupLogging(cmd *cobra.Command, verbose bool) {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}
	log.SetLevel(log.InfoLevel)
}
