package cli

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytget/clippy/internal/config"
	"github.com/ytget/clippy/internal/download"
	"github.com/ytget/clippy/internal/model"
)

func newInfoCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "info <url>",
		Short:   "Show basic metadata",
		Example: `clippy info https://www.youtube.com/watch?v=dQw4w9WgXcQ`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := opts.service.FetchInfo(cmd.Context(), args[0])
			if err != nil {
				log.Errorf("Failed to fetch info: %v", err)
				info = nil
			}
			printBasicInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func newFormatsCommand(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "formats <url>",
		Short: "List available formats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := opts.service.FetchInfo(cmd.Context(), args[0])
			if err != nil {
				log.Errorf("Failed to fetch info: %v", err)
				info = nil
			}
			printFormats(cmd.OutOrStdout(), info, limit)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", config.DefaultFormatLimit, "Maximum number of formats to print")
	return cmd
}

func newDownloadCommand(opts *rootOptions) *cobra.Command {
	var (
		formatID string
		output   string
		noMerge  bool
	)

	cmd := &cobra.Command{
		Use:   "download <url>",
		Short: "Download a video (choose format_id from formats)",
		Long: `Download a video (choose format_id from formats).

With --format_id the option list is looked up first to decide whether the
best audio stream must be merged in, so yt-dlp runs twice. --no-merge skips
the lookup and passes the id to yt-dlp as is.`,
		Example: `clippy download -f 137 https://www.youtube.com/watch?v=dQw4w9WgXcQ`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			selector, merge := formatID, false

			if formatID != "" && !noMerge {
				resolved, merged, err := opts.service.ResolveSelector(cmd.Context(), url, formatID)
				if err != nil {
					log.Errorf("Download failed: %v", err)
					return nil
				}
				selector, merge = resolved, merged
			}
			log.Debugf("format selector %q", selector)

			progress := newTerminalProgress(cmd.OutOrStdout())
			task, err := opts.service.Download(cmd.Context(), download.Request{
				URL:            url,
				Selector:       selector,
				OutputTemplate: output,
				Merge:          merge,
				Continue:       true,
				Progress:       progress.Report,
			})
			progress.Close()
			if err != nil {
				log.Errorf("Download failed: %v", err)
				return nil
			}

			printSaved(cmd.OutOrStdout(), task)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatID, "format_id", "f", "", "format_id to download (optional, default 'best')")
	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutputTemplate, "yt-dlp output template")
	cmd.Flags().BoolVar(&noMerge, "no-merge", false, "Do not add the best audio stream to video-only formats")
	return cmd
}

func newAudioCommand(opts *rootOptions) *cobra.Command {
	var (
		audioFormat  string
		audioQuality string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "audio <url>",
		Short: "Download and extract audio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			progress := newTerminalProgress(cmd.OutOrStdout())
			task, err := opts.service.Download(cmd.Context(), download.Request{
				URL:            args[0],
				OutputTemplate: output,
				ExtractAudio:   true,
				AudioFormat:    audioFormat,
				AudioQuality:   audioQuality,
				Continue:       true,
				Progress:       progress.Report,
			})
			progress.Close()
			if err != nil {
				log.Errorf("Download failed: %v", err)
				return nil
			}

			printAudioSaved(cmd.OutOrStdout(), task)
			return nil
		},
	}

	cmd.Flags().StringVar(&audioFormat, "audio-format", config.DefaultAudioFormat, "preferred audio codec (mp3, m4a, etc.)")
	cmd.Flags().StringVar(&audioQuality, "audio-quality", config.DefaultAudioQuality, "preferred audio bitrate in kbit/s")
	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutputTemplate, "yt-dlp output template")
	return cmd
}

func newPlaylistCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "playlist <url>",
		Short: "List the videos of a playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playlist, err := opts.playlists.ParsePlaylist(cmd.Context(), args[0])
			if err != nil {
				log.Errorf("Failed to fetch playlist: %v", err)
				playlist = nil
			}
			printPlaylist(cmd.OutOrStdout(), playlist)
			return nil
		},
	}
}

// taskTitle returns the best available title of a finished task
func taskTitle(task *model.DownloadTask) string {
	if task == nil {
		return ""
	}
	return task.GetDisplayTitle()
}
