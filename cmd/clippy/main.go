package main

import (
	"os"

	"github.com/mattn/go-colorable"

	"github.com/ytget/clippy/internal/cli"
	"github.com/ytget/clippy/internal/download"
	"github.com/ytget/clippy/internal/media"
	"github.com/ytget/clippy/internal/platform"
)

func main() {
	root := cli.NewRootCommand(newService, platform.NewPlaylistParserService())
	root.SetErr(colorable.NewColorableStderr())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newService(proxy string) cli.Service {
	extractor := download.NewYTDLP()
	extractor.SetProxy(proxy)

	svc := download.NewService(extractor)
	svc.SetProber(media.NewFFmpeg())
	return svc
}
