package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/clippy/internal/download"
	"github.com/ytget/clippy/internal/media"
	"github.com/ytget/clippy/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.clippy"
	AppName = "Clippy"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	log.SetOutput(colorable.NewColorableStderr())
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.WithField("version", version).Info("starting " + AppName)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	downloadSvc := download.NewService(download.NewYTDLP())
	downloadSvc.SetProber(media.NewFFmpeg())

	ui.NewRootUI(myWindow, myApp, downloadSvc)

	myWindow.ShowAndRun()
}
