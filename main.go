//go:build !console

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"chucktray/icons"
	"chucktray/logging"
	"chucktray/notify"
	"chucktray/quote"
	"chucktray/storage"
	"chucktray/tray"
	"chucktray/ui"

	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
)

const appID = "com.devdufutur.chucktray"

func main() {
	logger, closer := logging.New(logrus.InfoLevel)
	defer closer.Close()

	logger.Info("Starting Chuck Norust...")

	a := app.NewWithID(appID)
	a.SetIcon(icons.App())

	store := storage.NewManager(storage.NewPlatformBackend(a.Preferences()), logger)
	trayApp := ui.NewTrayApp(a, logger)

	ctrl := tray.NewController(tray.Config{
		Store:    store,
		Fetcher:  quote.NewService(logger),
		Notifier: newNotifier(notify.NewFyneNotifier(a), logger),
		View:     trayApp,
		Logger:   logger,
	})
	trayApp.Attach(ctrl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		err := ctrl.Run(ctx)
		if errors.Is(err, context.Canceled) {
			// interrupted by a signal
			trayApp.Quit()
		}
	}()

	trayApp.Run()
	logger.Info("Chuck Norust stopped")
}
