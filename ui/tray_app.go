package ui

import (
	"sync"

	"chucktray/icons"
	"chucktray/models"
	"chucktray/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
)

const (
	appTitle      = "Chuck Norust"
	settingsLabel = "How fast should Chuck speak ?"
)

// TrayApp is the fyne surface of the application: a tray menu and a
// settings window that starts hidden. It only posts events; the controller
// decides what happens.
type TrayApp struct {
	app            fyne.App
	window         fyne.Window
	intervalSelect *widget.Select
	silentCheck    *widget.Check
	okButton       *widget.Button
	ctrl           *tray.Controller
	log            *logrus.Entry

	// menu is rebuilt on every change; items handed to fyne are never
	// mutated
	mu            sync.Mutex
	menu          *fyne.Menu
	repeatEnabled bool
}

var _ tray.View = (*TrayApp)(nil)

// NewTrayApp builds the widgets. Nothing is interactive until Attach.
func NewTrayApp(a fyne.App, logger *logrus.Logger) *TrayApp {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	window := a.NewWindow("Settings")
	window.Resize(fyne.NewSize(280, 130))
	window.SetFixedSize(true)
	window.CenterOnScreen()

	t := &TrayApp{
		app:            a,
		window:         window,
		intervalSelect: widget.NewSelect(models.IntervalLabels(), nil),
		silentCheck:    widget.NewCheck("Silent notifications", nil),
		okButton:       widget.NewButton("OK", nil),
		log:            logger.WithField("component", "ui"),
	}

	window.SetContent(container.NewVBox(
		widget.NewLabel(settingsLabel),
		t.intervalSelect,
		t.silentCheck,
		t.okButton,
	))

	return t
}

// Attach binds the widgets and the tray menu to ctrl
func (t *TrayApp) Attach(ctrl *tray.Controller) {
	t.ctrl = ctrl

	// selection is restored before the callbacks exist so startup does not
	// write the settings back
	settings := ctrl.Settings()
	t.intervalSelect.SetSelectedIndex(models.IndexForInterval(settings.RefreshInterval))
	t.silentCheck.SetChecked(settings.Silent)

	t.intervalSelect.OnChanged = func(label string) {
		if idx := models.IndexForLabel(label); idx >= 0 {
			ctrl.Post(tray.IntervalSelected(idx))
		}
	}
	t.silentCheck.OnChanged = func(on bool) {
		ctrl.Post(tray.SilentToggled(on))
	}
	t.okButton.OnTapped = func() {
		ctrl.Post(tray.Event{Kind: tray.EventHideSettings})
	}
	t.window.SetCloseIntercept(func() {
		ctrl.Post(tray.Event{Kind: tray.EventHideSettings})
	})

	t.mu.Lock()
	t.repeatEnabled = ctrl.RepeatEnabled()
	t.menu = t.buildMenu(t.repeatEnabled)
	menu := t.menu
	t.mu.Unlock()

	t.installTray(menu)
}

// buildMenu returns a new tray menu bound to the controller
func (t *TrayApp) buildMenu(repeatEnabled bool) *fyne.Menu {
	ctrl := t.ctrl

	repeatItem := fyne.NewMenuItem("Repeat last quote", func() {
		ctrl.Post(tray.Event{Kind: tray.EventRepeatLastQuote})
	})
	repeatItem.Disabled = !repeatEnabled

	exitItem := fyne.NewMenuItem("Exit", func() {
		ctrl.Post(tray.Event{Kind: tray.EventExit})
	})
	exitItem.IsQuit = true

	return fyne.NewMenu(appTitle,
		repeatItem,
		fyne.NewMenuItem("Next quote", func() {
			ctrl.Post(tray.Event{Kind: tray.EventNextQuote})
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", func() {
			ctrl.Post(tray.Event{Kind: tray.EventShowSettings})
		}),
		fyne.NewMenuItemSeparator(),
		exitItem,
	)
}

// Menu returns the current tray menu, nil before Attach
func (t *TrayApp) Menu() *fyne.Menu {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.menu
}

// RepeatEnabled reports whether the tray menu offers "Repeat last quote"
func (t *TrayApp) RepeatEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.repeatEnabled
}

// Run blocks in the fyne event loop until Quit
func (t *TrayApp) Run() {
	t.app.Run()
}

func (t *TrayApp) SetSettingsVisible(visible bool) {
	if visible {
		t.window.Show()
		t.window.RequestFocus()
		return
	}
	t.window.Hide()
}

func (t *TrayApp) SetRepeatEnabled(enabled bool) {
	t.mu.Lock()
	if t.ctrl == nil || t.repeatEnabled == enabled {
		t.mu.Unlock()
		return
	}
	t.repeatEnabled = enabled
	t.menu = t.buildMenu(enabled)
	menu := t.menu
	t.mu.Unlock()

	t.installTray(menu)
}

func (t *TrayApp) Quit() {
	t.app.Quit()
}

func (t *TrayApp) installTray(menu *fyne.Menu) {
	desk, ok := t.app.(desktop.App)
	if !ok {
		t.log.Debug("driver has no system tray")
		return
	}
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(icons.App())
}
