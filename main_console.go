//go:build console
// +build console

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"chucktray/logging"
	"chucktray/models"
	"chucktray/notify"
	"chucktray/quote"
	"chucktray/storage"
	"chucktray/tray"

	"github.com/sirupsen/logrus"
)

const (
	choiceRepeat = 1
	choiceNext   = 2
	choiceConfig = 3
	choiceExit   = 4
)

// ConsoleApp drives the tray controller from a terminal menu
type ConsoleApp struct {
	ctrl   *tray.Controller
	reader *bufio.Reader
	done   chan struct{}
}

// consoleView prints what the GUI would show
type consoleView struct {
	done chan struct{}
}

func (v *consoleView) SetSettingsVisible(visible bool) {}

func (v *consoleView) SetRepeatEnabled(enabled bool) {
	if enabled {
		fmt.Println("(repeat last quote is now available)")
	}
}

func (v *consoleView) Quit() {
	close(v.done)
}

// consoleNotifier prints notifications to stdout
type consoleNotifier struct{}

func (consoleNotifier) Notify(n notify.Notification) error {
	fmt.Printf("\n*** %s ***\n%s\n\n", n.Title, n.Message)
	return nil
}

// NewConsoleApp creates a new console application
func NewConsoleApp(logger *logrus.Logger) *ConsoleApp {
	view := &consoleView{done: make(chan struct{})}
	store := storage.NewManager(storage.NewPlatformBackend(nil), logger)

	ctrl := tray.NewController(tray.Config{
		Store:    store,
		Fetcher:  quote.NewService(logger),
		Notifier: newNotifier(consoleNotifier{}, logger),
		View:     view,
		Logger:   logger,
		OnDiagnostic: func(d storage.Diagnostic) {
			fmt.Printf("warning: could not %s %s: %v\n", d.Op, d.Key, d.Err)
		},
	})

	return &ConsoleApp{
		ctrl:   ctrl,
		reader: bufio.NewReader(os.Stdin),
		done:   view.done,
	}
}

// Run starts the controller and the menu loop
func (app *ConsoleApp) Run() {
	go func() {
		_ = app.ctrl.Run(context.Background())
	}()

	for {
		app.showMenu()
		choice, err := app.getUserChoice()
		if err != nil {
			// stdin closed
			choice = choiceExit
		}
		app.handleChoice(choice)

		select {
		case <-app.done:
			fmt.Println("Goodbye!")
			return
		default:
		}
	}
}

// showMenu displays the main menu
func (app *ConsoleApp) showMenu() {
	fmt.Println("\n=== Chuck Norust Console ===")
	if app.ctrl.RepeatEnabled() {
		fmt.Println("1. Repeat last quote")
	} else {
		fmt.Println("1. Repeat last quote (no quote yet)")
	}
	fmt.Println("2. Next quote")
	fmt.Println("3. Settings")
	fmt.Println("4. Exit")
	fmt.Print("Choose an option: ")
}

// readLine returns the next trimmed input line, io.EOF once stdin is closed
func (app *ConsoleApp) readLine() (string, error) {
	input, err := app.reader.ReadString('\n')
	if err != nil && input == "" {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// getUserChoice gets user input for menu selection; 0 when not a number
func (app *ConsoleApp) getUserChoice() (int, error) {
	input, err := app.readLine()
	if err != nil {
		return 0, err
	}

	choice, err := strconv.Atoi(input)
	if err != nil {
		return 0, nil
	}

	return choice, nil
}

// handleChoice processes the user's menu choice
func (app *ConsoleApp) handleChoice(choice int) {
	switch choice {
	case choiceRepeat:
		app.ctrl.Post(tray.Event{Kind: tray.EventRepeatLastQuote})
	case choiceNext:
		app.ctrl.Post(tray.Event{Kind: tray.EventNextQuote})
	case choiceConfig:
		app.showSettings()
	case choiceExit:
		app.ctrl.Post(tray.Event{Kind: tray.EventExit})
		<-app.done
	default:
		fmt.Println("Invalid choice. Please try again.")
	}
}

// showSettings displays and allows editing of settings
func (app *ConsoleApp) showSettings() {
	settings := app.ctrl.Settings()
	current := models.IndexForInterval(settings.RefreshInterval)

	fmt.Println("\n=== How fast should Chuck speak ? ===")
	for i, choice := range models.Intervals() {
		marker := " "
		if i == current {
			marker = "*"
		}
		fmt.Printf("%s %2d. %s\n", marker, i+1, choice.Label)
	}
	fmt.Printf("Silent notifications: %t\n", settings.Silent)

	fmt.Print("New interval (press Enter to keep current): ")
	choice, err := app.getUserChoice()
	if err != nil {
		return
	}
	if choice > 0 {
		app.ctrl.Post(tray.IntervalSelected(choice - 1))
	}

	fmt.Print("Silent notifications? (y/n, press Enter to keep current): ")
	input, err := app.readLine()
	if err != nil {
		return
	}
	input = strings.ToLower(input)
	if input == "y" || input == "yes" {
		app.ctrl.Post(tray.SilentToggled(true))
	} else if input == "n" || input == "no" {
		app.ctrl.Post(tray.SilentToggled(false))
	}
}

func main() {
	logger, closer := logging.New(logrus.InfoLevel)
	defer closer.Close()

	fmt.Println("Chuck Norust Console Version")
	fmt.Println("============================")

	app := NewConsoleApp(logger)
	app.Run()
}
