// seabattle is a terminal application to play sea battle against the computer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rivo/tview"

	"seabattle/config"
	"seabattle/console"
	"seabattle/engine"
	"seabattle/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize  = flag.Int("boardsize", 0, "Board size (6 to 10)")
	flagFirst      = flag.String("first", "", "Who fires first (you or computer)")
	flagSeed       = flag.Int64("seed", 0, "Random seed, 0 picks one")
	flagPlain      = flag.Bool("plain", false, "Play on a plain line-oriented terminal")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (enemy board only)")
	flagLogLevel   = flag.String("loglevel", "", "Log level (debug, info, warn, error)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameView *ui.GameView
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("seabattle %s\n", Version)
		return
	}

	envErr := godotenv.Load()

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *flagLogLevel != "" {
		cfg.Log.Level = *flagLogLevel
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.Warn("could not read .env", "err", envErr)
	}

	gameCfg := buildGameConfigFromFlags()

	if *flagPlain {
		os.Exit(playPlain(gameCfg))
	}

	quickStart := *flagQuickStart || *flagBoardSize > 0 || *flagFirst != "" || *flagSeed != 0 || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ≈ seabattle ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameView = ui.NewGameView(app, cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameView, gameHint)

	gameView.Enemy.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameView.Enemy.SelectedTile() != nil && !gameView.IsFinished() {
				gameView.Enemy.ResetSelection()
			} else {
				gameView.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameView.Enemy.MoveSelection(-1, 0)
		case tcell.KeyDown:
			gameView.Enemy.MoveSelection(1, 0)
		case tcell.KeyLeft:
			gameView.Enemy.MoveSelection(0, -1)
		case tcell.KeyRight:
			gameView.Enemy.MoveSelection(0, 1)
		case tcell.KeyEnter:
			gameView.Fire()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameView.Enemy.MoveSelection(0, -1)
			case 'j':
				gameView.Enemy.MoveSelection(1, 0)
			case 'k':
				gameView.Enemy.MoveSelection(-1, 0)
			case 'l':
				gameView.Enemy.MoveSelection(0, 1)
			case ' ':
				gameView.Fire()
			case 'f':
				if gameView.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameView)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameView, gameHint)
				}
				app.SetFocus(gameView.Enemy.Box)
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(gameCfg,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameView.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 64), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(gameCfg)
		if *flagFocus {
			gameView.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameView)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		log.Error("terminal ui failed", "err", err)
		gameView.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	gameView.Close()
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	gameView.Start(gameCfg)
	if gameView.IsFocusMode() {
		ui.BuildFocusLayout(gameFrame, gameView)
	} else {
		ui.RebuildNormalLayout(gameFrame, gameView, gameHint)
	}
	rootPage.SwitchToPage("gameview")
	app.SetFocus(gameView.Enemy.Box)
}

// playPlain runs one game on stdin and stdout and returns the exit code.
func playPlain(gameCfg engine.GameConfig) int {
	_, err := console.Run(context.Background(), gameCfg, cfg.Theme.Symbols, os.Stdin, os.Stdout, gameCfg.Rand())
	switch {
	case err == nil:
		return 0
	case errors.Is(err, io.EOF):
		fmt.Println("\nGame abandoned.")
		return 0
	default:
		log.Error("game failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
}

// buildGameConfigFromFlags creates a GameConfig from the config file and command-line flags.
func buildGameConfigFromFlags() engine.GameConfig {
	gameCfg := cfg.GameConfig()

	if *flagBoardSize >= config.MinBoardSize && *flagBoardSize <= config.MaxBoardSize {
		gameCfg.BoardSize = *flagBoardSize
	} else if *flagBoardSize != 0 {
		log.Warn("ignoring board size", "boardsize", *flagBoardSize)
	}

	switch strings.ToLower(*flagFirst) {
	case "you", "me", "human":
		gameCfg.HumanFirst = true
	case "computer", "cpu":
		gameCfg.HumanFirst = false
	}

	gameCfg.Seed = *flagSeed
	return gameCfg
}

// setupLogging sends the default logger to the log file. The terminal
// belongs to the game, so nothing is logged to stderr.
func setupLogging(cfg *config.Config) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	path, err := cfg.LogPath()
	if err != nil {
		return nil, fmt.Errorf("locate log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetDefault(log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "seabattle",
		ReportTimestamp: true,
	}))
	return f, nil
}
