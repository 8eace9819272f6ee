package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"seabattle/config"
	"seabattle/engine"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	cfg engine.GameConfig
}

// NewGameSetup creates a new game setup form starting from defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		cfg:      defaults,
	}

	var boardSizes []string
	initialSize := 0
	for n := config.MinBoardSize; n <= config.MaxBoardSize; n++ {
		if n == defaults.BoardSize {
			initialSize = len(boardSizes)
		}
		boardSizes = append(boardSizes, strconv.Itoa(n)+"x"+strconv.Itoa(n))
	}
	firstMover := []string{"You", "Computer"}
	initialFirst := 0
	if !defaults.HumanFirst {
		initialFirst = 1
	}

	initialSeed := ""
	if defaults.Seed != 0 {
		initialSeed = strconv.FormatInt(defaults.Seed, 10)
	}

	form := tview.NewForm()

	form.AddDropDown("Board Size", boardSizes, initialSize, func(option string, index int) {
		setup.cfg.BoardSize = config.MinBoardSize + index
	})

	form.AddDropDown("First Shot", firstMover, initialFirst, func(option string, index int) {
		setup.cfg.HumanFirst = index == 0
	})

	form.AddInputField("Seed (blank = random)", initialSeed, 20, func(text string, lastChar rune) bool {
		return lastChar >= '0' && lastChar <= '9'
	}, func(text string) {
		setup.cfg.Seed = parseSeed(text)
	})

	form.AddButton("Start Game", func() {
		onStart(setup.Config())
	})

	form.AddButton("Board Colors", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetTitleColor(MenuColors.Title)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Config returns the game configuration currently selected in the form.
func (s *GameSetupUI) Config() engine.GameConfig {
	cfg := s.cfg
	cfg.Fleet = append([]int(nil), s.cfg.Fleet...)
	return cfg
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}

// parseSeed returns 0, meaning a random seed, for blank or unusable input.
func parseSeed(text string) int64 {
	seed, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0
	}
	return seed
}
