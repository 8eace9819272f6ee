package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"

	"seabattle/engine"
	"seabattle/fleet"
	"seabattle/types"
)

var (
	cfgFile = "seabattle/config.json"
	logFile = "seabattle/debug.log"
)

const (
	MinBoardSize = 6
	MaxBoardSize = 10
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	WaterColor      int `json:"water"`
	WaterColorAlt   int `json:"water_alt"`
	ShipColor       int `json:"ship"`
	HitColor        int `json:"hit"`
	MissColor       int `json:"miss"`
	MarginColor     int `json:"margin"`
	CursorColorFG   int `json:"cursor_fg"`
	CursorColorBG   int `json:"cursor_bg"`
	LastShotColorBG int `json:"last_shot_bg"`
}

type ConfigSymbols struct {
	Water  rune `json:"water"`
	Ship   rune `json:"ship"`
	Hit    rune `json:"hit"`
	Miss   rune `json:"miss"`
	Margin rune `json:"margin"`
	Cursor rune `json:"cursor"`
}

// For returns the symbol drawn for a cell state.
func (s ConfigSymbols) For(state types.CellState) rune {
	switch state {
	case types.CellShip:
		return s.Ship
	case types.CellHit:
		return s.Hit
	case types.CellMiss:
		return s.Miss
	case types.CellMargin:
		return s.Margin
	default:
		return s.Water
	}
}

type Theme struct {
	DrawCellBackground     bool          `json:"draw_cell_bg"`
	DrawCursorBackground   bool          `json:"draw_cursor_bg"`
	DrawLastShotBackground bool          `json:"draw_last_shot_bg"`
	Colors                 ConfigColors  `json:"colors"`
	Symbols                ConfigSymbols `json:"symbols"`
}

// GameDefaults holds the settings a new game starts with.
type GameDefaults struct {
	BoardSize         int  `json:"board_size"`
	PlacementAttempts int  `json:"placement_attempts"`
	HumanFirst        bool `json:"human_first"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"` // empty means $XDG_STATE_HOME/seabattle/debug.log
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
	Log   LogConfig    `json:"log"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// ApplyEnv overrides settings from SEABATTLE_* environment variables.
func (c *Config) ApplyEnv(lookup func(key string) (string, bool)) error {
	if v, ok := lookup("SEABATTLE_BOARD_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &InvalidConfig{fmt.Sprintf("SEABATTLE_BOARD_SIZE: %q is not a number", v)}
		}
		c.Game.BoardSize = n
	}
	if v, ok := lookup("SEABATTLE_HUMAN_FIRST"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &InvalidConfig{fmt.Sprintf("SEABATTLE_HUMAN_FIRST: %q is not a boolean", v)}
		}
		c.Game.HumanFirst = b
	}
	if v, ok := lookup("SEABATTLE_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("SEABATTLE_LOG_FILE"); ok {
		c.Log.File = v
	}
	return nil
}

func (c *Config) Validate() error {
	s := c.Theme.Symbols
	for _, r := range []rune{s.Water, s.Ship, s.Hit, s.Miss, s.Margin, s.Cursor} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.BoardSize < MinBoardSize || c.Game.BoardSize > MaxBoardSize {
		return &InvalidConfig{fmt.Sprintf("board size must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, c.Game.BoardSize)}
	}
	if c.Game.PlacementAttempts <= 0 {
		return &InvalidConfig{"placement attempts must be positive"}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

// GameConfig builds the engine configuration for a new game.
func (c *Config) GameConfig() engine.GameConfig {
	gameCfg := engine.DefaultConfig()
	gameCfg.BoardSize = c.Game.BoardSize
	gameCfg.PlacementAttempts = c.Game.PlacementAttempts
	gameCfg.HumanFirst = c.Game.HumanFirst
	gameCfg.Fleet = append([]int(nil), fleet.DefaultFleet...)
	return gameCfg
}

// LogPath returns where the debug log is written.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(logFile)
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
