package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"

	"seabattle/fleet"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig.Validate() = %v, want nil", err)
	}
	gameCfg := cfg.GameConfig()
	if gameCfg.BoardSize != 6 {
		t.Errorf("BoardSize = %d, want 6", gameCfg.BoardSize)
	}
	if gameCfg.PlacementAttempts != fleet.DefaultAttempts {
		t.Errorf("PlacementAttempts = %d, want %d", gameCfg.PlacementAttempts, fleet.DefaultAttempts)
	}
	if len(gameCfg.Fleet) != len(fleet.DefaultFleet) {
		t.Errorf("Fleet = %v, want %v", gameCfg.Fleet, fleet.DefaultFleet)
	}
}

func TestGameConfigFleetIsCopy(t *testing.T) {
	cfg := DefaultConfig
	gameCfg := cfg.GameConfig()
	gameCfg.Fleet[0] = 99
	if fleet.DefaultFleet[0] == 99 {
		t.Error("GameConfig shares its fleet with fleet.DefaultFleet")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"largest board", func(c *Config) { c.Game.BoardSize = MaxBoardSize }, true},
		{"board too small", func(c *Config) { c.Game.BoardSize = 5 }, false},
		{"board too large", func(c *Config) { c.Game.BoardSize = 11 }, false},
		{"no attempts", func(c *Config) { c.Game.PlacementAttempts = 0 }, false},
		{"control symbol", func(c *Config) { c.Theme.Symbols.Hit = '\t' }, false},
		{"c1 symbol", func(c *Config) { c.Theme.Symbols.Water = 130 }, false},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, true},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, false},
	}
	for _, tt := range tests {
		cfg := DefaultConfig
		tt.modify(&cfg)
		err := cfg.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: Validate() = %v, want nil", tt.name, err)
		}
		if !tt.valid {
			var invalid *InvalidConfig
			if !errors.As(err, &invalid) {
				t.Errorf("%s: Validate() = %v, want *InvalidConfig", tt.name, err)
			}
		}
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig
	err := cfg.ApplyEnv(envMap(map[string]string{
		"SEABATTLE_BOARD_SIZE":  "8",
		"SEABATTLE_HUMAN_FIRST": "false",
		"SEABATTLE_LOG_LEVEL":   "debug",
		"SEABATTLE_LOG_FILE":    "/tmp/sea.log",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv() = %v", err)
	}
	if cfg.Game.BoardSize != 8 || cfg.Game.HumanFirst || cfg.Log.Level != "debug" {
		t.Errorf("ApplyEnv left %+v", cfg.Game)
	}
	if p, _ := cfg.LogPath(); p != "/tmp/sea.log" {
		t.Errorf("LogPath() = %q, want %q", p, "/tmp/sea.log")
	}
	if DefaultConfig.Game.BoardSize != 6 {
		t.Error("ApplyEnv modified DefaultConfig")
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	for key, value := range map[string]string{
		"SEABATTLE_BOARD_SIZE":  "six",
		"SEABATTLE_HUMAN_FIRST": "maybe",
	} {
		cfg := DefaultConfig
		err := cfg.ApplyEnv(envMap(map[string]string{key: value}))
		var invalid *InvalidConfig
		if !errors.As(err, &invalid) {
			t.Errorf("ApplyEnv(%s=%q) = %v, want *InvalidConfig", key, value, err)
		}
	}
}

func TestSaveAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	saved := DefaultConfig
	saved.Game.BoardSize = 9
	saved.Theme.Symbols.Ship = '#'
	if err := saveCfgFile(path, &saved, 0600); err != nil {
		t.Fatalf("saveCfgFile() = %v", err)
	}

	var loaded Config
	if err := readCfgFile(path, &loaded); err != nil {
		t.Fatalf("readCfgFile() = %v", err)
	}
	if loaded.Game.BoardSize != 9 || loaded.Theme.Symbols.Ship != '#' {
		t.Errorf("readCfgFile() = %+v, want board 9 and ship '#'", loaded)
	}
}

func TestReadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig
	err := readCfgFile(path, &cfg)
	var invalid *InvalidConfig
	if !errors.As(err, &invalid) {
		t.Errorf("readCfgFile(corrupt) = %v, want *InvalidConfig", err)
	}
}

func TestInitConfigFromEnv(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	t.Setenv("SEABATTLE_BOARD_SIZE", "7")
	t.Setenv("SEABATTLE_LOG_LEVEL", "warn")
	cfg, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig() = %v", err)
	}
	if cfg.Game.BoardSize != 7 {
		t.Errorf("BoardSize = %d, want 7", cfg.Game.BoardSize)
	}

	t.Setenv("SEABATTLE_BOARD_SIZE", "3")
	if _, err := InitConfig(); err == nil {
		t.Error("InitConfig() with board size 3 = nil, want error")
	}
}
