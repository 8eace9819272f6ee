package config

import "seabattle/fleet"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCellBackground:     true,
		DrawCursorBackground:   true,
		DrawLastShotBackground: true,
		Colors: ConfigColors{
			WaterColor:      24,
			WaterColorAlt:   25,
			ShipColor:       250,
			HitColor:        196,
			MissColor:       117,
			MarginColor:     67,
			CursorColorFG:   16,
			CursorColorBG:   226,
			LastShotColorBG: 130,
		},
		Symbols: ConfigSymbols{
			Water:  'O',
			Ship:   '■',
			Hit:    'X',
			Miss:   'T',
			Margin: '.',
			Cursor: '+',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			BoardSize:         6,
			PlacementAttempts: fleet.DefaultAttempts,
			HumanFirst:        true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
