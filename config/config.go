package config

// DisplayConfig contains window and tick-loop configuration values
type DisplayConfig struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64
	JumpSpeed float64
	Gravity   float64

	// Dimensions
	Width  int
	Height int
}

// LevelConfig contains the static level geometry configuration
type LevelConfig struct {
	// GroundLevel is the y coordinate of the global ground line.
	// Touching it ends the run.
	GroundLevel int

	PlatformWidth  int
	PlatformHeight int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
}

// C is the global display configuration
var C DisplayConfig

// Player is the global player configuration
var Player PlayerConfig

// Level is the global level configuration
var Level LevelConfig

// Debug holds options set from the command line
var Debug DebugConfig

func init() {
	C = DisplayConfig{
		Width:  800,
		Height: 600,
		TPS:    60,
		Title:  "cityhop",
	}

	Player = PlayerConfig{
		MoveSpeed: 3,
		JumpSpeed: 6.0,
		Gravity:   0.2,
		Width:     50,
		Height:    50,
	}

	Level = LevelConfig{
		GroundLevel:    C.Height - 50,
		PlatformWidth:  150,
		PlatformHeight: 20,
	}
}

// SpawnX and SpawnY return the player spawn position: standing on the
// leftmost ground platform.
func SpawnX() float64 { return 0 }

func SpawnY() float64 {
	return float64(Level.GroundLevel - Level.PlatformHeight - Player.Height)
}
