package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to lay itself out on screen and to seed its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the driver (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState is the platform-facing view of a game's status.
type GameState struct {
	Score    int  // Current score
	Started  bool // Whether the first game has been started
	GameOver bool // Whether the game has ended
}
