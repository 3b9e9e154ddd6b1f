package sim

// Config holds the per-world settings that are not fixed tuning.
type Config struct {
	ScreenWidth  float32
	ScreenHeight float32
	TreeCount    int
	ManCount     int
}

// DefaultConfig returns the settings of the shipped game.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		TreeCount:    20,
		ManCount:     1,
	}
}
