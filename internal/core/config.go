package core

// RuntimeConfig carries the terminal geometry the platform layer was
// started with. It is fixed per run except for window resizes, which
// the platform handles itself.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig with a conventional 80x24 size,
// used when the terminal size cannot be detected.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}
