package tactics

import "fmt"

// Config holds the tunables of a selection session.
type Config struct {
	HexSize      float64 // World-space size of one hex (center to corner)
	MaxMoveRange int     // Steps a unit may take in one move
}

// DefaultConfig returns the settings used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		HexSize:      1,
		MaxMoveRange: 3,
	}
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	if c.HexSize <= 0 {
		return fmt.Errorf("hex size must be positive, got %v", c.HexSize)
	}
	if c.MaxMoveRange < 0 {
		return fmt.Errorf("max move range must not be negative, got %d", c.MaxMoveRange)
	}
	return nil
}
