package checker

import (
	"errors"
	"fmt"
)

// Config holds the per-frame parameters of the checkerboard. The foci are
// always EllipticFocus1 and EllipticFocus2: the angle mapping in geom.Cot
// fixes the elliptic pencil, and the Apollonian pencil must share its foci.
type Config struct {
	Sectors int
	Palette Palette
}

func DefaultConfig() Config {
	return Config{
		Sectors: 6,
		Palette: DefaultPalette(),
	}
}

func (c Config) Validate() error {
	if c.Sectors < 1 {
		return fmt.Errorf("checker: sector count must be positive, got %d", c.Sectors)
	}
	if c.Palette[0] == nil || c.Palette[1] == nil {
		return errors.New("checker: palette needs two colors")
	}
	return nil
}
