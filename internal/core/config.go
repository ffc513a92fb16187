package core

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInvalidDelay is returned for a negative step delay.
	ErrInvalidDelay = errors.New("step delay must not be negative")
	// ErrInvalidScale is returned for a non-positive pixel scale.
	ErrInvalidScale = errors.New("scale must be positive")
)

// DefaultScale is the number of display pixels per cell edge.
const DefaultScale = 20

// SimulationConfig holds the validated, immutable run parameters.
type SimulationConfig struct {
	width     int
	height    int
	stepDelay time.Duration
	scale     int
}

// NewSimulationConfig validates the parameters and returns a config value.
func NewSimulationConfig(width, height int, stepDelay time.Duration, scale int) (SimulationConfig, error) {
	if err := CheckDimensions(width, height); err != nil {
		return SimulationConfig{}, fmt.Errorf("simulation: %w", err)
	}
	if stepDelay < 0 {
		return SimulationConfig{}, fmt.Errorf("simulation delay %v: %w", stepDelay, ErrInvalidDelay)
	}
	if err := CheckScale(width, height, scale); err != nil {
		return SimulationConfig{}, fmt.Errorf("simulation: %w", err)
	}
	return SimulationConfig{width: width, height: height, stepDelay: stepDelay, scale: scale}, nil
}

// Width returns the board width in cells.
func (c SimulationConfig) Width() int { return c.width }

// Height returns the board height in cells.
func (c SimulationConfig) Height() int { return c.height }

// Size returns the board dimensions.
func (c SimulationConfig) Size() Size { return Size{W: c.width, H: c.height} }

// StepDelay returns the pause requested after each generation.
func (c SimulationConfig) StepDelay() time.Duration { return c.stepDelay }

// Scale returns the display pixels per cell.
func (c SimulationConfig) Scale() int { return c.scale }

// CheckScale reports whether scale is positive and the scaled display
// surface of a w*h board fits in 32 bits on both axes.
func CheckScale(w, h, scale int) error {
	if scale <= 0 {
		return fmt.Errorf("scale %d: %w", scale, ErrInvalidScale)
	}
	if w > math.MaxInt32/scale || h > math.MaxInt32/scale {
		return fmt.Errorf("%dx%d at scale %d overflows the display: %w", w, h, scale, ErrBoardTooLarge)
	}
	return nil
}

// PixelSize returns the display surface dimensions.
func (c SimulationConfig) PixelSize() Size {
	return Size{W: c.width * c.scale, H: c.height * c.scale}
}
