// Package pipeline wires the perception stages into a single synchronous
// per-frame transform over the live frame stream.
package pipeline

import (
	"fmt"
	"image"
)

// Default pipeline constants.
const (
	// DefaultFrameWidth and DefaultFrameHeight are the expected capture
	// resolution.
	DefaultFrameWidth  = 300
	DefaultFrameHeight = 200
	// DefaultCalibrationFrames is how many frames build the background
	// model before it freezes.
	DefaultCalibrationFrames = 30
	// DefaultBackgroundWeight is the background EMA weight.
	DefaultBackgroundWeight = 0.5
	// DefaultDiffThreshold is the foreground binarization cutoff.
	DefaultDiffThreshold = 18
	// DefaultBlurKernel is the odd Gaussian kernel size for region
	// denoising.
	DefaultBlurKernel = 7
	// DefaultWaveInterval is the number of frames between wave samples.
	DefaultWaveInterval = 8
	// DefaultWaveDisplacement is the center displacement in pixels that
	// counts as waving.
	DefaultWaveDisplacement = 3
	// DefaultSmoothingWindow is the number of frames per finger-count
	// vote.
	DefaultSmoothingWindow = 12
	// DefaultMinFingerWidth is the scanline-crossing noise floor.
	DefaultMinFingerWidth = 5
	// DefaultMaxFingerRatio caps a crossing at this fraction of the hand
	// span.
	DefaultMaxFingerRatio = 0.75
)

// Config fixes the pipeline constants at startup. Nothing here is
// runtime-mutable; Validate is called once before the frame loop starts.
type Config struct {
	FrameWidth  int
	FrameHeight int

	// Region is the crop rectangle searched for a hand.
	Region image.Rectangle

	CalibrationFrames int
	BackgroundWeight  float64
	DiffThreshold     int
	BlurKernel        int

	WaveInterval     int
	WaveDisplacement int

	SmoothingWindow int
	MinFingerWidth  int
	MaxFingerRatio  float64

	// KeepMask makes Process return the binary foreground mask on each
	// Result for debug display. The caller closes it.
	KeepMask bool
}

// DefaultConfig searches the top-right quadrant of a 300x200 frame.
func DefaultConfig() Config {
	return Config{
		FrameWidth:        DefaultFrameWidth,
		FrameHeight:       DefaultFrameHeight,
		Region:            image.Rect(160, 10, 290, 150),
		CalibrationFrames: DefaultCalibrationFrames,
		BackgroundWeight:  DefaultBackgroundWeight,
		DiffThreshold:     DefaultDiffThreshold,
		BlurKernel:        DefaultBlurKernel,
		WaveInterval:      DefaultWaveInterval,
		WaveDisplacement:  DefaultWaveDisplacement,
		SmoothingWindow:   DefaultSmoothingWindow,
		MinFingerWidth:    DefaultMinFingerWidth,
		MaxFingerRatio:    DefaultMaxFingerRatio,
	}
}

// CompactPreset is an alternative set of constants: a top-left search
// window and a tighter wave sampling interval. Behavior is otherwise
// identical to DefaultConfig.
func CompactPreset() Config {
	cfg := DefaultConfig()
	cfg.Region = image.Rect(10, 10, 140, 150)
	cfg.WaveInterval = 4
	return cfg
}

// Validate checks every constant. A bad configuration is fatal at
// startup; nothing else in the pipeline produces hard failures.
func (c Config) Validate() error {
	if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
		return fmt.Errorf("frame dimensions %dx%d must be positive", c.FrameWidth, c.FrameHeight)
	}
	if c.Region.Min.X >= c.Region.Max.X || c.Region.Min.Y >= c.Region.Max.Y {
		return fmt.Errorf("region %v is empty", c.Region)
	}
	if c.Region.Min.X < 0 || c.Region.Min.Y < 0 ||
		c.Region.Max.X > c.FrameWidth || c.Region.Max.Y > c.FrameHeight {
		return fmt.Errorf("region %v exceeds frame %dx%d", c.Region, c.FrameWidth, c.FrameHeight)
	}
	if c.CalibrationFrames <= 0 {
		return fmt.Errorf("calibration frames must be positive, got %d", c.CalibrationFrames)
	}
	if c.BackgroundWeight <= 0 || c.BackgroundWeight >= 1 {
		return fmt.Errorf("background weight must be in (0,1), got %g", c.BackgroundWeight)
	}
	if c.DiffThreshold <= 0 || c.DiffThreshold > 255 {
		return fmt.Errorf("diff threshold must be in 1..255, got %d", c.DiffThreshold)
	}
	if c.BlurKernel < 1 || c.BlurKernel%2 == 0 {
		return fmt.Errorf("blur kernel must be a positive odd number, got %d", c.BlurKernel)
	}
	if c.WaveInterval <= 0 {
		return fmt.Errorf("wave interval must be positive, got %d", c.WaveInterval)
	}
	if c.WaveDisplacement < 0 {
		return fmt.Errorf("wave displacement must be non-negative, got %d", c.WaveDisplacement)
	}
	if c.SmoothingWindow <= 0 {
		return fmt.Errorf("smoothing window must be positive, got %d", c.SmoothingWindow)
	}
	if c.MinFingerWidth < 0 {
		return fmt.Errorf("min finger width must be non-negative, got %d", c.MinFingerWidth)
	}
	if c.MaxFingerRatio <= 0 || c.MaxFingerRatio > 1 {
		return fmt.Errorf("max finger ratio must be in (0,1], got %g", c.MaxFingerRatio)
	}
	return nil
}
