package pipeline

import (
	"image"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "compact preset is valid",
			mutate: func(c *Config) { *c = CompactPreset() },
		},
		{
			name:    "zero frame width",
			mutate:  func(c *Config) { c.FrameWidth = 0 },
			wantErr: true,
		},
		{
			name:    "empty region",
			mutate:  func(c *Config) { c.Region = image.Rect(50, 50, 50, 120) },
			wantErr: true,
		},
		{
			name:    "region outside frame",
			mutate:  func(c *Config) { c.Region = image.Rect(160, 10, 310, 150) },
			wantErr: true,
		},
		{
			name:    "zero calibration frames",
			mutate:  func(c *Config) { c.CalibrationFrames = 0 },
			wantErr: true,
		},
		{
			name:    "background weight at one",
			mutate:  func(c *Config) { c.BackgroundWeight = 1 },
			wantErr: true,
		},
		{
			name:    "background weight at zero",
			mutate:  func(c *Config) { c.BackgroundWeight = 0 },
			wantErr: true,
		},
		{
			name:    "diff threshold over 255",
			mutate:  func(c *Config) { c.DiffThreshold = 256 },
			wantErr: true,
		},
		{
			name:    "even blur kernel",
			mutate:  func(c *Config) { c.BlurKernel = 6 },
			wantErr: true,
		},
		{
			name:    "zero wave interval",
			mutate:  func(c *Config) { c.WaveInterval = 0 },
			wantErr: true,
		},
		{
			name:    "negative wave displacement",
			mutate:  func(c *Config) { c.WaveDisplacement = -1 },
			wantErr: true,
		},
		{
			name:    "zero smoothing window",
			mutate:  func(c *Config) { c.SmoothingWindow = 0 },
			wantErr: true,
		},
		{
			name:    "finger ratio over one",
			mutate:  func(c *Config) { c.MaxFingerRatio = 1.2 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompactPreset_Overrides(t *testing.T) {
	cfg := CompactPreset()
	if cfg.Region != image.Rect(10, 10, 140, 150) {
		t.Errorf("Region = %v, want top-left window", cfg.Region)
	}
	if cfg.WaveInterval != 4 {
		t.Errorf("WaveInterval = %d, want 4", cfg.WaveInterval)
	}
	// Everything else tracks the defaults.
	if cfg.CalibrationFrames != DefaultCalibrationFrames {
		t.Errorf("CalibrationFrames = %d, want %d", cfg.CalibrationFrames, DefaultCalibrationFrames)
	}
}
