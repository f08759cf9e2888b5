package vision

import (
	"image"
	"testing"

	"gocv.io/x/gocv"
)

func TestNewRegionExtractor_Validation(t *testing.T) {
	tests := []struct {
		name    string
		bounds  image.Rectangle
		kernel  int
		wantErr bool
	}{
		{
			name:   "valid top-right window",
			bounds: image.Rect(160, 10, 290, 150),
			kernel: 7,
		},
		{
			name:    "empty bounds",
			bounds:  image.Rect(100, 50, 100, 150),
			kernel:  7,
			wantErr: true,
		},
		{
			name:    "inverted bounds",
			bounds:  image.Rect(200, 150, 100, 10),
			kernel:  7,
			wantErr: true,
		},
		{
			name:    "bounds exceed frame width",
			bounds:  image.Rect(160, 10, 310, 150),
			kernel:  7,
			wantErr: true,
		},
		{
			name:    "bounds exceed frame height",
			bounds:  image.Rect(160, 10, 290, 220),
			kernel:  7,
			wantErr: true,
		},
		{
			name:    "negative origin",
			bounds:  image.Rect(-5, 10, 290, 150),
			kernel:  7,
			wantErr: true,
		},
		{
			name:    "even kernel",
			bounds:  image.Rect(160, 10, 290, 150),
			kernel:  8,
			wantErr: true,
		},
		{
			name:    "zero kernel",
			bounds:  image.Rect(160, 10, 290, 150),
			kernel:  0,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegionExtractor(300, 200, tt.bounds, tt.kernel)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRegionExtractor() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegionExtractor_ConstantDimensions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	bounds := image.Rect(160, 10, 290, 150)
	re, err := NewRegionExtractor(300, 200, bounds, 7)
	if err != nil {
		t.Fatalf("NewRegionExtractor() error = %v", err)
	}

	frame := gocv.NewMatWithSize(200, 300, gocv.MatTypeCV8UC3)
	defer frame.Close()

	for i := 0; i < 3; i++ {
		region := re.Extract(&frame)

		if region.Cols() != bounds.Dx() || region.Rows() != bounds.Dy() {
			t.Errorf("region dims = %dx%d, want %dx%d",
				region.Cols(), region.Rows(), bounds.Dx(), bounds.Dy())
		}
		if region.Channels() != 1 {
			t.Errorf("region channels = %d, want 1 (grayscale)", region.Channels())
		}

		region.Close()
	}
}

func TestRegionExtractor_GrayInput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	re, err := NewRegionExtractor(300, 200, image.Rect(0, 0, 100, 100), 5)
	if err != nil {
		t.Fatalf("NewRegionExtractor() error = %v", err)
	}

	// Already single-channel input passes through without conversion.
	frame := gocv.NewMatWithSize(200, 300, gocv.MatTypeCV8U)
	defer frame.Close()

	region := re.Extract(&frame)
	defer region.Close()

	if region.Channels() != 1 {
		t.Errorf("region channels = %d, want 1", region.Channels())
	}
}
