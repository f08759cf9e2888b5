// Package vision implements the per-frame perception stages: region
// extraction, background modeling, foreground segmentation, and hand
// geometry extraction.
package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// RegionExtractor crops the fixed hand-search window from each frame,
// converts it to grayscale, and blurs it to suppress sensor noise.
type RegionExtractor struct {
	bounds image.Rectangle
	kernel int
}

// NewRegionExtractor validates the crop bounds against the frame
// dimensions once and returns a configured extractor. The bounds and the
// blur kernel are fixed for the life of the session.
func NewRegionExtractor(frameWidth, frameHeight int, bounds image.Rectangle, kernel int) (*RegionExtractor, error) {
	if bounds.Min.X >= bounds.Max.X || bounds.Min.Y >= bounds.Max.Y {
		return nil, fmt.Errorf("region bounds %v are empty", bounds)
	}
	if bounds.Min.X < 0 || bounds.Min.Y < 0 || bounds.Max.X > frameWidth || bounds.Max.Y > frameHeight {
		return nil, fmt.Errorf("region bounds %v exceed frame %dx%d", bounds, frameWidth, frameHeight)
	}
	if kernel < 1 || kernel%2 == 0 {
		return nil, fmt.Errorf("blur kernel must be a positive odd number, got %d", kernel)
	}

	return &RegionExtractor{bounds: bounds, kernel: kernel}, nil
}

// Extract returns the grayscale, denoised search region of the frame.
// The output dimensions are constant across calls. The caller owns the
// returned Mat and must close it.
func (r *RegionExtractor) Extract(frame *gocv.Mat) gocv.Mat {
	roi := frame.Region(r.bounds)
	defer roi.Close()

	gray := gocv.NewMat()
	defer gray.Close()

	if roi.Channels() > 1 {
		gocv.CvtColor(roi, &gray, gocv.ColorBGRToGray)
	} else {
		roi.CopyTo(&gray)
	}

	blurred := gocv.NewMat()
	gocv.GaussianBlur(gray, &blurred, image.Pt(r.kernel, r.kernel), 0, 0, gocv.BorderDefault)

	return blurred
}

// Bounds returns the configured crop rectangle.
func (r *RegionExtractor) Bounds() image.Rectangle {
	return r.bounds
}
