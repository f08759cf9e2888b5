// Package testdata builds synthetic frames for pipeline tests: flat
// scenes for calibration and hand-shaped blobs for segmentation.
package testdata

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// NewFlatFrame returns a uniform BGR frame with the given intensity.
func NewFlatFrame(width, height int, value uint8) *gocv.Mat {
	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	mat.SetTo(gocv.NewScalar(float64(value), float64(value), float64(value), 0))
	return &mat
}

// DrawBlob fills a rectangle of the frame with white so it reads as
// foreground against a darker calibrated background.
func DrawBlob(frame *gocv.Mat, r image.Rectangle) {
	gocv.Rectangle(frame, r, color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)
}

// FistFrame returns a frame whose search region contains one solid wide
// blob shaped like a closed fist. The single scanline crossing is wider
// than the finger-width cap, so the expected count is zero.
func FistFrame(width, height int, region image.Rectangle, background uint8) *gocv.Mat {
	frame := NewFlatFrame(width, height, background)
	fist := image.Rect(region.Min.X+20, region.Min.Y+40, region.Min.X+110, region.Min.Y+130)
	DrawBlob(frame, fist)
	return frame
}

// FingersFrame returns a frame whose search region contains a palm blob
// with n finger bars rising from it. Bars are spaced wide enough that
// the region blur cannot merge neighboring crossings. offsetX shifts the
// whole hand sideways, for wave sequences.
func FingersFrame(width, height int, region image.Rectangle, background uint8, n, offsetX int) *gocv.Mat {
	frame := NewFlatFrame(width, height, background)

	palm := image.Rect(
		region.Min.X+20+offsetX, region.Min.Y+80,
		region.Min.X+110+offsetX, region.Min.Y+130,
	)
	DrawBlob(frame, palm)

	for i := 0; i < n; i++ {
		x := region.Min.X + 30 + offsetX + i*35
		bar := image.Rect(x, region.Min.Y+30, x+15, region.Min.Y+90)
		DrawBlob(frame, bar)
	}

	return frame
}

// CalibrationFrames returns count identical flat frames.
func CalibrationFrames(width, height, count int, value uint8) []*gocv.Mat {
	frames := make([]*gocv.Mat, 0, count)
	for i := 0; i < count; i++ {
		frames = append(frames, NewFlatFrame(width, height, value))
	}
	return frames
}

// CloseFrames closes every frame in the slice.
func CloseFrames(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}
