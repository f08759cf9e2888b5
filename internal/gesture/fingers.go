package gesture

import (
	"image"

	"gocv.io/x/gocv"
)

// Scanline placement: fraction of the hand's bounding-box height below
// the top extremity. Low enough to clear the fingertips' rounded caps,
// high enough to cross every extended finger and miss the palm.
const scanDrop = 0.2

// FingerCounter counts extended digits by intersecting a one-pixel
// horizontal scanline with the foreground mask near the top of the hand.
type FingerCounter struct {
	minWidth int
	maxRatio float64
}

// NewFingerCounter creates a counter accepting scanline crossings wider
// than minWidth pixels and narrower than maxRatio of the hand span.
func NewFingerCounter(minWidth int, maxRatio float64) *FingerCounter {
	return &FingerCounter{
		minWidth: minWidth,
		maxRatio: maxRatio,
	}
}

// Count intersects the scanline with the mask and counts crossings that
// look like fingers. Crossings at or below the noise floor are dropped,
// and crossings wider than maxRatio of the hand span are rejected so a
// closed fist does not read as one very wide finger. An empty mask or a
// degenerate scanline yields zero.
func (f *FingerCounter) Count(mask *gocv.Mat, h *HandState) int {
	if mask == nil || mask.Empty() {
		return 0
	}

	height := h.Bottom.Y - h.Top.Y
	if height <= 0 {
		return 0
	}

	lineY := h.Top.Y + int(scanDrop*float64(height))
	if lineY < 0 || lineY >= mask.Rows() {
		return 0
	}

	// One-pixel-tall slice across the full mask width.
	row := mask.Region(image.Rect(0, lineY, mask.Cols(), lineY+1))
	line := row.Clone()
	row.Close()
	defer line.Close()

	crossings := gocv.FindContours(line, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer crossings.Close()

	maxWidth := f.maxRatio * float64(h.Right.X-h.Left.X)

	count := 0
	for i := 0; i < crossings.Size(); i++ {
		width := gocv.BoundingRect(crossings.At(i)).Dx()
		if width > f.minWidth && float64(width) < maxWidth {
			count++
		}
	}

	return count
}
