package vision

import (
	"image"

	"gocv.io/x/gocv"
)

// Segmentation is the joint output of foreground extraction for one
// frame: the binary mask and the dominant contour. They are consumed
// together downstream — the mask for finger counting, the contour for
// geometry.
type Segmentation struct {
	Mask    gocv.Mat
	Contour []image.Point
}

// Close releases the mask.
func (s *Segmentation) Close() {
	s.Mask.Close()
}

// Segmenter separates the hand from the modeled background by absolute
// per-pixel differencing and a single global intensity threshold. The
// threshold is the one sensitivity knob for skin tone and lighting.
type Segmenter struct {
	threshold float32
}

// NewSegmenter creates a Segmenter with the given binarization cutoff.
func NewSegmenter(threshold int) *Segmenter {
	return &Segmenter{threshold: float32(threshold)}
}

// Apply diffs the region against the background and returns the binary
// foreground mask together with the largest external contour, assumed to
// be the hand. A frame with no foreground contours returns (nil, false):
// a normal no-hand outcome, not an error.
func (s *Segmenter) Apply(region *gocv.Mat, bg *BackgroundModel) (*Segmentation, bool) {
	snapshot := bg.Snapshot8U()
	defer snapshot.Close()

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(snapshot, *region, &diff)

	mask := gocv.NewMat()
	gocv.Threshold(diff, &mask, s.threshold, 255, gocv.ThresholdBinary)

	contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	best := -1
	bestArea := 0.0
	for i := 0; i < contours.Size(); i++ {
		if area := gocv.ContourArea(contours.At(i)); area > bestArea {
			bestArea = area
			best = i
		}
	}

	if best < 0 {
		mask.Close()
		return nil, false
	}

	return &Segmentation{
		Mask:    mask,
		Contour: contours.At(best).ToPoints(),
	}, true
}
