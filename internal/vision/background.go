package vision

import "gocv.io/x/gocv"

// BackgroundModel keeps a running-average estimate of the static scene
// inside the search region, used as the subtraction baseline. The buffer
// is seeded from the first observed region and afterwards updated only by
// weighted accumulation, never reassigned wholesale.
type BackgroundModel struct {
	avg    gocv.Mat
	alpha  float64
	seeded bool
}

// NewBackgroundModel creates an empty model. Alpha is the exponential
// moving average weight in (0,1) balancing responsiveness to lighting
// drift against stability.
func NewBackgroundModel(alpha float64) *BackgroundModel {
	return &BackgroundModel{
		avg:   gocv.NewMat(),
		alpha: alpha,
	}
}

// Accumulate folds a region into the running average. The first call
// seeds the buffer with a float copy of the region; every later call
// applies background = (1-alpha)*background + alpha*region.
func (b *BackgroundModel) Accumulate(region *gocv.Mat) {
	if !b.seeded {
		region.ConvertTo(&b.avg, gocv.MatTypeCV32F)
		b.seeded = true
		return
	}

	gocv.AccumulatedWeighted(*region, &b.avg, b.alpha)
}

// Seeded reports whether the model has observed at least one region.
func (b *BackgroundModel) Seeded() bool {
	return b.seeded
}

// Snapshot8U renders the background back to 8-bit intensity for
// differencing against a live region. The caller must close the Mat.
func (b *BackgroundModel) Snapshot8U() gocv.Mat {
	out := gocv.NewMat()
	b.avg.ConvertTo(&out, gocv.MatTypeCV8U)
	return out
}

// Close releases the background buffer.
func (b *BackgroundModel) Close() {
	b.avg.Close()
	b.seeded = false
}
