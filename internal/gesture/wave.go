package gesture

// WaveDetector flags a waving hand by sampling horizontal center
// displacement at a fixed frame interval. Sampling coarser than every
// frame turns per-frame jitter into a usable velocity signal without
// true frame-rate-independent timing.
type WaveDetector struct {
	interval     int
	displacement int
}

// NewWaveDetector creates a detector that samples every interval-th
// frame and calls displacement beyond the given pixel threshold a wave.
func NewWaveDetector(interval, displacement int) *WaveDetector {
	return &WaveDetector{
		interval:     interval,
		displacement: displacement,
	}
}

// Observe feeds the freshly computed horizontal center for the given
// frame. Only every interval-th frame takes a sample; between samples
// the waving flag holds its last value. On a sample the stored center
// rolls forward and the flag tracks whether the absolute displacement
// since the previous sample exceeds the threshold.
func (d *WaveDetector) Observe(h *HandState, frame, centerX int) {
	if frame%d.interval != 0 {
		return
	}

	h.PrevCenterX = h.CenterX
	h.CenterX = centerX

	delta := h.CenterX - h.PrevCenterX
	if delta < 0 {
		delta = -delta
	}

	h.Waving = delta > d.displacement
}
