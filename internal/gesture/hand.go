// Package gesture holds the tracked hand state and the temporal
// classifiers that turn per-frame geometry into a stable gesture label.
package gesture

import "image"

// Label is the classified gesture for one frame.
type Label string

const (
	// LabelCalibrating is emitted while the background model is still
	// being built.
	LabelCalibrating Label = "calibrating"
	// LabelNoHand is emitted when no foreground blob is found.
	LabelNoHand Label = "no_hand"
	// LabelWaving is emitted while the hand is moving sideways. It
	// outranks the finger-count labels.
	LabelWaving Label = "waving"
	// LabelRock is a closed fist (zero extended fingers).
	LabelRock Label = "rock"
	// LabelPointing is a single extended finger.
	LabelPointing Label = "pointing"
	// LabelScissors is two extended fingers.
	LabelScissors Label = "scissors"
	// LabelUnknown covers finger counts outside {0,1,2}, e.g. an open
	// palm. A legitimate outcome, not an error.
	LabelUnknown Label = "unknown"
)

// String returns the label text.
func (l Label) String() string {
	return string(l)
}

// HandState is the single descriptor of the tracked hand. It is created
// lazily on the first successful segmentation and mutated in place on
// every later frame a hand is found. When the hand leaves the region only
// InFrame is cleared; the geometry fields go stale and consumers must
// check the flag before trusting them.
type HandState struct {
	Top    image.Point
	Bottom image.Point
	Left   image.Point
	Right  image.Point

	// CenterX and PrevCenterX advance only at wave-sampling frames,
	// not every frame. See WaveDetector.
	CenterX     int
	PrevCenterX int

	InFrame     bool
	Waving      bool
	FingerCount int
	History     []int
}

// Upsert creates the state on first sight of a hand or refreshes the
// extremities in place. On creation CenterX starts at the current center;
// afterwards CenterX is deliberately left alone here — the wave detector
// updates it on its own coarser cadence.
func Upsert(h *HandState, top, bottom, left, right image.Point, centerX int) *HandState {
	if h == nil {
		h = &HandState{CenterX: centerX}
	}

	h.Top = top
	h.Bottom = bottom
	h.Left = left
	h.Right = right
	h.InFrame = true

	return h
}
