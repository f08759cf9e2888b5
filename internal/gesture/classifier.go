package gesture

// Classify maps calibration progress and hand state to a single label.
// Waving outranks the finger-count labels because a moving hand's finger
// silhouette is unreliable. Pure function, no side effects; called once
// per frame to produce a label for the renderer.
func Classify(frame, calibrationFrames int, h *HandState) Label {
	switch {
	case frame < calibrationFrames:
		return LabelCalibrating
	case h == nil || !h.InFrame:
		return LabelNoHand
	case h.Waving:
		return LabelWaving
	}

	switch h.FingerCount {
	case 0:
		return LabelRock
	case 1:
		return LabelPointing
	case 2:
		return LabelScissors
	default:
		return LabelUnknown
	}
}
