package gesture

// Smoother absorbs frame-to-frame flicker in the per-frame finger count
// by voting over a rolling window and publishing only the modal value.
type Smoother struct {
	window int
}

// NewSmoother creates a smoother that votes every window frames.
func NewSmoother(window int) *Smoother {
	return &Smoother{window: window}
}

// Push appends one per-frame count to the hand's history. When the
// window fills, the modal count becomes the published FingerCount and
// the history resets, so the next window starts empty. Between window
// boundaries the published count does not change.
func (s *Smoother) Push(h *HandState, count int) {
	h.History = append(h.History, count)
	if len(h.History) < s.window {
		return
	}

	h.FingerCount = modal(h.History)
	h.History = h.History[:0]
}

// modal returns the most frequent value in the history. Ties go to the
// value that first reaches the winning frequency scanning from the
// newest entry backward, so more recent observations win.
func modal(history []int) int {
	counts := make(map[int]int, len(history))

	best := 0
	bestN := 0
	for i := len(history) - 1; i >= 0; i-- {
		v := history[i]
		counts[v]++
		if counts[v] > bestN {
			best = v
			bestN = counts[v]
		}
	}

	return best
}
