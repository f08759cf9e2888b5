package pipeline

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/vision"
)

// ErrEmptyFrame is returned when Process receives a nil or empty frame.
var ErrEmptyFrame = errors.New("frame is empty")

// Result is the per-frame output handed to the caller for rendering.
type Result struct {
	Label       gesture.Label
	FingerCount int
	InFrame     bool
	Waving      bool
	Frame       int

	// Mask is the binary foreground mask when Config.KeepMask is set,
	// nil otherwise.
	Mask *gocv.Mat
}

// Close releases the debug mask, if any.
func (r *Result) Close() {
	if r.Mask != nil {
		r.Mask.Close()
		r.Mask = nil
	}
}

// Pipeline is the explicit per-session context: it owns the background
// model, the lazily created hand state, and the frame counter, and runs
// the stages in order for one frame at a time. It is strictly
// single-threaded; one frame is fully processed before the next, so
// frame N's effects on the model and hand state are visible to frame
// N+1 without any locking.
type Pipeline struct {
	cfg        Config
	region     *vision.RegionExtractor
	background *vision.BackgroundModel
	segmenter  *vision.Segmenter
	wave       *gesture.WaveDetector
	fingers    *gesture.FingerCounter
	smoother   *gesture.Smoother

	hand       *gesture.HandState
	frameCount int
}

// New validates the configuration and builds a pipeline. Configuration
// errors are the only hard failures in the package; every per-frame
// anomaly after this point degrades to a valid output instead.
func New(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}

	region, err := vision.NewRegionExtractor(cfg.FrameWidth, cfg.FrameHeight, cfg.Region, cfg.BlurKernel)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:        cfg,
		region:     region,
		background: vision.NewBackgroundModel(cfg.BackgroundWeight),
		segmenter:  vision.NewSegmenter(cfg.DiffThreshold),
		wave:       gesture.NewWaveDetector(cfg.WaveInterval, cfg.WaveDisplacement),
		fingers:    gesture.NewFingerCounter(cfg.MinFingerWidth, cfg.MaxFingerRatio),
		smoother:   gesture.NewSmoother(cfg.SmoothingWindow),
	}, nil
}

// Process runs one frame through the pipeline and returns its gesture
// classification. During calibration the frame only feeds the background
// model. After calibration the model is frozen and drives segmentation,
// geometry extraction, and the wave and finger classifiers.
func (p *Pipeline) Process(frame *gocv.Mat) (Result, error) {
	if frame == nil || frame.Empty() {
		return Result{}, ErrEmptyFrame
	}

	current := p.frameCount
	p.frameCount++

	region := p.region.Extract(frame)
	defer region.Close()

	res := Result{Frame: current}

	if current < p.cfg.CalibrationFrames {
		p.background.Accumulate(&region)
		res.Label = gesture.LabelCalibrating
		return res, nil
	}

	seg, found := p.segmenter.Apply(&region, p.background)
	if !found {
		return p.absent(res, current), nil
	}

	geom, ok := vision.ExtractGeometry(seg.Contour)
	if !ok {
		seg.Close()
		return p.absent(res, current), nil
	}

	p.hand = gesture.Upsert(p.hand, geom.Top, geom.Bottom, geom.Left, geom.Right, geom.CenterX)
	p.wave.Observe(p.hand, current, geom.CenterX)
	p.smoother.Push(p.hand, p.fingers.Count(&seg.Mask, p.hand))

	res.InFrame = true
	res.Waving = p.hand.Waving
	res.FingerCount = p.hand.FingerCount
	res.Label = gesture.Classify(current, p.cfg.CalibrationFrames, p.hand)

	if p.cfg.KeepMask {
		mask := seg.Mask
		res.Mask = &mask
	} else {
		seg.Close()
	}

	return res, nil
}

// absent clears the in-frame flag without discarding the stale hand
// state, and classifies the frame as hand-less.
func (p *Pipeline) absent(res Result, frame int) Result {
	if p.hand != nil {
		p.hand.InFrame = false
	}
	res.Label = gesture.Classify(frame, p.cfg.CalibrationFrames, p.hand)
	return res
}

// Frame returns the number of frames processed so far.
func (p *Pipeline) Frame() int {
	return p.frameCount
}

// Hand returns the current hand state, or nil if no hand has ever been
// segmented. Callers must treat it as read-only.
func (p *Pipeline) Hand() *gesture.HandState {
	return p.hand
}

// Calibrated reports whether the background model is frozen.
func (p *Pipeline) Calibrated() bool {
	return p.frameCount >= p.cfg.CalibrationFrames
}

// Close releases the background model buffer.
func (p *Pipeline) Close() {
	p.background.Close()
}
