package app

import (
	"path/filepath"
	"testing"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/pipeline"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/testdata"
)

func TestNew_InvalidPipelineConfig(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	cfg.SmoothingWindow = 0

	if _, err := New(Config{Pipeline: cfg}); err == nil {
		t.Error("New() accepted an invalid pipeline config")
	}
}

func TestSetEnabled(t *testing.T) {
	a, err := New(Config{Pipeline: pipeline.DefaultConfig()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if !a.IsEnabled() {
		t.Error("detection should start enabled")
	}
	a.SetEnabled(false)
	if a.IsEnabled() {
		t.Error("SetEnabled(false) did not stick")
	}
}

// rockSequence is a calibration window followed by a steady fist, padded
// long enough that the loop cannot run dry before the vote closes.
func rockSequence(cfg pipeline.Config) ([]*gocv.Mat, func()) {
	frames := testdata.CalibrationFrames(cfg.FrameWidth, cfg.FrameHeight, cfg.CalibrationFrames, 80)
	fist := testdata.FistFrame(cfg.FrameWidth, cfg.FrameHeight, cfg.Region, 80)
	for i := 0; i < 200; i++ {
		frames = append(frames, fist)
	}

	return frames, func() {
		testdata.CloseFrames(frames[:cfg.CalibrationFrames])
		fist.Close()
	}
}

func TestApp_RecordsRockSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV")
	}

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	cfg := pipeline.DefaultConfig()
	a, err := New(Config{Store: s, FPS: 200, Pipeline: cfg})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	frames, cleanup := rockSequence(cfg)
	defer cleanup()
	a.SetCamera(capture.NewMockCamera(frames, false))

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	sessionID := a.SessionID()
	if sessionID == "" {
		t.Fatal("Start() did not assign a session ID")
	}

	// Wait for the pipeline to settle on the fist.
	deadline := time.Now().Add(10 * time.Second)
	for a.CurrentResult().Label != gesture.LabelRock {
		if time.Now().After(deadline) {
			t.Fatalf("pipeline never reported rock; last = %+v", a.CurrentResult())
		}
		time.Sleep(20 * time.Millisecond)
	}

	a.Stop()

	// The session is recorded and closed.
	sess, err := s.Sessions().GetByID(sessionID)
	if err != nil {
		t.Fatalf("GetByID(session) error = %v", err)
	}
	if sess.EndedAt == nil {
		t.Error("Stop() did not end the session")
	}

	// Only label transitions are persisted, in frame order.
	events, err := s.Events().ListBySession(sessionID)
	if err != nil {
		t.Fatalf("ListBySession() error = %v", err)
	}
	if len(events) < 2 {
		t.Fatalf("got %d events, want at least calibrating and rock", len(events))
	}
	if events[0].Label != string(gesture.LabelCalibrating) {
		t.Errorf("first event label = %q, want %q", events[0].Label, gesture.LabelCalibrating)
	}

	sawRock := false
	for _, e := range events {
		if e.Label == string(gesture.LabelRock) {
			sawRock = true
		}
	}
	if !sawRock {
		t.Error("no rock transition recorded")
	}
}

func TestApp_DisabledSkipsProcessing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV")
	}

	cfg := pipeline.DefaultConfig()
	a, err := New(Config{FPS: 200, Pipeline: cfg})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	frames, cleanup := rockSequence(cfg)
	defer cleanup()
	a.SetCamera(capture.NewMockCamera(frames, true))

	a.SetEnabled(false)
	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer a.Stop()

	time.Sleep(200 * time.Millisecond)

	if res := a.CurrentResult(); res.Label != "" {
		t.Errorf("disabled app still produced results: %+v", res)
	}
}
