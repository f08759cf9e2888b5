// Package app provides the main application logic for the Mudra gesture
// pipeline: it owns the camera loop, the pipeline instance, and the
// session recording.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/action"
	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/pipeline"
	"github.com/ayusman/mudra/internal/store"
)

// Loop timing constants.
const (
	// DefaultFPS is the frame rate of the processing loop.
	DefaultFPS = 15
	// ActionTimeout bounds a bound command's execution.
	ActionTimeout = 5 * time.Second
	// ActionCooldown is the minimum gap between two runs of the same
	// label's action.
	ActionCooldown = 2 * time.Second
)

// Config holds configuration options for the application.
type Config struct {
	Store    *store.Store
	CameraID int
	FPS      int
	Pipeline pipeline.Config
}

// App orchestrates frame capture, the gesture pipeline, event recording,
// and action execution.
type App struct {
	config Config
	camera capture.Camera
	pipe   *pipeline.Pipeline
	runner *action.Runner

	enabled   bool
	sessionID string
	last      pipeline.Result
	lastMask  *gocv.Mat
	mu        sync.RWMutex
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// New creates a new App instance. The pipeline configuration is
// validated here; a bad configuration is a startup error.
func New(config Config) (*App, error) {
	if config.FPS <= 0 {
		config.FPS = DefaultFPS
	}

	pipe, err := pipeline.New(config.Pipeline)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  config,
		camera:  capture.NewCamera(config.CameraID, config.Pipeline.FrameWidth, config.Pipeline.FrameHeight),
		pipe:    pipe,
		runner:  action.NewRunner(ActionTimeout, ActionCooldown),
		enabled: true,
	}, nil
}

// SetCamera replaces the frame source. Used by tests to feed recorded
// or synthetic frames.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetEnabled enables or disables gesture detection. Frames are still
// read while disabled so the camera buffer does not go stale, but the
// pipeline is not advanced.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// CurrentResult returns the most recent pipeline output. The debug mask
// is never retained here.
func (a *App) CurrentResult() pipeline.Result {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.last
}

// DebugMask returns a copy of the most recent foreground mask, or false
// when the pipeline is not configured to keep masks or none exists yet.
// The caller closes the returned Mat.
func (a *App) DebugMask() (*gocv.Mat, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.lastMask == nil || a.lastMask.Empty() {
		return nil, false
	}

	clone := a.lastMask.Clone()
	return &clone, true
}

// SessionID returns the ID of the running session, or "" before Start.
func (a *App) SessionID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.sessionID
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Start opens the camera, records a new session, and begins the
// processing loop.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.sessionID = uuid.NewString()
	if a.config.Store != nil {
		if err := a.config.Store.Sessions().Create(&store.Session{ID: a.sessionID}); err != nil {
			log.Printf("Failed to record session: %v", err)
		}
	}

	a.stopCh = make(chan struct{})
	a.doneCh = make(chan struct{})
	go a.runLoop(a.stopCh, a.doneCh)

	log.Println("Detection loop started")
	return nil
}

// Stop halts the processing loop and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	stopCh, doneCh := a.stopCh, a.doneCh
	a.stopCh = nil
	a.doneCh = nil
	a.mu.Unlock()

	if stopCh == nil {
		return
	}

	close(stopCh)
	<-doneCh

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.pipe.Close()

	a.mu.Lock()
	if a.lastMask != nil {
		a.lastMask.Close()
		a.lastMask = nil
	}
	a.mu.Unlock()

	if a.config.Store != nil && a.sessionID != "" {
		if err := a.config.Store.Sessions().End(a.sessionID); err != nil {
			log.Printf("Failed to end session: %v", err)
		}
	}

	log.Println("Detection loop stopped")
}

// recordTransition persists a label change and fires any bound action.
func (a *App) recordTransition(res pipeline.Result) {
	log.Printf("Gesture: %s (fingers: %d, frame: %d)", res.Label, res.FingerCount, res.Frame)

	if a.config.Store == nil {
		return
	}

	event := &store.Event{
		SessionID:   a.sessionID,
		Frame:       res.Frame,
		Label:       string(res.Label),
		FingerCount: res.FingerCount,
	}
	if err := a.config.Store.Events().Create(event); err != nil {
		log.Printf("Failed to record event: %v", err)
	}

	a.executeBinding(res.Label)
}

// executeBinding looks up the enabled binding for a label and runs it.
func (a *App) executeBinding(label gesture.Label) {
	binding, err := a.config.Store.Bindings().GetByLabel(string(label))
	if err != nil {
		log.Printf("Failed to look up binding for %s: %v", label, err)
		return
	}
	if binding == nil {
		return
	}

	ran, out, err := a.runner.Run(string(label), binding.Command)
	if err != nil {
		log.Printf("Action for %s failed: %v", label, err)
		return
	}
	if ran && out != "" {
		log.Printf("Action for %s: %s", label, out)
	}
}
