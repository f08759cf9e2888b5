package app

import (
	"log"
	"time"

	"github.com/ayusman/mudra/internal/gesture"
)

// runLoop is the synchronous frame loop: one frame fully processed
// before the next is requested. The pipeline itself has no concurrency;
// this goroutine is the only writer of its state.
func (a *App) runLoop(stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	interval := time.Second / time.Duration(a.config.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastLabel := gesture.Label("")

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			if !a.IsEnabled() {
				frame.Close()
				continue
			}

			res, err := a.pipe.Process(frame)
			frame.Close()
			if err != nil {
				log.Printf("Error processing frame: %v", err)
				continue
			}

			a.mu.Lock()
			a.last = res
			a.last.Mask = nil // the mask is owned below, not by the snapshot
			if res.Mask != nil {
				if a.lastMask != nil {
					a.lastMask.Close()
				}
				clone := res.Mask.Clone()
				a.lastMask = &clone
			}
			a.mu.Unlock()

			if res.Label != lastLabel {
				lastLabel = res.Label
				a.recordTransition(res)
			}

			res.Close()
		}
	}
}
