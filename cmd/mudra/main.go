package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/pipeline"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	var (
		addr     = flag.String("addr", ":8080", "HTTP listen address")
		cameraID = flag.Int("camera", 0, "camera device ID")
		compact  = flag.Bool("compact", false, "use the compact region preset")
		debug    = flag.Bool("debug", false, "expose the foreground mask stream")
		noTray   = flag.Bool("no-tray", false, "run headless without the system tray")
	)
	flag.Parse()

	fmt.Println("Mudra - Touchless Gesture Control")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dbDir, "mudra.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	cfg := pipeline.DefaultConfig()
	if *compact {
		cfg = pipeline.CompactPreset()
	}
	cfg.KeepMask = *debug

	application, err := app.New(app.Config{
		Store:    st,
		CameraID: *cameraID,
		Pipeline: cfg,
	})
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := application.Start(); err != nil {
		log.Fatalf("Failed to start detection: %v", err)
	}
	defer application.Stop()

	srv := server.New(server.Config{
		StaticDir: findWebDir(),
		Store:     st,
		App:       application,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", *addr)
		if err := srv.ListenAndServe(*addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if *noTray {
		select {}
	}

	t := tray.New()
	t.OnToggle(application.SetEnabled)
	t.OnQuit(application.Stop)

	// Mirror the current gesture into the tray menu.
	go func() {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			res := application.CurrentResult()
			if res.Label == gesture.Label("") {
				continue
			}
			t.SetGesture(res.Label.String())
		}
	}()

	t.Run()
}

// findWebDir searches for the web directory in common locations.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
