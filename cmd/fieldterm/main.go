// Command fieldterm runs the particle field in a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"particle-field/engine"
	"particle-field/field"
	"particle-field/frame"
	"particle-field/term"
)

// setupLogging sends log output to path, or discards it so nothing is
// written over the terminal screen.
func setupLogging(path string) *os.File {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

func main() {
	configPath := flag.String("config", "", "YAML options file")
	presetPath := flag.String("preset", "", engine.PresetUsage())
	count := flag.Int("n", 0, "particle count, overrides options")
	fps := flag.Int("fps", 30, "frames per second")
	logPath := flag.String("log", "", "log file, discarded when empty")
	flag.Parse()

	opts, err := engine.LoadOptions(*configPath, *presetPath, *count)
	if err != nil {
		log.Fatal(err)
	}
	if *fps <= 0 {
		*fps = 30
	}

	if f := setupLogging(*logPath); f != nil {
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	if err := run(screen, opts.Settings(), opts.ParticleCount, time.Second/time.Duration(*fps)); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	screen.Fini()
}

// run drives the field until the user quits. Frames and resizes are handled
// on this goroutine only.
func run(screen tcell.Screen, settings field.Settings, count int, interval time.Duration) error {
	surface := term.New(screen)
	viewport := frame.NewViewport(term.PixelSize(screen.Size()))
	loop := frame.NewLoop()
	animator := field.NewAnimator(viewport, loop, settings)

	if err := animator.Initialize(surface, count); err != nil {
		return err
	}
	defer animator.Teardown()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if handleEvent(screen, viewport, ev) {
				return nil
			}
		case <-ticker.C:
			loop.Tick()
			screen.Show()
		}
	}
}

// handleEvent applies resizes and reports whether the user asked to quit
func handleEvent(screen tcell.Screen, viewport *frame.Viewport, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
		viewport.Resize(term.PixelSize(ev.Size()))
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return ev.Rune() == 'q'
		}
	}
	return false
}
