package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/gizmo/pkg/config"
	"github.com/taigrr/gizmo/pkg/logger"
	"github.com/taigrr/gizmo/pkg/math3d"
	"github.com/taigrr/gizmo/pkg/render"
)

const (
	impulseStrength = 0.02
	autoSpin        = 0.004
)

func runTerminal(cfg *config.Config, log logger.Logger, drawList *render.DrawList) error {
	bg, err := cfg.GetBackground()
	if err != nil {
		return err
	}
	background := render.ToRGBA(bg)
	fps := cfg.GetFPS()

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	camera := render.NewCamera()
	camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
	gizmos := render.NewGizmos(camera, fb)

	target := math3d.Zero3()
	baseDistance := 6.0
	if lo, hi, ok := drawList.Bounds(); ok {
		target = lo.Add(hi).Scale(0.5)
		baseDistance = math.Max(hi.Sub(lo).Len()/2, 0.5) / math.Sin(camera.FOV/2)
	}
	zoom := 1.0

	orbit := NewOrbitState(fps)
	spinning := true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	events := term.Events()
	targetDuration := time.Second / time.Duration(fps)

	for {
		now := time.Now()

	drain:
		for {
			select {
			case <-ctx.Done():
				cleanup()
				return nil
			case ev := <-events:
				switch ev := ev.(type) {
				case uv.WindowSizeEvent:
					width, height = ev.Width, ev.Height
					term.Erase()
					term.Resize(width, height)
					termRenderer = render.NewTerminalRenderer(term, width, height)
					fbWidth, fbHeight = termRenderer.FramebufferSize()
					fb.Resize(fbWidth, fbHeight)
					camera.SetAspectRatio(float64(fbWidth) / float64(max(fbHeight, 1)))
					log.Debug("terminal resized", "width", width, "height", height)

				case uv.KeyPressEvent:
					switch {
					case ev.MatchString("escape", "ctrl+c", "q"):
						cancel()
					case ev.MatchString("a", "left"):
						orbit.ApplyImpulse(-impulseStrength, 0)
					case ev.MatchString("d", "right"):
						orbit.ApplyImpulse(impulseStrength, 0)
					case ev.MatchString("w", "up"):
						orbit.ApplyImpulse(0, impulseStrength)
					case ev.MatchString("s", "down"):
						orbit.ApplyImpulse(0, -impulseStrength)
					case ev.MatchString("+", "="):
						zoom = math.Max(0.2, zoom*0.9)
					case ev.MatchString("-", "_"):
						zoom = math.Min(5, zoom/0.9)
					case ev.MatchString("space"):
						spinning = !spinning
					case ev.MatchString("r"):
						orbit.Reset()
						zoom = 1
					}
				}
			default:
				break drain
			}
		}

		if spinning {
			orbit.Yaw.Position += autoSpin
		}
		orbit.Update()
		camera.Orbit(target, baseDistance*zoom, orbit.Yaw.Position, orbit.Pitch.Position)

		gizmos.Begin(background)
		drawList.Replay(gizmos)

		termRenderer.Render(fb, gizmos.Labels())
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
