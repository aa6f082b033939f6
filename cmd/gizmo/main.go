// gizmo - vector math exercises drawn as gizmos.
// Renders one scene to the terminal, a desktop window, or a PNG file.
//
// Terminal controls:
//
//	A/D or ←/→  - Orbit left/right
//	W/S or ↑/↓  - Orbit up/down
//	+/-         - Zoom
//	Space       - Toggle auto-rotate
//	R           - Reset view
//	Esc         - Quit
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/taigrr/gizmo/pkg/config"
	"github.com/taigrr/gizmo/pkg/logger"
	"github.com/taigrr/gizmo/pkg/render"
	"github.com/taigrr/gizmo/pkg/scenes"
	"github.com/taigrr/gizmo/pkg/window"
)

func main() {
	fs := pflag.NewFlagSet("gizmo", pflag.ExitOnError)
	env := fs.String("env", "", "config environment (reads config/config.<env>.yaml)")
	configPath := fs.String("config", "", "explicit config file")
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	list := fs.Bool("list", false, "list scenes and exit")

	fs.String("scene", "polygon", "scene to draw")
	fs.String("render.backend", "terminal", "output: terminal, window, or png")
	fs.String("render.output", "gizmo.png", "PNG path for the png backend")
	fs.Int("render.fps", 30, "target frames per second")
	fs.Int("polygon.sides", 5, "polygon side count")
	fs.Int("polygon.density", 2, "polygon star density")
	fs.Int("coil.turns", 4, "coil turns")
	fs.Int("torus.turns", 8, "torus turns")
	fs.String("mesh.model", "", "glTF/GLB model for the mesharea scene")
	fs.String("mesh.primitive", "box", "primitive when no model is given: box or sphere")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "gizmo - vector math gizmos\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gizmo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nScenes: %v\n", scenes.Names())
	}
	_ = fs.Parse(os.Args[1:])

	if *list {
		for _, name := range scenes.Names() {
			fmt.Println(name)
		}
		return
	}

	log := logger.New(*logLevel)
	if err := run(log, *env, *configPath, fs); err != nil {
		log.Error("gizmo failed", "err", err)
		os.Exit(1)
	}
}

func run(log logger.Logger, env, configPath string, fs *pflag.FlagSet) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.BindFlags(fs); err != nil {
		return err
	}

	name := cfg.GetScene()
	scene, err := scenes.New(name, cfg)
	if err != nil {
		return err
	}
	drawList, err := scene.Build()
	if err != nil {
		return fmt.Errorf("build %s: %w", name, err)
	}
	log.Info("scene built", "scene", name, "commands", drawList.Len())

	switch backend := cfg.GetBackend(); backend {
	case "terminal":
		return runTerminal(cfg, log, drawList)
	case "window":
		viewer, err := window.NewViewer(cfg, log, drawList)
		if err != nil {
			return err
		}
		return viewer.Run()
	case "png":
		return savePNG(cfg, log, drawList)
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}
}

func savePNG(cfg *config.Config, log logger.Logger, drawList *render.DrawList) error {
	bg, err := cfg.GetBackground()
	if err != nil {
		return err
	}

	width, height := cfg.GetWindowWidth(), cfg.GetWindowHeight()
	fb := render.NewFramebuffer(width, height)
	camera := render.NewCamera()
	camera.SetAspectRatio(float64(width) / float64(height))
	if lo, hi, ok := drawList.Bounds(); ok {
		camera.Frame(lo, hi, defaultYaw, defaultPitch)
	}

	gizmos := render.NewGizmos(camera, fb)
	gizmos.Begin(render.ToRGBA(bg))
	drawList.Replay(gizmos)

	out := cfg.GetOutput()
	if err := fb.SavePNG(out); err != nil {
		return err
	}
	log.Info("wrote png", "path", out, "width", width, "height", height, "labels", len(gizmos.Labels()))
	return nil
}
