// Package config loads viewer and scene parameters from YAML, environment
// variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
)

const (
	keyEnv    = "GIZMO_ENV"
	envLocal  = "local"
	envPrefix = "GIZMO"
)

// ErrNoConfigFile is returned when no config.<env>.yaml is found.
var ErrNoConfigFile = errors.New("config file not found")

// Config wraps a viper instance with typed getters.
type Config struct {
	config *viper.Viper
}

// Load reads config/config.<env>.yaml, or path when it is not empty, and
// layers GIZMO_* environment variables on top. A missing file is not an
// error; defaults and the environment still apply.
func Load(env, path string) (*Config, error) {
	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(path) == 0 {
		found, err := getConfigPath(env)
		if err != nil {
			slog.Warn("no config file, using defaults and environment", "env", env, "err", err)
		}
		path = found
	}
	if len(path) > 0 {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return &Config{config: v}, nil
}

// Default returns a configuration holding only the built-in defaults.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{config: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "gizmo")

	v.SetDefault("render.backend", "terminal")
	v.SetDefault("render.fps", 30)
	v.SetDefault("render.background", "#1e1e28")
	v.SetDefault("render.output", "gizmo.png")

	v.SetDefault("scene", "polygon")

	v.SetDefault("polygon.sides", 5)
	v.SetDefault("polygon.radius", 1.0)
	v.SetDefault("polygon.density", 2)

	v.SetDefault("coil.turns", 4)
	v.SetDefault("coil.height", 2.0)
	v.SetDefault("coil.radius", 1.0)
	v.SetDefault("coil.points_per_turn", 24)

	v.SetDefault("torus.turns", 8)
	v.SetDefault("torus.radius", 2.0)
	v.SetDefault("torus.tube_height", 0.5)
	v.SetDefault("torus.points_per_turn", 24)

	v.SetDefault("curve.start_color", "#ff0000")
	v.SetDefault("curve.end_color", "#0000ff")

	v.SetDefault("reflection.max_bounces", 4)
	v.SetDefault("reflection.max_distance", 20.0)

	v.SetDefault("trigger.radius", 1.5)
	v.SetDefault("trigger.sensitivity", 0.9)

	v.SetDefault("mesh.model", "")
	v.SetDefault("mesh.primitive", "box")
	v.SetDefault("mesh.size", 1.0)
	v.SetDefault("mesh.resolution", 24)
}

// BindFlags binds every flag in fs to the key of the same name, so
// --polygon.sides=7 overrides polygon.sides.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	if err := c.config.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	return nil
}

// Set overrides a single key.
func (c *Config) Set(key string, value any) {
	c.config.Set(key, value)
}

// GetWindowWidth returns the window width in pixels.
func (c *Config) GetWindowWidth() int {
	return c.config.GetInt("window.width")
}

// GetWindowHeight returns the window height in pixels.
func (c *Config) GetWindowHeight() int {
	return c.config.GetInt("window.height")
}

// GetWindowTitle returns the window title.
func (c *Config) GetWindowTitle() string {
	return c.config.GetString("window.title")
}

// GetBackend returns the output backend: terminal, window or png.
func (c *Config) GetBackend() string {
	return c.config.GetString("render.backend")
}

// GetFPS returns the target frame rate.
func (c *Config) GetFPS() int {
	if fps := c.config.GetInt("render.fps"); fps > 0 {
		return fps
	}
	return 30
}

// GetOutput returns the PNG output path.
func (c *Config) GetOutput() string {
	return c.config.GetString("render.output")
}

// GetScene returns the scene to build.
func (c *Config) GetScene() string {
	return c.config.GetString("scene")
}

// GetBackground returns the clear color.
func (c *Config) GetBackground() (geometry.Color, error) {
	return c.GetColor("render.background")
}

// GetColor parses a "#rrggbb" value into an opaque color.
func (c *Config) GetColor(key string) (geometry.Color, error) {
	raw := c.config.GetString(key)
	col, err := colorful.Hex(raw)
	if err != nil {
		return geometry.Color{}, fmt.Errorf("parse color %s=%q: %w", key, raw, err)
	}
	return geometry.Color{R: col.R, G: col.G, B: col.B, A: 1}, nil
}

// GetPolygon returns the polygon scene parameters, clamped by geometry.NewPolygon.
func (c *Config) GetPolygon() geometry.Polygon {
	return geometry.NewPolygon(
		c.config.GetInt("polygon.sides"),
		c.config.GetFloat64("polygon.radius"),
		c.config.GetInt("polygon.density"),
		math3d.Vec2{},
	)
}

// GetCoil returns the coil scene parameters.
func (c *Config) GetCoil() geometry.CoilParams {
	return geometry.CoilParams{
		Turns:         c.config.GetInt("coil.turns"),
		Height:        c.config.GetFloat64("coil.height"),
		Radius:        c.config.GetFloat64("coil.radius"),
		PointsPerTurn: c.config.GetInt("coil.points_per_turn"),
	}
}

// GetTorus returns the torus scene parameters.
func (c *Config) GetTorus() geometry.TorusParams {
	return geometry.TorusParams{
		Turns:         c.config.GetInt("torus.turns"),
		Radius:        c.config.GetFloat64("torus.radius"),
		TubeHeight:    c.config.GetFloat64("torus.tube_height"),
		PointsPerTurn: c.config.GetInt("torus.points_per_turn"),
	}
}

// GetCurveColors returns the start and end colors of sampled curves.
func (c *Config) GetCurveColors() (start, end geometry.Color, err error) {
	if start, err = c.GetColor("curve.start_color"); err != nil {
		return start, end, err
	}
	end, err = c.GetColor("curve.end_color")
	return start, end, err
}

// GetMaxBounces returns the laser bounce limit.
func (c *Config) GetMaxBounces() int {
	return c.config.GetInt("reflection.max_bounces")
}

// GetMaxDistance returns the length of an escaping laser leg.
func (c *Config) GetMaxDistance() float64 {
	return c.config.GetFloat64("reflection.max_distance")
}

// GetTriggerRadius returns the radial trigger radius.
func (c *Config) GetTriggerRadius() float64 {
	return c.config.GetFloat64("trigger.radius")
}

// GetTriggerSensitivity returns the look trigger threshold.
func (c *Config) GetTriggerSensitivity() float64 {
	return c.config.GetFloat64("trigger.sensitivity")
}

// GetModelPath returns the mesh file to measure, empty for a primitive.
func (c *Config) GetModelPath() string {
	return c.config.GetString("mesh.model")
}

// GetPrimitive returns the fallback primitive name.
func (c *Config) GetPrimitive() string {
	return c.config.GetString("mesh.primitive")
}

// GetPrimitiveSize returns the fallback primitive size.
func (c *Config) GetPrimitiveSize() float64 {
	return c.config.GetFloat64("mesh.size")
}

// GetMeshResolution returns the marching cubes cell count for primitives.
func (c *Config) GetMeshResolution() int {
	return c.config.GetInt("mesh.resolution")
}

// getConfigPath walks up from the working directory looking for
// config/config.<env>.yaml.
func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		candidate := filepath.Join(currentDir, "config", configFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}

	return "", fmt.Errorf("%w: %s", ErrNoConfigFile, configFile)
}
