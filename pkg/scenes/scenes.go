// Package scenes turns each exercise into a draw list. Scenes receive every
// input up front and never look anything up while building.
package scenes

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/taigrr/gizmo/pkg/config"
	"github.com/taigrr/gizmo/pkg/render"
)

// ErrUnknownScene is returned by New for unregistered names.
var ErrUnknownScene = errors.New("unknown scene")

// Scene builds the gizmos for one exercise.
type Scene interface {
	Name() string
	Build() (*render.DrawList, error)
}

// Constructor creates a scene from configuration.
type Constructor func(cfg *config.Config) (Scene, error)

var registry = map[string]Constructor{
	"projection": NewProjectionFromConfig,
	"reflection": NewReflectionFromConfig,
	"mesharea":   NewMeshAreaFromConfig,
	"polygon":    NewPolygonFromConfig,
	"coil":       NewCoilFromConfig,
	"torus":      NewTorusFromConfig,
	"turret":     NewTurretFromConfig,
	"triggers":   NewTriggersFromConfig,
	"fov":        NewFOVFromConfig,
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}

// New creates the named scene.
func New(name string, cfg *config.Config) (Scene, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownScene, name, Names())
	}
	scene, err := ctor(cfg)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", name, err)
	}
	return scene, nil
}
