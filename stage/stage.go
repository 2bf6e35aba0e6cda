// Package stage hosts entities in a donburi world and drives them once per
// Ebitengine frame: every entity acts, the camera follows, then everything is
// drawn through a shared sprite batch.
package stage

import (
	"image/color"

	"github.com/automoto/tilestage/camera"
	"github.com/automoto/tilestage/components"
	"github.com/automoto/tilestage/config"
	"github.com/automoto/tilestage/fonts"
	"github.com/automoto/tilestage/logging"
	"github.com/automoto/tilestage/render"
	"github.com/automoto/tilestage/systems"
	"github.com/automoto/tilestage/systems/factory"
	"github.com/automoto/tilestage/tags"
	"github.com/automoto/tilestage/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type Stage struct {
	ecs    *ecs.ECS
	batch  *render.SpriteBatch
	camera *camera.Camera
	bounds *world.Bounds
	logger *zap.Logger

	entries map[components.Entity]*donburi.Entry
	next    int
	tiles   int

	dt  float64
	err error
}

// New creates an empty stage with a width x height main camera. World bounds
// start unset; a tile layer or WorldBounds().Set initializes them.
func New(width, height float64, logger *zap.Logger) *Stage {
	s := &Stage{
		camera:  camera.New(width, height),
		bounds:  &world.Bounds{},
		logger:  logging.OrNop(logger),
		entries: map[components.Entity]*donburi.Entry{},
	}
	s.camera.Zoom = config.Camera.Zoom
	s.camera.Update()
	s.batch = render.NewSpriteBatch(s.camera)

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(s.updateEntities)
	e.AddSystem(s.updateCamera)

	e.AddRenderer(config.LayerWorld, s.drawEntities)
	e.AddRenderer(config.LayerDebug, systems.DrawDebug)

	s.ecs = e

	factory.CreateCamera(e, s.camera)
	factory.CreateLevel(e, s.bounds)

	if err := fonts.LoadDefault(config.Debug.HUDFont); err != nil {
		s.logger.Warn("hud font unavailable", zap.Error(err))
	}

	s.logger.Info("stage created",
		zap.Float64("width", width),
		zap.Float64("height", height),
	)
	return s
}

// AddActor registers e. Entities act and draw in the order they were added.
func (s *Stage) AddActor(e components.Entity) {
	s.add(e)
}

// AddTileLayer registers e as a background layer measured from mapName.
// Layers should be added before actors so they draw underneath.
func (s *Stage) AddTileLayer(e components.Entity, mapName string) {
	if s.next > s.tiles {
		s.logger.Warn("tile layer added after actors, it will draw over them",
			zap.String("map", mapName),
		)
	}
	entry := s.add(e)
	if entry == nil {
		return
	}
	entry.AddComponent(tags.TileLayer)
	s.tiles++

	if levelEntry, ok := components.Level.First(s.ecs.World); ok {
		components.Level.Get(levelEntry).Map = mapName
	}
}

func (s *Stage) add(e components.Entity) *donburi.Entry {
	if _, ok := s.entries[e]; ok {
		s.logger.Warn("entity already on stage")
		return nil
	}
	entry := factory.CreateActor(s.ecs, e, s.next)
	s.entries[e] = entry
	s.next++
	return entry
}

// RemoveActor detaches e from the stage. It reports whether e was present.
func (s *Stage) RemoveActor(e components.Entity) bool {
	entry, ok := s.entries[e]
	if !ok {
		return false
	}
	delete(s.entries, e)
	s.ecs.World.Remove(entry.Entity())
	s.logger.Debug("actor removed", zap.Int("remaining", len(s.entries)))
	return true
}

// Follow makes the main camera track e. Passing an entity that is not on the
// stage stops following.
func (s *Stage) Follow(e components.Entity) {
	if current, ok := tags.CameraTarget.First(s.ecs.World); ok {
		current.RemoveComponent(tags.CameraTarget)
	}
	if entry, ok := s.entries[e]; ok {
		entry.AddComponent(tags.CameraTarget)
	}
}

// Actors returns the registered entities in insertion order.
func (s *Stage) Actors() []components.Entity {
	var out []components.Entity
	for _, a := range systems.Actors(s.ecs) {
		out = append(out, a.Entity)
	}
	return out
}

func (s *Stage) WorldBounds() *world.Bounds { return s.bounds }

func (s *Stage) Camera() *camera.Camera { return s.camera }

func (s *Stage) Batch() *render.SpriteBatch { return s.batch }

func (s *Stage) Logger() *zap.Logger { return s.logger }

// Act advances the stage by dt seconds and returns the first entity error.
func (s *Stage) Act(dt float64) error {
	s.dt = dt
	s.err = nil
	s.ecs.Update()
	return s.err
}

// Update advances one Ebitengine tick.
func (s *Stage) Update() error {
	return s.Act(1.0 / float64(ebiten.TPS()))
}

func (s *Stage) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.batch.SetTarget(screen)
	s.ecs.Draw(screen)
}

func (s *Stage) updateEntities(e *ecs.ECS) {
	if err := systems.UpdateEntities(e, s.dt); err != nil {
		s.err = err
	}
}

func (s *Stage) updateCamera(e *ecs.ECS) {
	if s.err != nil {
		return
	}
	systems.UpdateCamera(e, s.dt)
}

func (s *Stage) drawEntities(e *ecs.ECS, _ *ebiten.Image) {
	s.batch.Begin()
	systems.DrawEntities(e, s.batch)
	s.batch.End()
}
