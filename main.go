package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/automoto/tilestage/actor"
	"github.com/automoto/tilestage/assets"
	"github.com/automoto/tilestage/config"
	"github.com/automoto/tilestage/logging"
	"github.com/automoto/tilestage/stage"
	"github.com/automoto/tilestage/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Game struct {
	stage *stage.Stage
	hero  *actor.Actor

	heading float64
	turnIn  float64
}

func NewGame(logger *zap.Logger) (*Game, error) {
	s := stage.New(float64(config.C.Width), float64(config.C.Height), logger)
	loader := assets.NewLoader(assets.Files)

	// The tile layer goes first so it draws underneath the actors.
	if _, err := tilemap.New(assets.Files, config.Level, s); err != nil {
		return nil, err
	}

	hero := actor.New(0, 0, s)
	hero.SetAnimation(loader.MustLoadAnimation("hero", config.Animation.FrameDuration))
	w, h, _ := s.WorldBounds().Size()
	hero.CenterAtPosition(w/2, h/2)

	coin := actor.New(0, 0, s)
	coin.SetAnimation(loader.MustLoadAnimation("coin", config.Animation.CoinDuration))
	coin.CenterAtPosition(w/2+96, h/2-64)

	s.Follow(hero)
	center := hero.Center()
	s.Camera().PanTo(center.X, center.Y, config.Camera.PanDuration)

	return &Game{
		stage:   s,
		hero:    hero,
		heading: rand.Float64() * 360,
		turnIn:  config.Actor.WanderTurnInterval,
	}, nil
}

func (g *Game) Update() error {
	g.wander(1.0 / float64(ebiten.TPS()))
	return g.stage.Update()
}

// wander keeps the hero walking, picking a new heading every few seconds.
func (g *Game) wander(dt float64) {
	g.turnIn -= dt
	if g.turnIn <= 0 {
		g.turnIn = config.Actor.WanderTurnInterval
		g.heading += (rand.Float64()*2 - 1) * config.Actor.WanderTurnDegrees
	}
	g.hero.AccelerateAtAngle(g.heading)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", os.Getenv("TILESTAGE_CONFIG"), "YAML or TOML config overrides")
	showBounds := flag.Bool("bounds", false, "Outline world and actor bounds")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *showBounds {
		config.Debug.ShowBounds = true
	}

	logger, err := logging.New(config.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("tilestage")
	ebiten.SetTPS(config.C.TPS)

	game, err := NewGame(logger)
	if err != nil {
		logger.Fatal("failed to build stage", zap.Error(err))
	}

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game stopped", zap.Error(err))
	}
}
