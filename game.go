package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/robomaze/config"
	"github.com/zucenko/robomaze/model"
	"github.com/zucenko/robomaze/render"
	"github.com/zucenko/robomaze/script"
	"golang.org/x/image/font"
)

const (
	statusHeight = 30
	stepDuration = 0.25
	tickDelta    = 0.02
)

type GameState int

const (
	IDLE GameState = iota + 1
	ACTING
	PLAYING
)

func (s GameState) Name() string {
	switch s {
	case IDLE:
		return "IDLE"
	case ACTING:
		return "ACTING"
	case PLAYING:
		return "PLAYING"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// arrow keys in the order they are checked; the first pressed one wins
var arrowKeys = []struct {
	key ebiten.Key
	dir model.Direction
}{
	{ebiten.KeyDown, model.Forward},
	{ebiten.KeyUp, model.Back},
	{ebiten.KeyRight, model.Right},
	{ebiten.KeyLeft, model.Left},
}

// Game shows one robot in its maze. Steps come from the arrow keys or from
// a script queue, one committed step per tween.
type Game struct {
	State  GameState
	Robot  *model.Robot
	Diver  *model.UnderwaterRobot
	Unit   int
	Queue  *script.Queue
	Report script.Report
	Tweens map[*gween.Tween]*Animation
	Font   font.Face

	offsetX, offsetY float64
}

func NewGame(cfg *config.Config, s *script.Script) (*Game, error) {
	face, err := loadFont(18)
	if err != nil {
		return nil, err
	}
	r, u := cfg.NewRobot()
	g := &Game{
		State:  IDLE,
		Robot:  r,
		Diver:  u,
		Unit:   cfg.UnitSize,
		Tweens: make(map[*gween.Tween]*Animation),
		Font:   face,
		Report: script.NewReport(),
	}
	if s != nil {
		g.Queue = script.NewQueue(s)
		g.State = PLAYING
	}
	return g, nil
}

func (g *Game) target() script.Target {
	if g.Diver != nil {
		return g.Diver
	}
	return g.Robot
}

func (g *Game) observed() render.Observable {
	if g.Diver != nil {
		return g.Diver
	}
	return g.Robot
}

// act applies a and starts the tween that shows its effect.
func (g *Game) act(a script.Action) error {
	prevRow, prevCol := g.Robot.Row(), g.Robot.Column()
	prevDepth := 0
	if g.Diver != nil {
		prevDepth = g.Diver.Depth()
	}
	if err := a.Apply(g.target(), &g.Report); err != nil {
		return err
	}

	if prevRow != g.Robot.Row() || prevCol != g.Robot.Column() {
		dx := float64((prevCol - g.Robot.Column()) * g.Unit)
		dy := float64((prevRow - g.Robot.Row()) * g.Unit)
		slide := g.start(gween.New(1, 0, stepDuration, ease.OutQuad), func(v float32) {
			g.offsetX, g.offsetY = dx*float64(v), dy*float64(v)
		})
		slide.addOnFinish(g.settle)
	}
	if g.Diver != nil && prevDepth != g.Diver.Depth() {
		bob := float64(g.Unit) / 10
		if g.Diver.Depth() < prevDepth {
			bob = -bob
		}
		onChange := func(v float32) {
			g.offsetY = bob * float64(v)
		}
		down := g.start(gween.New(0, 1, stepDuration/2, ease.OutQuad), onChange)
		up := down.next(gween.New(1, 0, stepDuration/2, ease.InQuad))
		up.onChange = onChange
		up.addOnFinish(g.settle)
	}
	return nil
}

// start runs t, calling onChange with its value on every tick.
func (g *Game) start(t *gween.Tween, onChange func(float32)) *Animation {
	if g.State == IDLE {
		g.State = ACTING
	}
	a := &Animation{onChange: onChange}
	g.Tweens[t] = a
	return a
}

func (g *Game) settle() {
	g.offsetX, g.offsetY = 0, 0
	if g.State == ACTING {
		g.State = IDLE
	}
}

func (g *Game) handleInput() {
	if g.State != IDLE {
		return
	}
	var a *script.Action
	for _, k := range arrowKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			a = &script.Action{Kind: script.KindMove, Dir: k.dir, Steps: 1}
			break
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a = &script.Action{Kind: script.KindRecharge}
	case g.Diver != nil && inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		a = &script.Action{Kind: script.KindDive, Squares: 1}
	case g.Diver != nil && inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		a = &script.Action{Kind: script.KindDive, Squares: -1}
	}
	if a == nil {
		return
	}
	if err := g.act(*a); err != nil {
		log.Warnf("%v", err)
	}
}

// play feeds the next queued action once nothing is animating.
func (g *Game) play() {
	if g.State != PLAYING || len(g.Tweens) > 0 {
		return
	}
	a, ok := g.Queue.Next()
	if !ok {
		log.WithFields(log.Fields{
			"moved":    g.Report.Moved,
			"rejected": g.Report.Rejections(),
		}).Info("script finished")
		g.State = IDLE
		return
	}
	if err := g.act(a); err != nil {
		log.Errorf("script stopped: %v", err)
		g.Queue.Clear()
		g.State = IDLE
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	g.tick(tickDelta)
	g.play()
	g.handleInput()

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	f := render.NewFrame(g.observed(), g.Unit).Shift(g.offsetX, g.offsetY)
	e := screen.Fill(f.Background)
	if e != nil {
		log.Printf("%v", e)
	}
	for _, o := range f.Obstacles {
		ebitenutil.DrawRect(screen, o.X, o.Y, o.W, o.H, o.Color)
	}
	for _, l := range f.Grid {
		ebitenutil.DrawLine(screen, l.X1, l.Y1, l.X2, l.Y2, render.ColorLine)
	}
	ebitenutil.DrawRect(screen, f.Body.X, f.Body.Y, f.Body.W, f.Body.H, f.Body.Color)
	for _, eye := range f.Eyes {
		ebitenutil.DrawRect(screen, eye.X, eye.Y, eye.W, eye.H, eye.Color)
	}

	text.Draw(screen, f.Status, g.Font, 5, f.Size+statusHeight-8, color.Black)
	ebitenutil.DebugPrintAt(screen, g.State.Name(), f.Size-80, f.Size+8)
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	var s *script.Script
	if cfg.Script != "" {
		if s, err = script.ParseFile(cfg.Script); err != nil {
			log.Fatal(err)
		}
	}
	g, err := NewGame(cfg, s)
	if err != nil {
		log.Fatal(err)
	}

	size := cfg.UnitSize * model.Size
	title := render.NewFrame(g.observed(), g.Unit).Title
	if err := ebiten.Run(g.update, size, size+statusHeight, 1, title); err != nil {
		log.Fatal(err)
	}
}
