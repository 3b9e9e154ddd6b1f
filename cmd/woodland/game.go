package main

import (
	"fmt"
	"log"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/woodland/audio"
	"github.com/plus3/woodland/config"
	"github.com/plus3/woodland/ecs"
	"github.com/plus3/woodland/ecs/debugui"
	debugui_ebiten "github.com/plus3/woodland/ecs/debugui/ebiten"
	"github.com/plus3/woodland/sim"
	"github.com/plus3/woodland/sprite"
)

type GameOptions struct {
	Config   config.Config
	Seed     uint64
	Sim      *sim.Simulation
	Catalog  *sprite.Catalog
	Textures *Textures
	Player   *audio.Player
	Backend  *debugui_ebiten.ImguiBackend
}

// Game is the ebiten host. Updates run the host scheduler (hotkeys, one
// simulation frame, debug windows); draws run the render scheduler.
type Game struct {
	GameOptions

	update   *ecs.Scheduler[*Game]
	render   *ecs.Scheduler[*Game]
	ui       *debugui.ImguiSystem[*Game]
	screen   *ebiten.Image
	elapsed  float64
	reloaded int
}

func NewGame(opts GameOptions) *Game {
	g := &Game{
		GameOptions: opts,
		update:      ecs.NewScheduler[*Game](),
		render:      ecs.NewScheduler[*Game](),
	}

	entities := opts.Sim.World.Entities
	g.ui = &debugui.ImguiSystem[*Game]{Hidden: true}
	g.ui.Items = append(debugui.StandardWindows(entities, opts.Sim.Stats),
		debugui.ImguiItem{Render: g.renderOverview})

	g.update.Register(&HotkeySystem{})
	g.update.Register(&SimulationSystem{})
	g.update.Register(g.ui)
	g.render.Register(&RenderSystem{})

	return g
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.Backend.Frame(func() {
		g.update.Once(g, 1.0/float64(ebiten.TPS()))
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen = screen
	g.render.Once(g, 0)
	g.Backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Layout(outsideWidth, outsideHeight)
	cfg := g.Sim.World.Config
	return int(cfg.ScreenWidth), int(cfg.ScreenHeight)
}

// reload re-reads sprite metadata and textures. A failed reload keeps the
// previous assets.
func (g *Game) reload() {
	dir := g.Config.SpritesDir()
	var textures *Textures
	err := g.Catalog.ReloadWith(dir, func() (func(), error) {
		loaded, err := LoadTextures(dir)
		if err != nil {
			return nil, err
		}
		textures = loaded
		return loaded.Deallocate, nil
	})
	if err != nil {
		log.Printf("Failed to reload assets: %v", err)
		g.play(sim.SoundCant)
		return
	}

	g.Textures.Replace(textures)
	g.reloaded++
	log.Println("Reloaded assets")
	g.play(sim.SoundConfirm)
}

func (g *Game) play(effect sim.SoundEffect) {
	if g.Player != nil {
		g.Player.Play(effect)
	}
}

func (g *Game) toggleDebug() {
	g.ui.Toggle()
	if g.ui.Hidden {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (g *Game) renderOverview() {
	if !imgui.BeginV("Woodland", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	w := g.Sim.World
	imgui.Text(fmt.Sprintf("Seed: %d", g.Seed))
	imgui.Text(fmt.Sprintf("Frames: %d", g.Sim.Frames()))
	imgui.Separator()
	for _, kind := range []sim.Kind{sim.KindMan, sim.KindTree, sim.KindLog, sim.KindApple} {
		imgui.Text(fmt.Sprintf("%s: %d", kind, w.Count(kind)))
	}
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Apples eaten: %d", g.Sim.Apples.Eaten))
	imgui.Text(fmt.Sprintf("Chops: %d", g.Sim.Chops.Chops))
	imgui.Text(fmt.Sprintf("Pruned: %d", g.Sim.Prunes.Pruned))
	imgui.Text(fmt.Sprintf("Chop cooldown: %.2f", w.ChopCooldown))
	imgui.Separator()
	if imgui.Button("Reload assets") {
		g.reload()
	}
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("(%d reloads)", g.reloaded))

	imgui.End()
}

// HotkeySystem handles R (reload assets) and F1 (debug windows).
type HotkeySystem struct{}

func (s *HotkeySystem) Execute(frame *ecs.UpdateFrame[*Game]) {
	g := frame.World
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.toggleDebug()
	}
	if g.ui.InputState.WantCaptureKeyboard {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload()
	}
}

// SimulationSystem samples the pointer and runs one simulation frame.
// Clicks that land on a debug window do not reach the game.
type SimulationSystem struct{}

func (s *SimulationSystem) Execute(frame *ecs.UpdateFrame[*Game]) {
	g := frame.World

	x, y := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !g.ui.InputState.WantCaptureMouse

	g.Sim.Frame(sim.FrameInput{
		DeltaTime:   frame.DeltaTime,
		Pointer:     mgl32.Vec2{float32(x), float32(y)},
		PrimaryDown: down,
		Nudge:       s.nudge(g),
	})
	g.elapsed += frame.DeltaTime
}

func (s *SimulationSystem) nudge(g *Game) mgl32.Vec2 {
	if g.ui.InputState.WantCaptureKeyboard {
		return mgl32.Vec2{}
	}
	return sim.ArrowNudge(
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	)
}
