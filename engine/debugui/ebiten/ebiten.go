// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/tetris/driver"
	"github.com/plus3/tetris/engine/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Binding maps a key press to a player action.
type Binding struct {
	Key    ebiten.Key
	Action driver.Action
}

// DefaultBindings follow the classic arrow-key layout with Z/X rotation.
var DefaultBindings = []Binding{
	{ebiten.KeyArrowLeft, driver.ActionMoveLeft},
	{ebiten.KeyArrowRight, driver.ActionMoveRight},
	{ebiten.KeyArrowDown, driver.ActionSoftDrop},
	{ebiten.KeyZ, driver.ActionRotateLeft},
	{ebiten.KeyX, driver.ActionRotateRight},
	{ebiten.KeyArrowUp, driver.ActionRotateRight},
	{ebiten.KeyC, driver.ActionHold},
	{ebiten.KeySpace, driver.ActionHardDrop},
}

// actions returns the actions whose key is pressed, in binding order.
func actions(bindings []Binding, pressed func(ebiten.Key) bool) []driver.Action {
	var out []driver.Action
	for _, b := range bindings {
		if pressed(b.Key) {
			out = append(out, b.Action)
		}
	}
	return out
}

// Game implements ebiten.Game: it feeds key presses into the scheduler,
// runs one tick per update and draws the inspector windows on top.
type Game struct {
	Backend   ImguiBackend
	Scheduler *driver.Scheduler
	UI        *debugui.ImguiSystem
	Bindings  []Binding
}

// NewGame registers the inspector windows on scheduler.
func NewGame(backend ImguiBackend, scheduler *driver.Scheduler) *Game {
	return &Game{
		Backend:   backend,
		Scheduler: scheduler,
		UI:        debugui.RegisterDebugUI(scheduler),
		Bindings:  DefaultBindings,
	}
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.Backend.BeginFrame()

	if !g.UI.InputState.WantCaptureKeyboard {
		g.Scheduler.Commands().Push(actions(g.Bindings, inpututil.IsKeyJustPressed)...)
	}
	err := g.Scheduler.Once(1.0 / float64(ebiten.TPS()))

	// End ImGui frame after systems complete
	g.Backend.EndFrame()
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
