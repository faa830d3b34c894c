package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetris/driver"
	"github.com/plus3/tetris/engine"
	debugui_ebiten "github.com/plus3/tetris/engine/debugui/ebiten"
)

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Tetris Inspector", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	field := engine.NewField(engine.WithSeed(1))
	scheduler := driver.NewDefaultScheduler(field)

	game := debugui_ebiten.NewGame(debugui_ebiten.ImguiBackend{EbitenBackend: imguiBackend}, scheduler)

	// Run the game
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
