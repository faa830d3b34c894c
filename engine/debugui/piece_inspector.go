package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetris/engine"
)

// PieceInspector shows the active piece and its last committed action.
type PieceInspector struct{}

func (pi *PieceInspector) Render(field *engine.Field) {
	if !imgui.BeginV("Active Piece", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	piece, ok := field.Active()
	if !ok {
		imgui.Text("No active piece")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Kind: %s", piece.Mino.Kind()))
	imgui.Text(fmt.Sprintf("Direction: %s", piece.Mino.Direction()))
	imgui.Text(fmt.Sprintf("Position: %s", piece.Position))
	imgui.Text(fmt.Sprintf("Ghost: %s", field.GhostPosition()))
	imgui.Text(fmt.Sprintf("Resting: %t", field.IsResting()))
	imgui.Text(fmt.Sprintf("Spawned: %d", field.Spawned()))

	imgui.Separator()
	imgui.Text(describeLastAction(piece.Last))

	if imgui.TreeNodeStr("Local Grid") {
		for _, line := range strings.Split(piece.Mino.Grid().String(), "\n") {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Cells") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PieceCellsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("X")
			imgui.TableSetupColumn("Y")
			imgui.TableHeadersRow()

			for _, cell := range piece.Cells() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", cell.X))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", cell.Y))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func describeLastAction(last engine.LastAction) string {
	if !last.Rotated {
		return "Last action: translation"
	}
	return fmt.Sprintf("Last action: rotate (kick step %d)", last.Step)
}
