package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetris/engine"
)

var (
	backgroundColor = imgui.NewVec4(0.1, 0.1, 0.12, 1)
	ghostColor      = imgui.NewVec4(1, 1, 1, 0.3)
	wallColor       = imgui.NewVec4(0.5, 0.5, 0.5, 1)
)

var kindColors = map[engine.Kind]imgui.Vec4{
	engine.KindI: imgui.NewVec4(0.4, 0.75, 1, 1),
	engine.KindO: imgui.NewVec4(1, 0.8, 0, 1),
	engine.KindS: imgui.NewVec4(0, 0.9, 0.2, 1),
	engine.KindZ: imgui.NewVec4(1, 0.43, 0.76, 1),
	engine.KindJ: imgui.NewVec4(0, 0.47, 0.95, 1),
	engine.KindL: imgui.NewVec4(1, 0.63, 0, 1),
	engine.KindT: imgui.NewVec4(0.53, 0.24, 0.75, 1),
}

func blockColor(b engine.Block) imgui.Vec4 {
	if b.IsWall() {
		return wallColor
	}
	if kind, ok := b.Kind(); ok {
		return kindColors[kind]
	}
	return backgroundColor
}

// FieldViewer draws the board, the ghost and the active piece with the
// window draw list.
type FieldViewer struct {
	CellSize   float32
	ShowHidden bool
	ShowGhost  bool
}

func NewFieldViewer(cellSize float32) *FieldViewer {
	return &FieldViewer{CellSize: cellSize, ShowGhost: true}
}

type rect struct {
	min, max imgui.Vec2
	color    imgui.Vec4
}

// rows returns how many field rows are drawn, counted from the bottom.
func (v *FieldViewer) rows(field *engine.Field) int {
	if v.ShowHidden {
		return field.Size().Y
	}
	return field.Visible()
}

// layout lists the rectangles to draw with origin as the top-left corner:
// one background cell per drawn cell, top row first, then the ghost and
// the active piece on top.
func (v *FieldViewer) layout(field *engine.Field, origin imgui.Vec2) []rect {
	rows := v.rows(field)
	grid := field.Grid()
	width := grid.Size().X

	cellRect := func(p engine.Position, color imgui.Vec4) rect {
		x := origin.X + float32(p.X)*v.CellSize
		y := origin.Y + float32(rows-1-p.Y)*v.CellSize
		return rect{
			min:   imgui.NewVec2(x+1, y+1),
			max:   imgui.NewVec2(x+v.CellSize-1, y+v.CellSize-1),
			color: color,
		}
	}

	rects := make([]rect, 0, rows*width+8)
	for y := rows - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			p := engine.Position{X: x, Y: y}
			rects = append(rects, cellRect(p, blockColor(grid.At(p))))
		}
	}

	piece, ok := field.Active()
	if !ok {
		return rects
	}
	overlay := func(cells []engine.Position, color imgui.Vec4) {
		for _, p := range cells {
			if p.Y >= 0 && p.Y < rows && p.X >= 0 && p.X < width {
				rects = append(rects, cellRect(p, color))
			}
		}
	}
	if v.ShowGhost {
		ghost := engine.ActivePiece{Mino: piece.Mino, Position: field.GhostPosition()}
		overlay(ghost.Cells(), ghostColor)
	}
	overlay(piece.Cells(), kindColors[piece.Mino.Kind()])
	return rects
}

func (v *FieldViewer) Render(field *engine.Field) {
	if !imgui.BeginV("Field", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Hidden rows", &v.ShowHidden)
	imgui.SameLine()
	imgui.Checkbox("Ghost", &v.ShowGhost)

	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	for _, r := range v.layout(field, origin) {
		drawList.AddRectFilled(r.min, r.max, imgui.ColorU32Vec4(r.color))
	}
	imgui.Dummy(imgui.NewVec2(float32(field.Size().X)*v.CellSize, float32(v.rows(field))*v.CellSize))

	if field.ToppedOut() {
		imgui.Text("TOPPED OUT")
	}

	imgui.End()
}
