package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetris/driver"
	"github.com/plus3/tetris/engine"
)

// LockHistory shows the running totals and the most recent locks.
type LockHistory struct{}

func (lh *LockHistory) Render(totals *driver.Totals) {
	if !imgui.BeginV("Lock History", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Locks: %d", totals.Locks))
	imgui.Text(fmt.Sprintf("Lines: %d", totals.Lines))
	imgui.Text(fmt.Sprintf("T-spins: %d (mini %d)", totals.TSpins, totals.TSpinMinis))
	imgui.Text(fmt.Sprintf("Perfect clears: %d", totals.PerfectClears))

	if imgui.TreeNodeStr("Locks per kind") {
		for _, kind := range engine.AllKinds() {
			imgui.BulletText(fmt.Sprintf("%s: %d", kind, totals.LocksOf(kind)))
		}
		imgui.TreePop()
	}

	imgui.Separator()
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("RecentLocksTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Lines")
		imgui.TableSetupColumn("Bonus")
		imgui.TableHeadersRow()

		recent := totals.Recent()
		for i := len(recent) - 1; i >= 0; i-- {
			event := recent[i]
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", event.Piece))
			imgui.TableNextColumn()
			imgui.Text(event.Kind.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", event.Result.LinesCleared))
			imgui.TableNextColumn()
			imgui.Text(bonus(event.Result))
		}

		imgui.EndTable()
	}

	imgui.End()
}

func bonus(r engine.ClearResult) string {
	switch {
	case r.PerfectClear:
		return "perfect clear"
	case r.TSpin:
		return "T-spin"
	case r.TSpinMini:
		return "T-spin mini"
	}
	return ""
}
