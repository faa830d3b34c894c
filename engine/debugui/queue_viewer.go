package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetris/engine"
)

// QueueViewer lists the held kind and the upcoming kinds.
type QueueViewer struct {
	count int32
}

func NewQueueViewer(count int) *QueueViewer {
	return &QueueViewer{count: int32(count)}
}

func (qv *QueueViewer) Render(field *engine.Field) {
	if !imgui.BeginV("Queue", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	held := field.Held()
	if held.IsEmpty() {
		imgui.Text("Hold: -")
	} else {
		imgui.Text(fmt.Sprintf("Hold: %s", held.Kind()))
	}

	imgui.Separator()
	imgui.SetNextItemWidth(100)
	if imgui.InputInt("Preview", &qv.count) {
		qv.count = min(max(qv.count, 1), 14)
	}
	for i, kind := range field.Preview(int(qv.count)) {
		imgui.BulletText(fmt.Sprintf("%d: %s", i+1, kind))
	}

	imgui.End()
}
