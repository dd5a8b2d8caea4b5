package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/galaxy/ecs"
	"github.com/plus3/galaxy/ecs/debugui"
	"github.com/plus3/galaxy/galaxy"
)

func spawnGalaxyWindow(ui *ecs.Storage, loop *galaxy.Loop) {
	stars := ecs.NewQuery[struct{ *galaxy.Star }](loop.Storage())
	ornaments := ecs.NewQuery[struct{ *galaxy.Ornament }](loop.Storage())

	ui.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(300, 270), imgui.CondOnce)

			if !imgui.BeginV("Galaxy", nil, 0) {
				imgui.End()
				return
			}

			profile := loop.Profile()
			vp := loop.Viewport()
			pointer := loop.Pointer()
			rot := loop.Rotation()

			imgui.Text(fmt.Sprintf("Profile: %s (%s z)", profile.Name, profile.Sort))
			imgui.Text(fmt.Sprintf("Frame: %d", loop.Frame()))
			imgui.Text(fmt.Sprintf("Viewport: %.0fx%.0f", vp.Width, vp.Height))
			imgui.Separator()
			imgui.Text(fmt.Sprintf("Pointer: %+.3f, %+.3f", pointer.X, pointer.Y))
			imgui.Text(fmt.Sprintf("Target:  %+.3f, %+.3f", rot.Target.X, rot.Target.Y))
			imgui.Text(fmt.Sprintf("Current: %+.3f, %+.3f", rot.Current.X, rot.Current.Y))
			imgui.Text(fmt.Sprintf("Pitch %+.3f rad  Yaw %+.3f rad", rot.Pitch(), rot.Yaw()))
			imgui.Separator()

			ornaments.Execute()
			stars.Execute()
			imgui.Text(fmt.Sprintf("Ornaments: %d (%d drawn)", ornaments.Len(), len(loop.Snapshot())))
			imgui.Text(fmt.Sprintf("Stars: %d", stars.Len()))

			if loop.GlassAttached() {
				imgui.Text("Glass overlay attached")
			} else if imgui.Button("Attach glass") {
				loop.AttachGlass(galaxy.DefaultGlass)
			}

			imgui.End()
		},
	})
}
