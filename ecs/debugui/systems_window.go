package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/galaxy/ecs"
)

const historyFrames = 120

// SystemRow is one formatted line of the systems table.
type SystemRow struct {
	Name string
	Runs int64
	Last string
	Avg  string
	Max  string
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}

// SystemRows formats scheduler stats for display, in registration order.
func SystemRows(stats *ecs.SchedulerStats) []SystemRow {
	rows := make([]SystemRow, len(stats.Systems))
	for i, s := range stats.Systems {
		rows[i] = SystemRow{
			Name: s.Name,
			Runs: s.ExecutionCount,
			Last: formatDuration(s.LastDuration),
			Avg:  formatDuration(s.AvgDuration),
			Max:  formatDuration(s.MaxDuration),
		}
	}
	return rows
}

// SystemsWindow shows frame timing, per-system scheduler statistics and the
// layout of a store.
type SystemsWindow struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	frames   *history
	latency  map[string]*history
	lastTime time.Time
}

// NewSystemsWindow creates a window observing storage and the scheduler driving it.
func NewSystemsWindow(storage *ecs.Storage, scheduler *ecs.Scheduler) *SystemsWindow {
	return &SystemsWindow{
		storage:   storage,
		scheduler: scheduler,
		frames:    newHistory(historyFrames),
		latency:   make(map[string]*history),
	}
}

// sample records the time since the previous sample and the latest duration of
// every system.
func (w *SystemsWindow) sample(now time.Time, stats *ecs.SchedulerStats) {
	if !w.lastTime.IsZero() {
		w.frames.push(float32(now.Sub(w.lastTime).Seconds() * 1000))
	}
	w.lastTime = now

	for _, s := range stats.Systems {
		h, ok := w.latency[s.Name]
		if !ok {
			h = newHistory(historyFrames)
			w.latency[s.Name] = h
		}
		h.push(float32(float64(s.LastDuration) / float64(time.Millisecond)))
	}
}

// Render draws the window. It is meant to be an ImguiItem render function.
func (w *SystemsWindow) Render() {
	stats := w.scheduler.GetStats()
	w.sample(time.Now(), stats)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 290), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 360), imgui.CondOnce)

	if !imgui.BeginV("Systems", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := w.frames.average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	frames := w.frames.ordered()
	imgui.PlotLinesFloatPtr("##frametime", &frames[0], int32(len(frames)))
	imgui.Separator()

	if imgui.BeginTabBar("SystemsTabs") {
		if imgui.BeginTabItem("Table") {
			w.renderTable(stats)
			imgui.EndTabItem()
		}
		if imgui.BeginTabItem("Latency") {
			w.renderLatency(stats)
			imgui.EndTabItem()
		}
		if imgui.BeginTabItem("Store") {
			w.renderStore()
			imgui.EndTabItem()
		}
		imgui.EndTabBar()
	}

	imgui.End()
}

func (w *SystemsWindow) renderTable(stats *ecs.SchedulerStats) {
	imgui.Text(fmt.Sprintf("Systems: %d  Executions: %d", stats.SystemCount, stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("SystemsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Last")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, row := range SystemRows(stats) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Runs))
			imgui.TableNextColumn()
			imgui.Text(row.Last)
			imgui.TableNextColumn()
			imgui.Text(row.Avg)
			imgui.TableNextColumn()
			imgui.Text(row.Max)
		}
		imgui.EndTable()
	}
}

func (w *SystemsWindow) renderLatency(stats *ecs.SchedulerStats) {
	if implot.BeginPlotV("System Latency", imgui.NewVec2(-1, -1), 0) {
		implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
		for _, s := range stats.Systems {
			samples := w.latency[s.Name].ordered()
			implot.PlotLineFloatPtrInt(s.Name, &samples[0], int32(len(samples)))
		}
		implot.EndPlot()
	}
}

func (w *SystemsWindow) renderStore() {
	stats := w.storage.CollectStats()

	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	if imgui.TreeNodeStr("Archetype Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Archetype ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprint(arch.ComponentTypes))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}
}

// SpawnInspector adds a Systems window observing target and scheduler to the debug
// window store ui.
func SpawnInspector(ui *ecs.Storage, target *ecs.Storage, scheduler *ecs.Scheduler) *SystemsWindow {
	w := NewSystemsWindow(target, scheduler)
	ui.Spawn(ImguiItem{Render: w.Render})
	return w
}
