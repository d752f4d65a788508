package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/kotlot/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Level     uint32
	XP        uint32
	NextXP    uint32 // 0 at max level
	Selection string
	Tick      int32
	FPS       int32
	Enemies   int
	Colliders int
	Quadrant  string

	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the level readout, the selection label and the status line.
func (h *HUD) Draw(data HUDData) {
	theme := h.renderer.Theme

	gui.Label(rl.Rectangle{X: 10, Y: 10, Width: 220, Height: 24}, levelText(data))
	if data.NextXP > 0 {
		gui.ProgressBar(
			rl.Rectangle{X: 10, Y: 36, Width: 200, Height: 10},
			"", "",
			float32(data.XP), 0, float32(data.NextXP),
		)
	}

	if data.Selection != "" {
		width := rl.MeasureText(data.Selection, theme.TitleFontSize)
		rl.DrawText(data.Selection, (data.ScreenWidth-width)/2, 20, theme.TitleFontSize, theme.Highlight)
	}

	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d | Enemies: %d | Colliders: %d | View: %s",
			data.Tick, data.FPS, data.Enemies, data.Colliders, data.Quadrant),
		10, data.ScreenHeight-45, theme.FontSize, theme.LabelColor,
	)
}

func levelText(data HUDData) string {
	if data.NextXP == 0 {
		return fmt.Sprintf("Level %d (max)", data.Level)
	}
	return fmt.Sprintf("Level %d  %d/%d xp", data.Level, data.XP, data.NextXP)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the per-phase timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel, phases in pipeline order.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	x, y := p.x, p.y
	height := r.Theme.Padding*2 + r.Theme.LineHeight*int32(len(telemetry.Phases)+3)

	r.DrawPanel(x, y, 240, height)
	x += r.Theme.Padding
	y += r.Theme.Padding

	rl.DrawText("Tick Performance", x, y, 14, r.Theme.SectionHeader)
	y += r.Theme.LineHeight + 2

	y = r.DrawLabelValue(x, y, "avg", stats.AvgTickDuration.Round(time.Microsecond).String())
	y = r.DrawLabelValue(x, y, "p90", stats.P90TickDuration.Round(time.Microsecond).String())

	for _, phase := range telemetry.Phases {
		pct := stats.PhasePct[phase]
		color := r.Theme.LabelColor
		if pct > 40 {
			color = r.Theme.Warning
		}
		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", phase, stats.PhaseAvg[phase].Round(time.Microsecond), pct),
			x, y, r.Theme.FontSize, color,
		)
		y += r.Theme.LineHeight
	}
}
