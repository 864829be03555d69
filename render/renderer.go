package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/petridecus/viso/vmath"
)

// Cell aspect compensation: terminal cells are roughly twice as tall as
// they are wide
const cellAspect = 2.0

var chainColors = []tcell.Color{
	tcell.ColorLightSkyBlue,
	tcell.ColorLightGreen,
	tcell.ColorLightSalmon,
	tcell.ColorPlum,
	tcell.ColorKhaki,
}

// Frame is one render snapshot of the animated structure
type Frame struct {
	// Chains is the interpolated backbone, same layout SetTarget consumes
	Chains [][]vmath.Vec3
	// Sidechains is the interpolated sidechain atom positions
	Sidechains []vmath.Vec3
	// ShowSidechains hides sidechain atoms during settle phases
	ShowSidechains bool
	// Progress is the active animation's progress, 1 when idle
	Progress float64
	// Animating reports whether an animation is in flight
	Animating bool
	// Action names the most recent trigger
	Action string
	// Behavior names the active animation style
	Behavior string
	// Enabled reports whether animations are on
	Enabled bool
}

// TerminalRenderer draws the structure viewer into a tcell screen: an
// orthographic projection of the backbone with depth-shaded atoms, a
// progress bar, and a status line
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer for the given screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// UpdateDimensions refreshes cached screen size after a resize
func (r *TerminalRenderer) UpdateDimensions() {
	r.width, r.height = r.screen.Size()
}

// RenderFrame draws one full frame
func (r *TerminalRenderer) RenderFrame(frame Frame) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault

	viewH := r.height - 2
	if viewH < 1 || r.width < 4 {
		r.screen.Show()
		return
	}

	proj := newProjection(frame, r.width, viewH)

	for chainIdx, chain := range frame.Chains {
		color := chainColors[chainIdx%len(chainColors)]
		r.drawChain(chain, proj, color)
	}

	if frame.ShowSidechains {
		r.drawSidechains(frame.Sidechains, proj)
	}

	r.drawProgressBar(frame, defaultStyle)
	r.drawStatusBar(frame, defaultStyle)

	r.screen.Show()
}

// projection maps structure coordinates onto the terminal grid
type projection struct {
	minX, minY float64
	scale      float64
	offsetX    int
	offsetY    int
	minZ, maxZ float64
}

func newProjection(frame Frame, width, height int) projection {
	minX, minY, minZ := math.Inf(1), math.Inf(1), math.Inf(1)
	maxX, maxY, maxZ := math.Inf(-1), math.Inf(-1), math.Inf(-1)

	visit := func(p vmath.Vec3) {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
		minZ = math.Min(minZ, p.Z)
		maxZ = math.Max(maxZ, p.Z)
	}
	for _, chain := range frame.Chains {
		for _, p := range chain {
			visit(p)
		}
	}
	for _, p := range frame.Sidechains {
		visit(p)
	}

	if math.IsInf(minX, 1) {
		return projection{scale: 1}
	}

	spanX := (maxX - minX) * cellAspect
	spanY := maxY - minY
	scale := 1.0
	if spanX > 0 && float64(width-2)/spanX < scale {
		scale = float64(width-2) / spanX
	}
	if spanY > 0 && float64(height-2)/spanY < scale {
		scale = float64(height-2) / spanY
	}

	usedW := int(spanX * scale)
	usedH := int(spanY * scale)

	return projection{
		minX:    minX,
		minY:    minY,
		scale:   scale,
		offsetX: (width - usedW) / 2,
		offsetY: (height - usedH) / 2,
		minZ:    minZ,
		maxZ:    maxZ,
	}
}

func (p projection) cell(pos vmath.Vec3) (int, int) {
	x := p.offsetX + int((pos.X-p.minX)*cellAspect*p.scale)
	y := p.offsetY + int((pos.Y-p.minY)*p.scale)
	return x, y
}

// depth maps a z coordinate to 0 (far) through 1 (near)
func (p projection) depth(pos vmath.Vec3) float64 {
	span := p.maxZ - p.minZ
	if span <= 0 {
		return 1
	}
	return (pos.Z - p.minZ) / span
}

func (r *TerminalRenderer) drawChain(chain []vmath.Vec3, proj projection, color tcell.Color) {
	for i, pos := range chain {
		x, y := proj.cell(pos)
		if x < 0 || x >= r.width || y < 0 || y >= r.height-2 {
			continue
		}

		// CA atoms (middle of each N, CA, C triple) draw heavier
		ch := '·'
		if i%3 == 1 {
			ch = 'o'
		}

		style := tcell.StyleDefault.Foreground(color)
		if proj.depth(pos) < 0.33 {
			style = style.Dim(true)
		} else if proj.depth(pos) > 0.66 {
			style = style.Bold(true)
		}
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawSidechains(positions []vmath.Vec3, proj projection) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, pos := range positions {
		x, y := proj.cell(pos)
		if x < 0 || x >= r.width || y < 0 || y >= r.height-2 {
			continue
		}
		r.screen.SetContent(x, y, '.', nil, style)
	}
}

func (r *TerminalRenderer) drawProgressBar(frame Frame, defaultStyle tcell.Style) {
	y := r.height - 2
	barWidth := r.width - 2
	if barWidth < 1 {
		return
	}

	filled := int(frame.Progress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}

	style := defaultStyle.Foreground(tcell.ColorGreen)
	if !frame.Animating {
		style = defaultStyle.Foreground(tcell.ColorGray)
	}
	for x := 0; x < barWidth; x++ {
		ch := '─'
		if x < filled {
			ch = '━'
		}
		r.screen.SetContent(x+1, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawStatusBar(frame Frame, defaultStyle tcell.Style) {
	y := r.height - 1

	state := "idle"
	if frame.Animating {
		state = fmt.Sprintf("%s %3.0f%%", frame.Behavior, frame.Progress*100)
	}
	toggle := "on"
	if !frame.Enabled {
		toggle = "off"
	}

	status := fmt.Sprintf(
		" %s | anim %s | last: %s | w/s/m/d/f/r/l trigger  space skip  a toggle  q quit",
		state, toggle, frame.Action,
	)

	style := defaultStyle.Foreground(tcell.ColorWhite)
	for i, ch := range status {
		if i >= r.width {
			break
		}
		r.screen.SetContent(i, y, ch, nil, style)
	}
}
