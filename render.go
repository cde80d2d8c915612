package geoboard

import (
	"fmt"
	"math"
	"slices"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandLine CommandType = iota // segment X1,Y1 -> X2,Y2
	CommandRing                    // circle outline at X1,Y1
	CommandDisc                    // filled circle at X1,Y1
	CommandArc                     // outline arc from StartAngle through Sweep radians
	CommandText                    // text with its baseline origin at X1,Y1
)

// Render layers, drawn in increasing order.
const (
	LayerShapes uint8 = iota
	LayerPoints
	LayerLabels
	LayerPreview
)

// Font sizes used for labels and measurements.
const (
	LabelFontSize   = 10.0
	MeasureFontSize = 12.0
)

// RenderCommand is a single draw instruction. Backends execute commands in
// slice order.
type RenderCommand struct {
	Type           CommandType
	X1, Y1, X2, Y2 float64
	Radius         float64
	StartAngle     float64
	Sweep          float64
	Width          float64
	Color          Color
	Dash           []float64
	DashOffset     float64
	Text           string
	FontSize       float64
	RenderLayer    uint8
	EntityID       int
}

var (
	previewDash = []float64{5, 3}
	fineDash    = []float64{3, 2}
	marchDash   = []float64{4, 12}
)

// BuildCommands converts a frame into an ordered list of draw commands.
// It is a pure function of f.
func BuildCommands(f *Frame) []RenderCommand {
	b := commandBuilder{f: f}
	snap := &f.Scene

	for i := range snap.Circles {
		b.circle(&snap.Circles[i])
	}
	for i := range snap.Lines {
		b.line(&snap.Lines[i])
	}
	for i := range snap.Angles {
		b.angle(&snap.Angles[i])
	}
	for i := range snap.Points {
		b.point(&snap.Points[i])
	}
	if f.PointerInside {
		b.preview()
	}

	slices.SortStableFunc(b.cmds, func(a, c RenderCommand) int {
		return int(a.RenderLayer) - int(c.RenderLayer)
	})
	return b.cmds
}

type commandBuilder struct {
	f    *Frame
	cmds []RenderCommand
}

func (b *commandBuilder) add(c RenderCommand) {
	b.cmds = append(b.cmds, c)
}

func (b *commandBuilder) text(s string, x, y, size float64, layer uint8, id int) {
	b.add(RenderCommand{
		Type: CommandText, X1: x, Y1: y, Text: s,
		FontSize: size, Color: ColorText, RenderLayer: layer, EntityID: id,
	})
}

func (b *commandBuilder) circle(c *Circle) {
	ring := RenderCommand{
		Type: CommandRing, X1: c.Center.X, Y1: c.Center.Y, Radius: c.Radius,
		Width: c.Width, Color: c.Color, Dash: c.Style.DashPattern(),
		RenderLayer: LayerShapes, EntityID: c.ID,
	}
	b.add(ring)
	if c.Fill {
		b.add(RenderCommand{
			Type: CommandDisc, X1: c.Center.X, Y1: c.Center.Y, Radius: c.Radius,
			Color: c.FillColor, RenderLayer: LayerShapes, EntityID: c.ID,
		})
	}
	if c.ShowLabel {
		b.text(c.Label, c.Center.X+c.Radius+5, c.Center.Y, LabelFontSize, LayerLabels, c.ID)
	}
}

func (b *commandBuilder) line(l *Line) {
	animated := l.Animated && l.ID == b.f.SelectedLineID && b.f.AnimationActive
	base := RenderCommand{
		Type: CommandLine, X1: l.Start.X, Y1: l.Start.Y, X2: l.End.X, Y2: l.End.Y,
		Width: l.Width, Color: l.Color, Dash: l.Style.DashPattern(),
		RenderLayer: LayerShapes, EntityID: l.ID,
	}
	if animated {
		phase := float64(b.f.AnimationPhase)
		base.DashOffset = -phase
		b.add(base)
		march := base
		march.Color = ColorMarch
		march.Width = l.Width * 0.8
		march.Dash = marchDash
		march.DashOffset = -phase * 1.5
		b.add(march)
	} else {
		b.add(base)
	}
	if l.ShowLabel {
		mid := l.Midpoint()
		b.text(l.Label, mid.X+5, mid.Y-5, LabelFontSize, LayerLabels, l.ID)
	}
}

func (b *commandBuilder) angle(a *Angle) {
	p1, p2 := a.Arms()
	for _, arm := range [2]Point{p1, p2} {
		b.add(RenderCommand{
			Type: CommandLine, X1: a.Vertex.X, Y1: a.Vertex.Y, X2: arm.X, Y2: arm.Y,
			Width: 2, Color: a.Color, RenderLayer: LayerShapes, EntityID: a.ID,
		})
	}
	start, sweep := ArcSweep(a.Vertex.Pos(), p1.Pos(), p2.Pos())
	if a.ShowArc {
		b.add(RenderCommand{
			Type: CommandArc, X1: a.Vertex.X, Y1: a.Vertex.Y, Radius: a.Radius,
			StartAngle: start, Sweep: sweep, Width: 2, Color: a.Color,
			RenderLayer: LayerShapes, EntityID: a.ID,
		})
	}
	mid := start + sweep/2
	if a.ShowDegree {
		r := a.Radius + 10
		b.text(formatDegrees(a.Degrees()), a.Vertex.X+r*math.Cos(mid), a.Vertex.Y+r*math.Sin(mid),
			MeasureFontSize, LayerLabels, a.ID)
	}
	if a.ShowLabel {
		at := a.LabelAnchor()
		b.text(a.Label, at.X, at.Y, LabelFontSize, LayerLabels, a.ID)
	}
}

func (b *commandBuilder) point(p *Point) {
	size, col := p.Size, p.Color
	if p.ID == b.f.HoveredID {
		size *= b.f.HoverScale
		col = ColorHover
	}
	b.add(RenderCommand{
		Type: CommandDisc, X1: p.X, Y1: p.Y, Radius: size, Color: col,
		RenderLayer: LayerPoints, EntityID: p.ID,
	})
	if p.ShowLabel {
		at := BestLabelPosition(*p, &b.f.Scene, b.f.Bounds, b.f.Label)
		b.text(p.Label, at.X, at.Y, LabelFontSize, LayerLabels, p.ID)
	}
}

// preview draws the construction guides of a tool holding temp points.
func (b *commandBuilder) preview() {
	f := b.f
	m := f.Pointer
	switch {
	case f.Tool == ToolLine && len(f.Temp) == 1:
		b.dashedTo(f.Temp[0], m, ColorPreview)
	case f.Tool == ToolAngle && len(f.Temp) == 1:
		b.dashedTo(f.Temp[0], m, ColorAngle)
	case f.Tool == ToolAngle && len(f.Temp) == 2:
		first, vertex := f.Temp[0], f.Temp[1]
		b.add(RenderCommand{
			Type: CommandLine, X1: vertex.X, Y1: vertex.Y, X2: first.X, Y2: first.Y,
			Width: 2, Color: ColorAngle, RenderLayer: LayerPreview,
		})
		b.dashedTo(vertex, m, ColorAngle)
		start, sweep := ArcSweep(vertex.Pos(), first.Pos(), m)
		b.add(RenderCommand{
			Type: CommandArc, X1: vertex.X, Y1: vertex.Y, Radius: 20,
			StartAngle: start, Sweep: sweep, Width: 2, Color: ColorArcPreview,
			Dash: fineDash, RenderLayer: LayerPreview,
		})
		mid := start + sweep/2
		b.text(formatDegrees(AngleBetweenRays(vertex.Pos(), first.Pos(), m)),
			vertex.X+30*math.Cos(mid), vertex.Y+30*math.Sin(mid), MeasureFontSize, LayerPreview, 0)
	case f.Tool == ToolCircle && len(f.Temp) == 1:
		c := f.Temp[0]
		r := Distance(c.Pos(), m)
		b.add(RenderCommand{
			Type: CommandRing, X1: c.X, Y1: c.Y, Radius: r, Width: 2,
			Color: ColorCircle, Dash: previewDash, RenderLayer: LayerPreview,
		})
		b.add(RenderCommand{
			Type: CommandLine, X1: c.X, Y1: c.Y, X2: m.X, Y2: m.Y, Width: 1,
			Color: ColorCircle, Dash: fineDash, RenderLayer: LayerPreview,
		})
		b.text(fmt.Sprintf("r = %.1f", r), (c.X+m.X)/2, (c.Y+m.Y)/2-5, MeasureFontSize, LayerPreview, 0)
	}
}

func (b *commandBuilder) dashedTo(from Point, to Vec2, col Color) {
	b.add(RenderCommand{
		Type: CommandLine, X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y,
		Width: 2, Color: col, Dash: previewDash, RenderLayer: LayerPreview,
	})
}

func formatDegrees(d float64) string {
	return fmt.Sprintf("%.1f°", d)
}

// CountCommands returns how many commands of each type are in cmds.
func CountCommands(cmds []RenderCommand) map[CommandType]int {
	counts := make(map[CommandType]int)
	for i := range cmds {
		counts[cmds[i].Type]++
	}
	return counts
}
