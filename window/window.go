// Package window hosts a geoboard editor in a desktop window using
// Ebitengine. Mouse input drives the editor, number keys pick tools and
// the frame is drawn from the editor's render commands every tick.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/geoboard"
	"golang.org/x/image/font/gofont/goregular"
)

// Config controls the window host.
type Config struct {
	Title string
	// ShowFPS draws the current FPS next to the status line.
	ShowFPS bool
	// ScreenshotDir receives PNGs captured with F12. Defaults to "screenshots".
	ScreenshotDir string
	// HideStatus disables the status line at the bottom of the window.
	HideStatus bool
}

var toolKeys = [...]struct {
	key  ebiten.Key
	tool geoboard.Tool
}{
	{ebiten.KeyDigit1, geoboard.ToolPoint},
	{ebiten.KeyDigit2, geoboard.ToolLine},
	{ebiten.KeyDigit3, geoboard.ToolAngle},
	{ebiten.KeyDigit4, geoboard.ToolCircle},
}

type game struct {
	editor *geoboard.Editor
	cfg    Config
	width  int
	height int

	faceSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace

	inside       bool
	lastX, lastY int
	pressed      bool
	shots        []string
}

// Run opens a window sized to the editor's configuration and blocks until
// it is closed.
func Run(e *geoboard.Editor, cfg Config) error {
	if cfg.Title == "" {
		cfg.Title = "Geoboard"
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("window: load font: %w", err)
	}
	ec := e.Config()
	g := &game{
		editor:     e,
		cfg:        cfg,
		width:      int(ec.Width),
		height:     int(ec.Height),
		faceSource: src,
		faces:      make(map[float64]*text.GoTextFace),
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.width, g.height)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, k := range toolKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.editor.SetTool(k.tool)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.editor.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots = append(g.shots, g.editor.Tool().String())
	}

	g.pointer()
	g.editor.Tick(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// pointer forwards mouse state to the editor. A click is delivered on
// release, after PointerUp, so a finished drag can swallow it.
func (g *game) pointer() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	inside := cx >= 0 && cy >= 0 && cx < g.width && cy < g.height

	switch {
	case inside && (!g.inside || cx != g.lastX || cy != g.lastY):
		g.editor.PointerMove(x, y)
	case !inside && g.inside:
		g.editor.PointerLeave()
		g.pressed = false
	}
	g.inside, g.lastX, g.lastY = inside, cx, cy

	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = true
		g.editor.PointerDown()
	}
	if g.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pressed = false
		g.editor.PointerUp()
		if inside {
			g.editor.Click(x, y)
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	f := g.editor.Frame()
	cmds := geoboard.BuildCommands(&f)

	screen.Fill(toColor(geoboard.ColorBackground))
	for i := range cmds {
		g.draw(screen, &cmds[i])
	}

	if !g.cfg.HideStatus {
		status := f.Status()
		if g.cfg.ShowFPS {
			status = fmt.Sprintf("%s  fps %.0f", status, ebiten.ActualFPS())
		}
		ebitenutil.DebugPrintAt(screen, status, 4, g.height-18)
	}
	g.flushScreenshots(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func (g *game) draw(dst *ebiten.Image, cmd *geoboard.RenderCommand) {
	clr := toColor(cmd.Color)
	w := float32(cmd.Width)

	switch cmd.Type {
	case geoboard.CommandLine:
		pts := []geoboard.Vec2{{X: cmd.X1, Y: cmd.Y1}, {X: cmd.X2, Y: cmd.Y2}}
		strokeSegments(dst, dashSegments(pts, cmd.Dash, cmd.DashOffset), w, clr)
	case geoboard.CommandRing:
		if len(cmd.Dash) == 0 {
			vector.StrokeCircle(dst, float32(cmd.X1), float32(cmd.Y1), float32(cmd.Radius), w, clr, true)
			return
		}
		pts := arcPoints(cmd.X1, cmd.Y1, cmd.Radius, 0, 2*math.Pi)
		strokeSegments(dst, dashSegments(pts, cmd.Dash, cmd.DashOffset), w, clr)
	case geoboard.CommandDisc:
		vector.DrawFilledCircle(dst, float32(cmd.X1), float32(cmd.Y1), float32(cmd.Radius), clr, true)
	case geoboard.CommandArc:
		if cmd.Sweep <= 0 {
			return
		}
		pts := arcPoints(cmd.X1, cmd.Y1, cmd.Radius, cmd.StartAngle, cmd.Sweep)
		strokeSegments(dst, dashSegments(pts, cmd.Dash, cmd.DashOffset), w, clr)
	case geoboard.CommandText:
		face := g.face(cmd.FontSize)
		op := &text.DrawOptions{}
		// Commands position text by baseline; text/v2 draws from the line top.
		op.GeoM.Translate(cmd.X1, cmd.Y1-face.Metrics().HAscent)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, cmd.Text, face, op)
	}
}

func (g *game) face(size float64) *text.GoTextFace {
	if f, ok := g.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: g.faceSource, Size: size}
	g.faces[size] = f
	return f
}

func strokeSegments(dst *ebiten.Image, segs []segment, width float32, clr color.Color) {
	for _, s := range segs {
		vector.StrokeLine(dst, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), width, clr, true)
	}
}

func toColor(c geoboard.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
