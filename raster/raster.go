// Package raster draws geoboard frames into images with the gogpu/gg
// software rasterizer. It needs no window or GPU and is used for headless
// rendering, PNG export and tests.
package raster

import (
	"fmt"
	"image"
	"io"
	"math"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/phanxgames/geoboard"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas is a fixed-size drawing surface. It implements geoboard.Renderer.
type Canvas struct {
	// Background fills the canvas before each Execute.
	Background geoboard.Color

	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face
}

// New creates a width x height canvas using the Go Regular font for text.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("raster: load font: %w", err)
	}
	return &Canvas{
		Background: geoboard.ColorBackground,
		dc:         gg.NewContext(width, height),
		source:     src,
		faces:      make(map[float64]text.Face),
	}, nil
}

// Render builds the frame's commands and executes them.
func (c *Canvas) Render(f *geoboard.Frame) error {
	t0 := time.Now()
	cmds := geoboard.BuildCommands(f)
	build := time.Since(t0)

	t0 = time.Now()
	if err := c.Execute(cmds); err != nil {
		return err
	}

	stats := geoboard.NewFrameStats(f, cmds)
	stats.BuildTime = build
	stats.DrawTime = time.Since(t0)
	geoboard.LogFrameStats(stats)
	return nil
}

// Execute clears the canvas and draws cmds in order.
func (c *Canvas) Execute(cmds []geoboard.RenderCommand) error {
	c.dc.ClearWithColor(toRGBA(c.Background))
	for i := range cmds {
		if err := c.draw(&cmds[i]); err != nil {
			return fmt.Errorf("raster: command %d: %w", i, err)
		}
	}
	return nil
}

func (c *Canvas) draw(cmd *geoboard.RenderCommand) error {
	col := cmd.Color
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)

	switch cmd.Type {
	case geoboard.CommandLine:
		c.setStroke(cmd)
		c.dc.DrawLine(cmd.X1, cmd.Y1, cmd.X2, cmd.Y2)
		return c.dc.Stroke()
	case geoboard.CommandRing:
		c.setStroke(cmd)
		c.dc.DrawCircle(cmd.X1, cmd.Y1, cmd.Radius)
		return c.dc.Stroke()
	case geoboard.CommandDisc:
		c.dc.DrawCircle(cmd.X1, cmd.Y1, cmd.Radius)
		return c.dc.Fill()
	case geoboard.CommandArc:
		if cmd.Sweep <= 0 {
			return nil
		}
		c.setStroke(cmd)
		c.dc.ClearPath()
		c.dc.DrawArc(cmd.X1, cmd.Y1, cmd.Radius, cmd.StartAngle, cmd.StartAngle+math.Min(cmd.Sweep, 2*math.Pi))
		return c.dc.Stroke()
	case geoboard.CommandText:
		c.dc.SetFont(c.face(cmd.FontSize))
		c.dc.DrawString(cmd.Text, cmd.X1, cmd.Y1)
	}
	return nil
}

func (c *Canvas) setStroke(cmd *geoboard.RenderCommand) {
	c.dc.SetLineWidth(cmd.Width)
	if len(cmd.Dash) == 0 {
		c.dc.SetDash()
		return
	}
	c.dc.SetDash(cmd.Dash...)
	c.dc.SetDashOffset(cmd.DashOffset)
}

// face returns a cached face for size.
func (c *Canvas) face(size float64) text.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := c.source.Face(size)
	c.faces[size] = f
	return f
}

// Image returns the canvas contents.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode: %w", err)
	}
	return nil
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

func toRGBA(col geoboard.Color) gg.RGBA {
	return gg.RGBA{R: col.R, G: col.G, B: col.B, A: col.A}
}
