package bggen

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

const (
	// CanvasWidth and CanvasHeight are the fixed dimensions of bg.png.
	CanvasWidth  = 400
	CanvasHeight = 300

	// DotStride is the grid spacing of the decorative dots on both axes.
	DotStride = 40
	// DotRadius is the radius of each decorative dot in pixels.
	DotRadius = 5
	// DotAlpha is the opacity of the white dot fill.
	DotAlpha = 50
)

// ChannelRange is a linear interpolation range for one color channel.
type ChannelRange struct {
	Start int
	End   int
}

// At returns the channel value for ratio in [0, 1), truncated and clamped to [0, 255].
func (x ChannelRange) At(ratio float64) uint8 {
	v := int(float64(x.Start) + float64(x.End-x.Start)*ratio)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// Gradient describes a vertical gradient, one range per channel.
type Gradient struct {
	R ChannelRange
	G ChannelRange
	B ChannelRange
}

// DefaultGradient runs from dark blue at the top to light blue at the bottom.
var DefaultGradient = Gradient{
	R: ChannelRange{Start: 30, End: 100},
	G: ChannelRange{Start: 60, End: 150},
	B: ChannelRange{Start: 120, End: 200},
}

// RowColor returns the color of row y on a canvas of the given height.
func (x Gradient) RowColor(y, height int) color.RGBA {
	ratio := float64(y) / float64(height)
	return color.RGBA{
		R: x.R.At(ratio),
		G: x.G.At(ratio),
		B: x.B.At(ratio),
		A: 0xff,
	}
}

// Fill paints every row of dst with its gradient color.
func (x Gradient) Fill(dst *image.RGBA) {
	b := dst.Bounds()
	h := b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		c := x.RowColor(y-b.Min.Y, h)
		row := dst.Pix[dst.PixOffset(b.Min.X, y):dst.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}

// DotOverlay is a regular grid of semi-transparent circular markers.
type DotOverlay struct {
	Stride int
	Radius int
	Fill   color.NRGBA
}

// DefaultDotOverlay places a faint white dot every 40 pixels.
var DefaultDotOverlay = DotOverlay{
	Stride: DotStride,
	Radius: DotRadius,
	Fill:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: DotAlpha},
}

// mask rasterizes a single dot covering the pixel-inclusive box
// [-Radius, +Radius] around its center pixel at (Radius, Radius).
func (x DotOverlay) mask() *image.Alpha {
	size := 2*x.Radius + 1
	mask := image.NewAlpha(image.Rect(0, 0, size, size))

	// Bezier control distance for a quarter circle.
	const kappa = 0.5522847498
	c := float32(size) / 2
	r := float32(size) / 2
	k := r * kappa

	z := vector.NewRasterizer(size, size)
	z.MoveTo(c+r, c)
	z.CubeTo(c+r, c+k, c+k, c+r, c, c+r)
	z.CubeTo(c-k, c+r, c-r, c+k, c-r, c)
	z.CubeTo(c-r, c-k, c-k, c-r, c, c-r)
	z.CubeTo(c+k, c-r, c+r, c-k, c+r, c)
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return mask
}

// Apply composites the dot grid onto dst with alpha-over blending.
// Dots that extend past the edges of dst are clipped.
func (x DotOverlay) Apply(dst *image.RGBA) {
	if x.Stride <= 0 {
		return
	}

	mask := x.mask()
	src := image.NewUniform(x.Fill)
	b := dst.Bounds()

	for i := b.Min.X; i < b.Max.X; i += x.Stride {
		for j := b.Min.Y; j < b.Max.Y; j += x.Stride {
			r := mask.Bounds().Add(image.Pt(i-x.Radius, j-x.Radius))
			draw.DrawMask(dst, r, src, image.Point{}, mask, image.Point{}, draw.Over)
		}
	}
}

// Render builds the background canvas: gradient fill, dot overlay, then flatten.
func Render(width, height int, gradient Gradient, dots DotOverlay) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	gradient.Fill(canvas)
	dots.Apply(canvas)
	return flatten(canvas)
}

// flatten composites src over opaque black so the result carries no transparency.
func flatten(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.Black, image.Point{}, draw.Src)
	draw.Draw(dst, b, src, b.Min, draw.Over)
	return dst
}
