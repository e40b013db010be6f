package starfield

import (
	"errors"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrNoSurface is returned by hosts that cannot provide a drawing context.
var ErrNoSurface = errors.New("starfield: no drawing surface available")

// Surface is a single 2D immediate-mode drawing target sized to the viewport.
// Coordinates are in surface units with the origin at the top-left.
type Surface interface {
	// Size returns the current surface dimensions.
	Size() (width, height int)
	// Resize changes the surface dimensions. Contents are undefined afterwards.
	Resize(width, height int)
	// Fill paints the whole surface with an opaque color.
	Fill(c Color)
	// FillCircle paints a filled circle centered at (cx, cy).
	FillCircle(cx, cy, radius float64, c Color)
	// StrokeLine strokes a solid line segment.
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	// StrokeGradient strokes a line segment whose color runs linearly from
	// `from` at (x0, y0) to `to` at (x1, y1).
	StrokeGradient(x0, y0, x1, y1, width float64, from, to Color)
	// Dispose releases the surface. It must not be drawn to afterwards.
	Dispose()
}

// ImageSurface draws into an offscreen ebiten.Image owned by the component.
// Hosts composite Image() onto the screen each frame.
type ImageSurface struct {
	image  *ebiten.Image
	width  int
	height int

	// Gradient quad scratch buffers, reused every stroke.
	verts [4]ebiten.Vertex
	inds  [6]uint16
	opts  ebiten.DrawTrianglesOptions
}

// NewImageSurface allocates an offscreen image of the given size.
func NewImageSurface(width, height int) *ImageSurface {
	s := &ImageSurface{
		inds: [6]uint16{0, 1, 2, 0, 2, 3},
		opts: ebiten.DrawTrianglesOptions{
			ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
			AntiAlias:      true,
		},
	}
	s.Resize(width, height)
	return s
}

// Image returns the backing image, or nil after Dispose.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.image
}

// Size returns the surface dimensions.
func (s *ImageSurface) Size() (int, int) {
	return s.width, s.height
}

// Resize reallocates the backing image when the dimensions change.
func (s *ImageSurface) Resize(width, height int) {
	width = max(width, 1)
	height = max(height, 1)
	if s.image != nil && s.width == width && s.height == height {
		return
	}
	if s.image != nil {
		s.image.Deallocate()
	}
	s.image = ebiten.NewImage(width, height)
	s.width = width
	s.height = height
}

// Fill paints the whole image.
func (s *ImageSurface) Fill(c Color) {
	if s.image == nil {
		return
	}
	s.image.Fill(c.premultiplied())
}

// FillCircle paints an antialiased filled circle.
func (s *ImageSurface) FillCircle(cx, cy, radius float64, c Color) {
	if s.image == nil || radius <= 0 {
		return
	}
	vector.FillCircle(s.image, float32(cx), float32(cy), float32(radius), c.premultiplied(), true)
}

// StrokeLine strokes an antialiased line segment.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	if s.image == nil || width <= 0 {
		return
	}
	vector.StrokeLine(s.image, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.premultiplied(), true)
}

// StrokeGradient draws the segment as a quad with per-vertex colors over the
// white pixel, letting the rasterizer interpolate from head to tail.
func (s *ImageSurface) StrokeGradient(x0, y0, x1, y1, width float64, from, to Color) {
	if s.image == nil || width <= 0 {
		return
	}
	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Half-width normal.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	setVertex(&s.verts[0], x0+nx, y0+ny, from)
	setVertex(&s.verts[1], x0-nx, y0-ny, from)
	setVertex(&s.verts[2], x1-nx, y1-ny, to)
	setVertex(&s.verts[3], x1+nx, y1+ny, to)

	s.image.DrawTriangles(s.verts[:], s.inds[:], ensureWhitePixel(), &s.opts)
}

// Dispose deallocates the backing image.
func (s *ImageSurface) Dispose() {
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
}

// setVertex writes a premultiplied vertex sampling the center of the white pixel.
func setVertex(v *ebiten.Vertex, x, y float64, c Color) {
	a := clamp01(c.A)
	*v = ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(clamp01(c.R) * a),
		ColorG: float32(clamp01(c.G) * a),
		ColorB: float32(clamp01(c.B) * a),
		ColorA: float32(a),
	}
}

// --- White pixel singleton (no sync.Once, the render loop is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the texture for untextured gradient quads.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
