package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/linked-ring-to-line/internal/ringline"
)

var whiteSubImage *ebiten.Image

// strokeSource returns the 1x1 white source image used for solid strokes.
func strokeSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// surface implements ringline.Surface on top of an ebiten image.
type surface struct {
	dst       *ebiten.Image
	transform transformStack

	vertices []ebiten.Vertex
	indices  []uint16
}

func (s *surface) begin(dst *ebiten.Image) {
	s.dst = dst
	s.transform.reset()
}

func (s *surface) Size() (float32, float32) {
	b := s.dst.Bounds()
	return float32(b.Dx()), float32(b.Dy())
}

func (s *surface) Fill(c color.Color)       { s.dst.Fill(c) }
func (s *surface) Save()                    { s.transform.save() }
func (s *surface) Restore()                 { s.transform.restore() }
func (s *surface) Translate(dx, dy float32) { s.transform.translate(dx, dy) }

func (s *surface) StrokePath(points []ringline.Point, stroke ringline.Stroke) {
	if len(points) < 2 || stroke.Width <= 0 {
		return
	}

	var path vector.Path
	path.MoveTo(s.transform.apply(points[0]))
	for _, p := range points[1:] {
		path.LineTo(s.transform.apply(p))
	}

	op := &vector.StrokeOptions{
		Width:    stroke.Width,
		LineCap:  lineCap(stroke.Cap),
		LineJoin: vector.LineJoinRound,
	}
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)

	r, g, b, a := vertexColor(stroke.Color)
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}

	s.dst.DrawTriangles(s.vertices, s.indices, strokeSource(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
