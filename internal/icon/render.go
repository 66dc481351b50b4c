package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/graodegente/pwa-icons/internal/fontchain"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	Primary = color.NRGBA{R: 0x00, G: 0xBF, B: 0xB3, A: 0xFF} // store teal #00BFB3
	White   = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Label is the text drawn on every icon.
const Label = "GDG"

// FaceSource hands out a face for a point size. The caller closes it.
type FaceSource interface {
	Face(size float64) fontchain.Resolved
}

// Renderer draws the store icon: a full-bleed background, an inset disc and
// a centered label.
type Renderer struct {
	Background color.NRGBA
	Disc       color.NRGBA
	Text       color.NRGBA
	Label      string
	Fonts      FaceSource
}

// NewRenderer returns a renderer with the store colors and label. A nil
// fonts uses fontchain.Default.
func NewRenderer(fonts FaceSource) *Renderer {
	if fonts == nil {
		fonts = fontchain.Default()
	}
	return &Renderer{
		Background: Primary,
		Disc:       White,
		Text:       Primary,
		Label:      Label,
		Fonts:      fonts,
	}
}

// Render returns a size×size image. Non-positive sizes give an empty image.
func (r *Renderer) Render(size int) *image.NRGBA {
	if size <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
	fillDisc(img, size/10, r.Disc)
	if r.Label != "" && r.Fonts != nil && size >= 3 {
		r.drawLabel(img, size)
	}
	return img
}

// PNG renders size and encodes the result.
func (r *Renderer) PNG(size int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Render(size)); err != nil {
		return nil, fmt.Errorf("encode png %dx%d: %w", size, size, err)
	}
	return buf.Bytes(), nil
}

// fillDisc fills the circle inscribed in the image shrunk by inset on every
// side. Pixels are sampled at their centers with no anti-aliasing, so the
// filled region spans exactly [inset, size-inset) on both axes.
func fillDisc(img *image.NRGBA, inset int, c color.NRGBA) {
	size := img.Bounds().Dx()
	center := float64(size) / 2
	radius := center - float64(inset)

	for y := inset; y < size-inset; y++ {
		for x := inset; x < size-inset; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			if math.Hypot(px-center, py-center) <= radius {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// drawLabel centers the label on its ink bounds, then lifts it by size/20.
func (r *Renderer) drawLabel(img *image.NRGBA, size int) {
	res := r.Fonts.Face(float64(size / 3))
	face := res.Face
	defer face.Close()

	bounds, _ := font.BoundString(face, r.Label)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()

	x := (size-w)/2 - bounds.Min.X.Floor()
	y := (size-h)/2 - bounds.Min.Y.Floor() - size/20

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.Text),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(r.Label)
}
