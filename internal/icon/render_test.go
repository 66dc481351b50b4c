package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/graodegente/pwa-icons/internal/fontchain"
)

// embeddedOnly pins rendering to the compiled-in font.
var embeddedOnly = &fontchain.Chain{}

var black = color.NRGBA{A: 0xFF}

// inked renders the label in black so it stands out on both the background
// and the disc.
func inked() *Renderer {
	r := NewRenderer(embeddedOnly)
	r.Text = black
	return r
}

var sizes = []int{72, 144, 192, 512}

func TestRenderDimensions(t *testing.T) {
	r := NewRenderer(embeddedOnly)
	for _, size := range append(sizes, 1, 9, 75) {
		img := r.Render(size)
		if got := img.Bounds(); got != image.Rect(0, 0, size, size) {
			t.Errorf("Render(%d).Bounds() = %v, want %dx%d", size, got, size, size)
		}
	}
}

func TestRenderNonPositive(t *testing.T) {
	r := NewRenderer(embeddedOnly)
	for _, size := range []int{0, -5} {
		if got := r.Render(size).Bounds(); !got.Empty() {
			t.Errorf("Render(%d).Bounds() = %v, want empty", size, got)
		}
	}
}

func TestDiscInset(t *testing.T) {
	r := NewRenderer(embeddedOnly)
	r.Label = ""

	for _, size := range append(sizes, 75, 101) {
		t.Run("", func(t *testing.T) {
			img := r.Render(size)
			minX, minY, maxX, maxY := size, size, -1, -1
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					if img.NRGBAAt(x, y) != White {
						continue
					}
					minX, minY = min(minX, x), min(minY, y)
					maxX, maxY = max(maxX, x), max(maxY, y)
				}
			}
			inset := size / 10
			if minX != inset || minY != inset {
				t.Errorf("size %d: disc starts at (%d,%d), want (%d,%d)", size, minX, minY, inset, inset)
			}
			if maxX != size-inset-1 || maxY != size-inset-1 {
				t.Errorf("size %d: disc ends at (%d,%d), want (%d,%d)", size, maxX, maxY, size-inset-1, size-inset-1)
			}
		})
	}
}

func TestBackgroundAndCorners(t *testing.T) {
	r := NewRenderer(embeddedOnly)
	for _, size := range sizes {
		img := r.Render(size)
		last := size - 1
		for _, p := range []image.Point{image.Pt(0, 0), image.Pt(last, 0), image.Pt(0, last), image.Pt(last, last)} {
			if got := img.NRGBAAt(p.X, p.Y); got != Primary {
				t.Errorf("size %d: pixel %v = %v, want %v", size, p, got, Primary)
			}
		}
	}
}

func TestLabelDrawnInsideDisc(t *testing.T) {
	plain := NewRenderer(embeddedOnly)
	plain.Label = ""
	labeled := inked()

	for _, size := range sizes {
		a := plain.Render(size)
		b := labeled.Render(size)

		inset := size / 10
		changed := 0
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if a.NRGBAAt(x, y) == b.NRGBAAt(x, y) {
					continue
				}
				changed++
				if x < inset || y < inset || x >= size-inset || y >= size-inset {
					t.Fatalf("size %d: label ink at (%d,%d) outside disc", size, x, y)
				}
			}
		}
		if changed == 0 {
			t.Errorf("size %d: label left no ink", size)
		}
	}
}

func TestLabelLiftedAboveCenter(t *testing.T) {
	plain := NewRenderer(embeddedOnly)
	plain.Label = ""
	labeled := inked()

	const size = 512
	a := plain.Render(size)
	b := labeled.Render(size)

	top, bottom := size, -1
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if a.NRGBAAt(x, y) != b.NRGBAAt(x, y) {
				top, bottom = min(top, y), max(bottom, y)
			}
		}
	}
	mid := (top + bottom) / 2
	want := size/2 - size/20
	if d := mid - want; d < -2 || d > 2 {
		t.Errorf("label ink centered at y=%d, want %d±2", mid, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := NewRenderer(embeddedOnly)
	for _, size := range sizes {
		a, b := r.Render(size), r.Render(size)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("Render(%d) differs between calls", size)
		}
	}
}

func TestPNG(t *testing.T) {
	r := NewRenderer(embeddedOnly)
	for _, size := range sizes {
		data, err := r.PNG(size)
		if err != nil {
			t.Fatalf("PNG(%d) err = %v", size, err)
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("PNG(%d) decode: %v", size, err)
		}
		if cfg.Width != size || cfg.Height != size {
			t.Errorf("PNG(%d) decoded as %dx%d", size, cfg.Width, cfg.Height)
		}
	}
}
