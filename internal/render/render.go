// Package render produces share thumbnail PNGs: a vertical two-color
// gradient with a text string centered on top in an outlined bold face.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
)

// strokeWidth is the outline thickness drawn around each glyph.
const strokeWidth = 3

// Renderer draws thumbnails with a single bold face parsed once at startup.
// It is safe for concurrent use; the parsed font is read-only and each call
// builds its own sized face.
type Renderer struct {
	font *truetype.Font
}

// NewRenderer parses the bundled bold font. A parse failure is fatal for the
// service and should abort startup.
func NewRenderer() (*Renderer, error) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bundled font: %w", err)
	}
	return &Renderer{font: f}, nil
}

// SanitizeText replaces underscores and hyphens with spaces. Applied once at
// the request boundary, before sizing and drawing.
func SanitizeText(s string) string {
	return strings.NewReplacer("_", " ", "-", " ").Replace(s)
}

// FontSize computes the point size for text: maximal (100) at 20 characters
// and strictly smaller the further the length deviates from 20 in either
// direction. Clamped to 1 so extreme lengths still produce a valid face.
func FontSize(text string) int {
	length := utf8.RuneCountInString(text)
	size := int(100 / (1 + 0.05*math.Abs(float64(20-length))))
	if size < 1 {
		size = 1
	}
	return size
}

// Render produces PNG bytes for the given dimensions, gradient colors and
// already-sanitized text. Dimensions and colors must be normalized by the
// caller; Render itself never rejects its input.
func (r *Renderer) Render(width, height int, top, bottom color.RGBA, text string) ([]byte, error) {
	img := Gradient(width, height, top, bottom)
	dc := gg.NewContextForRGBA(img)

	face := truetype.NewFace(r.font, &truetype.Options{Size: float64(FontSize(text))})
	defer face.Close()
	dc.SetFontFace(face)

	cx := float64(width) / 2
	cy := float64(height) / 2

	// Outline first so the white fill sits on top of it.
	dc.SetColor(color.Black)
	for dy := -strokeWidth; dy <= strokeWidth; dy++ {
		for dx := -strokeWidth; dx <= strokeWidth; dx++ {
			if dx*dx+dy*dy > strokeWidth*strokeWidth {
				continue
			}
			dc.DrawStringAnchored(text, cx+float64(dx), cy+float64(dy), 0.5, 0.5)
		}
	}
	dc.SetColor(color.White)
	dc.DrawStringAnchored(text, cx, cy, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
