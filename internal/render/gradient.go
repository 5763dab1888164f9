package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Gradient renders a vertical gradient from top to bottom. Row y is filled
// with a single color interpolated at t = y/height, channels truncated to
// integers, so row 0 is exactly top and the final row stops just short of
// bottom (t never reaches 1).
func Gradient(width, height int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height)
		row := color.RGBA{
			R: uint8(float64(top.R)*(1-t) + float64(bottom.R)*t),
			G: uint8(float64(top.G)*(1-t) + float64(bottom.G)*t),
			B: uint8(float64(top.B)*(1-t) + float64(bottom.B)*t),
			A: 255,
		}
		draw.Draw(img, image.Rect(0, y, width, y+1), image.NewUniform(row), image.Point{}, draw.Src)
	}
	return img
}
