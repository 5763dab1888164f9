package render

import (
	"image/color"
	"math/rand"
	"strconv"
	"strings"
)

// ResolveColor parses s as a hex RGB color ("ff0000" or "#FF0000") and
// returns the decoded triple. An empty string or any string that fails to
// parse yields a uniformly random opaque color instead; the parse error is
// never surfaced. The global rand source is safe for concurrent use, so
// requests need no coordination.
func ResolveColor(s string) color.RGBA {
	s = strings.ToLower(strings.TrimPrefix(s, "#"))
	if len(s) < 6 {
		return randomColor()
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return randomColor()
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}
}

func randomColor() color.RGBA {
	return color.RGBA{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
		A: 255,
	}
}
