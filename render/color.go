package render

import (
	"image/color"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

var (
	ColorBackground = colornames.Lightgreen
	ColorObstacle   = colornames.Red
	ColorLine       = colornames.Black
	ColorEye        = colornames.Black
	ColorUnknown    = HexToRGBA(0x444444)
)

func HexToRGBA(u uint32) color.RGBA {
	return color.RGBA{
		R: uint8(0xff & (u >> 16)),
		G: uint8(0xff & (u >> 8)),
		B: uint8(0xff & u),
		A: 0xff,
	}
}

// ColorByName resolves a color name such as "light green" or "purple", or
// a "#rrggbb" value.
func ColorByName(name string) (color.RGBA, bool) {
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		u, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil {
			return ColorUnknown, false
		}
		return HexToRGBA(uint32(u)), true
	}
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	c, ok := colornames.Map[key]
	if !ok {
		return ColorUnknown, false
	}
	return c, true
}

func colorOrUnknown(name string) color.RGBA {
	c, ok := ColorByName(name)
	if !ok {
		log.Warnf("unknown color %q", name)
	}
	return c
}
