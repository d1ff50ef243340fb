package scoring

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// parseColor accepts #rgb, #rgba, #rrggbb, #rrggbbaa, rgb()/rgba() and CSS
// color names. Alpha is ignored. ok is false for anything it cannot read,
// including "transparent".
func parseColor(s string) (c color.RGBA, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return c, false
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	default:
		nc, found := colornames.Map[s]
		return nc, found
	}
}

func parseHex(x string) (color.RGBA, bool) {
	switch len(x) {
	case 3, 4:
		var ch [3]uint8
		for i := range ch {
			v, err := strconv.ParseUint(x[i:i+1], 16, 8)
			if err != nil {
				return color.RGBA{}, false
			}
			ch[i] = uint8(v<<4 | v)
		}
		return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}, true
	case 6, 8:
		var ch [3]uint8
		for i := range ch {
			v, err := strconv.ParseUint(x[2*i:2*i+2], 16, 8)
			if err != nil {
				return color.RGBA{}, false
			}
			ch[i] = uint8(v)
		}
		return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}, true
	default:
		return color.RGBA{}, false
	}
}

// parseRGBFunc reads rgb(r, g, b) and rgba(r, g, b, a) with 0-255 channels.
func parseRGBFunc(s string) (color.RGBA, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return color.RGBA{}, false
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, false
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, false
		}
		ch[i] = uint8(math.Round(v))
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}, true
}

// relativeLuminance implements the WCAG 2.x definition.
func relativeLuminance(c color.RGBA) float64 {
	linear := func(v uint8) float64 {
		s := float64(v) / 255
		if s <= 0.03928 {
			return s / 12.92
		}
		return math.Pow((s+0.055)/1.055, 2.4)
	}
	return 0.2126*linear(c.R) + 0.7152*linear(c.G) + 0.0722*linear(c.B)
}

// contrastRatio returns (L1+0.05)/(L2+0.05) with L1 the lighter luminance.
// The result lies in [1, 21].
func contrastRatio(a, b color.RGBA) float64 {
	la, lb := relativeLuminance(a), relativeLuminance(b)
	if lb > la {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
