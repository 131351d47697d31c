package sgr

import "math"

// HSLToRGB converts an HSL color to 8-bit RGB channels.
// h is in degrees [0,360]; s and l are in [0,1]. Any input outside its
// range yields black (0,0,0) rather than an error.
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	if !inRange(h, s, l) {
		return 0, 0, 0
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	r1, g1, b1 := hueSector(h, c, x)
	return channel(r1 + m), channel(g1 + m), channel(b1 + m)
}

// HSVToRGB converts an HSV color to 8-bit RGB channels.
// h is in degrees [0,360]; s and v are in [0,1]. Any input outside its
// range yields black (0,0,0) rather than an error.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	if !inRange(h, s, v) {
		return 0, 0, 0
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	r1, g1, b1 := hueSector(h, c, x)
	return channel(r1 + m), channel(g1 + m), channel(b1 + m)
}

func inRange(h, s, lv float64) bool {
	return h >= 0 && h <= 360 && s >= 0 && s <= 1 && lv >= 0 && lv <= 1
}

// hueSector picks the chroma layout for the 60-degree sector containing h.
func hueSector(h, c, x float64) (r, g, b float64) {
	switch {
	case h < 60:
		return c, x, 0
	case h < 120:
		return x, c, 0
	case h < 180:
		return 0, c, x
	case h < 240:
		return 0, x, c
	case h < 300:
		return x, 0, c
	default:
		return c, 0, x
	}
}

// channel scales a [0,1] value to a rounded 8-bit channel.
func channel(v float64) uint8 {
	v = math.Min(math.Max(v, 0), 1)
	return uint8(math.Round(v * 255))
}
