package config

// PlatformRect is an axis-aligned platform rectangle in screen pixels.
type PlatformRect struct {
	X, Y, Width, Height float64
}

// Platforms returns the level layout as an ordered list. The order is
// significant: landing resolution checks platforms first to last, and the
// earliest listed platform wins when several overlap the player's span.
func Platforms() []PlatformRect {
	g := float64(Level.GroundLevel)
	w := float64(Level.PlatformWidth)
	h := float64(Level.PlatformHeight)

	return []PlatformRect{
		{0, g - h, w, h},
		{200, g - 100, w, h},
		{0, g - 160, w, h},
		{200, g - 240, w, h},
		{0, g - 320, w, h},
		{200, g - 400, w, h},
		{400, g - 480, w, h},
		{600, g - 160, w, h},
	}
}
