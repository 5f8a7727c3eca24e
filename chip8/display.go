package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Display is the monochrome framebuffer. Pixels hold 0 or 1 and are
// mutated only by the clear-screen and draw-sprite opcodes.
type Display struct {
	pixels [DisplayWidth * DisplayHeight]byte
}

// At returns the pixel at (x, y). Coordinates wrap around the edges.
func (d *Display) At(x, y int) byte {
	return d.pixels[y%DisplayHeight*DisplayWidth+x%DisplayWidth]
}

// Pixels exposes the framebuffer as a flat row-major grid for the
// rendering layer. The renderer must treat it as read-only.
func (d *Display) Pixels() []byte {
	return d.pixels[:]
}

// Clear resets every pixel to 0.
func (d *Display) Clear() {
	d.pixels = [DisplayWidth * DisplayHeight]byte{}
}

// xor flips the pixel at (x, y), wrapping coordinates, and reports
// whether a set pixel was turned off.
func (d *Display) xor(x, y int) bool {
	i := y%DisplayHeight*DisplayWidth + x%DisplayWidth
	d.pixels[i] ^= 1
	return d.pixels[i] == 0
}
