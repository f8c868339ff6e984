package display

import "periph.io/x/devices/v3/ssd1306/image1bit"

// Pack converts img into the controller's page layout for a width×height
// panel: (width/8)*height bytes, each byte one column of an 8-row page, bit
// n = row n of the page. Bits start at 1 (off); every image1bit.On pixel
// clears one bit.
//
// An image of height×width (portrait content on the landscape panel) is
// mapped with newx = y, newy = height-x-1. The bit within the byte stays
// keyed by the source y. Any other image size yields a blank buffer.
func Pack(img *image1bit.VerticalLSB, width, height int) []byte {
	buf := Blank(width, height)
	b := img.Bounds()

	switch {
	case b.Dx() == width && b.Dy() == height:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if img.BitAt(b.Min.X+x, b.Min.Y+y) {
					buf[x+(y/8)*width] &^= 1 << (y % 8)
				}
			}
		}
	case b.Dx() == height && b.Dy() == width:
		for y := 0; y < width; y++ {
			for x := 0; x < height; x++ {
				if !img.BitAt(b.Min.X+x, b.Min.Y+y) {
					continue
				}
				newx := y
				newy := height - x - 1
				buf[newx+(newy/8)*width] &^= 1 << (y % 8)
			}
		}
	default:
		// Size matches neither orientation: leave the frame blank.
	}

	return buf
}

// Blank returns an all-off frame for a width×height panel.
func Blank(width, height int) []byte {
	buf := make([]byte, (width/8)*height)
	for i := range buf {
		buf[i] = 0xFF
	}
	return buf
}
