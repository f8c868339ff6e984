// Package display turns status text into frames for the 1.3" SH1106 OLED.
//
// The pipeline is RenderLines → Rotate180 → Pack → Transport.WritePages.
// Frames are drawn into an image1bit.VerticalLSB where image1bit.On is ink;
// Pack converts that into the controller's page layout.
package display

import (
	"image"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// NewFrame returns a blank w×h 1-bit image.
func NewFrame(w, h int) *image1bit.VerticalLSB {
	return image1bit.NewVerticalLSB(image.Rect(0, 0, w, h))
}

// Rotate180 returns a copy of img turned upside down, for the panel's
// inverted mounting.
func Rotate180(img *image1bit.VerticalLSB) *image1bit.VerticalLSB {
	b := img.Bounds()
	out := image1bit.NewVerticalLSB(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetBit(b.Max.X-1-(x-b.Min.X), b.Max.Y-1-(y-b.Min.Y), img.BitAt(x, y))
		}
	}
	return out
}
