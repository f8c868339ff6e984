package display

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Text layout. FontSize is in pixels (72 DPI).
const (
	LineHeight  = 12
	LeftPadding = 1
	FontSize    = 9
)

// textFace is the proportional face every line is drawn with. At FontSize
// the widest composed status line stays inside a 128px row.
var textFace = mustFace()

func mustFace() font.Face {
	face, err := NewFace(FontSize)
	if err != nil {
		panic(err)
	}
	return face
}

// NewFace returns Go Regular at size pixels, hinted to whole pixels.
func NewFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse goregular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// MeasureLine returns the width in pixels that line occupies when drawn.
func MeasureLine(line string) int {
	return font.MeasureString(textFace, line).Ceil()
}

// RenderLines draws each line at row i*LineHeight onto a blank w×h frame.
// Text running past the edges is clipped.
func RenderLines(lines []string, w, h int) *image1bit.VerticalLSB {
	img := NewFrame(w, h)
	ascent := textFace.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(image1bit.On),
		Face: textFace,
	}
	for i, line := range lines {
		d.Dot = fixed.P(LeftPadding, i*LineHeight+ascent)
		d.DrawString(line)
	}
	return img
}
