package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// clearedBits returns the (index, bit) of every zero bit in buf.
func clearedBits(buf []byte) [][2]int {
	var out [][2]int
	for i, b := range buf {
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) == 0 {
				out = append(out, [2]int{i, bit})
			}
		}
	}
	return out
}

func TestPackBlankFrame(t *testing.T) {
	buf := Pack(NewFrame(Width, Height), Width, Height)

	require.Len(t, buf, (Width/8)*Height)
	assert.Empty(t, clearedBits(buf))
}

func TestPackSinglePixel(t *testing.T) {
	tests := []struct {
		x, y      int
		wantIndex int
		wantBit   int
	}{
		{0, 0, 0, 0},
		{5, 10, 5 + 1*Width, 2},
		{127, 63, 127 + 7*Width, 7},
		{64, 8, 64 + 1*Width, 0},
	}

	for _, tt := range tests {
		r := NewFrame(Width, Height)
		r.SetBit(tt.x, tt.y, image1bit.On)

		buf := Pack(r, Width, Height)
		require.Len(t, buf, (Width/8)*Height)
		assert.Equal(t, [][2]int{{tt.wantIndex, tt.wantBit}}, clearedBits(buf), "pixel (%d,%d)", tt.x, tt.y)
	}
}

func TestPackPageColumn(t *testing.T) {
	// A full 8-pixel column inside page 2 clears a whole byte.
	r := NewFrame(Width, Height)
	for y := 16; y < 24; y++ {
		r.SetBit(10, y, image1bit.On)
	}

	buf := Pack(r, Width, Height)
	assert.Equal(t, byte(0x00), buf[10+2*Width])
	assert.Len(t, clearedBits(buf), 8)
}

func TestPackTransposed(t *testing.T) {
	tests := []struct {
		name      string
		x, y      int
		wantIndex int
		wantBit   int
	}{
		// newx=0, newy=63 → 0 + 7*128, bit 0%8
		{"origin", 0, 0, 7 * Width, 0},
		// newx=127, newy=0 → 127, bit 127%8
		{"far corner", 63, 127, 127, 7},
		// newx=10, newy=60 → 10 + 7*128, bit 10%8
		{"inner", 3, 10, 10 + 7*Width, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewFrame(Height, Width) // 64×128 portrait
			r.SetBit(tt.x, tt.y, image1bit.On)

			buf := Pack(r, Width, Height)
			require.Len(t, buf, (Width/8)*Height)
			assert.Equal(t, [][2]int{{tt.wantIndex, tt.wantBit}}, clearedBits(buf))
		})
	}
}

func TestPackMismatchedSizeIsBlank(t *testing.T) {
	r := NewFrame(100, 50)
	for y := 0; y < 50; y++ {
		for x := 0; x < 100; x++ {
			r.SetBit(x, y, image1bit.On)
		}
	}

	buf := Pack(r, Width, Height)
	require.Len(t, buf, (Width/8)*Height)
	assert.Equal(t, Blank(Width, Height), buf)
}

func TestRotate180(t *testing.T) {
	r := NewFrame(4, 3)
	r.SetBit(0, 0, image1bit.On)
	r.SetBit(1, 2, image1bit.On)

	rot := Rotate180(r)
	assert.Equal(t, image1bit.On, rot.BitAt(3, 2))
	assert.Equal(t, image1bit.On, rot.BitAt(2, 0))
	assert.Equal(t, image1bit.Off, rot.BitAt(0, 0))
	assert.Equal(t, image1bit.On, r.BitAt(0, 0), "original must be untouched")
}

func TestPackRotatedFrameCorners(t *testing.T) {
	r := NewFrame(Width, Height)
	r.SetBit(0, 0, image1bit.On)

	buf := Pack(Rotate180(r), Width, Height)
	assert.Equal(t, [][2]int{{Width - 1 + 7*Width, 7}}, clearedBits(buf))
}
