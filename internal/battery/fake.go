package battery

import "fmt"

// FakeReader returns scripted register words for tests.
type FakeReader struct {
	// Words maps register to the value returned by ReadWord.
	Words map[byte]uint16

	// ReadError, if set, will be returned by every ReadWord.
	ReadError error

	// Reads counts ReadWord calls per register.
	Reads map[byte]int
}

// NewFakeReader returns a FakeReader reporting the given SOC and VCELL words.
func NewFakeReader(soc, vcell uint16) *FakeReader {
	return &FakeReader{
		Words: map[byte]uint16{RegSOC: soc, RegVCell: vcell},
		Reads: map[byte]int{},
	}
}

// SetCapacity scripts a whole-percent state of charge.
func (f *FakeReader) SetCapacity(percent int) {
	f.Words[RegSOC] = uint16(percent) << 8
}

// ReadWord returns the scripted word.
func (f *FakeReader) ReadWord(reg byte) (uint16, error) {
	if f.Reads == nil {
		f.Reads = map[byte]int{}
	}
	f.Reads[reg]++
	if f.ReadError != nil {
		return 0, f.ReadError
	}
	w, ok := f.Words[reg]
	if !ok {
		return 0, fmt.Errorf("no word scripted for register 0x%02X", reg)
	}
	return w, nil
}
