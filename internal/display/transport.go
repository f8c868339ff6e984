package display

// Transport pushes packed frames to the panel.
type Transport interface {
	// WritePages sends one packed frame (see Pack).
	WritePages(buf []byte) error

	// Close blanks the panel and releases the bus.
	Close() error
}

// FakeTransport records frames for tests.
type FakeTransport struct {
	Frames     [][]byte
	WriteError error
	CloseCalls int
}

// WritePages records a copy of buf.
func (f *FakeTransport) WritePages(buf []byte) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	frame := make([]byte, len(buf))
	copy(frame, buf)
	f.Frames = append(f.Frames, frame)
	return nil
}

// Close counts the call.
func (f *FakeTransport) Close() error {
	f.CloseCalls++
	return nil
}
