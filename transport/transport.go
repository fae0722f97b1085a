// Package transport abstracts the byte-level link between a shell and its
// host: serial line, socket, USB CDC, or an in-memory pipe. Reads are
// non-blocking polls so the shell can share a cooperative loop with other
// host work.
package transport

// Transport is the host-supplied byte channel. ReadByte polls for one input
// byte and reports whether one was available; WriteByte emits one output
// byte. Both are called synchronously and must never block.
type Transport interface {
	ReadByte() (byte, bool)
	WriteByte(b byte)
}

// Funcs adapts plain read/write callbacks to the Transport interface.
type Funcs struct {
	Read  func() (byte, bool)
	Write func(b byte)
}

func (f Funcs) ReadByte() (byte, bool) {
	if f.Read == nil {
		return 0, false
	}
	return f.Read()
}

func (f Funcs) WriteByte(b byte) {
	if f.Write != nil {
		f.Write(b)
	}
}
