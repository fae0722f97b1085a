//go:build unix

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/geekfactory/microshell/transport"
)

// termTransport drives the local terminal in raw mode as the shell's byte
// transport. Reads are non-blocking polls; Ctrl+C and Ctrl+D set quit
// instead of reaching the shell.
type termTransport struct {
	in       *os.File
	out      *os.File
	inFd     int
	oldState *term.State

	rbuf    [256]byte
	pending []byte

	quit   bool
	onBell func()
}

var _ transport.Transport = (*termTransport)(nil)

func newTermTransport() *termTransport {
	return &termTransport{
		in:   os.Stdin,
		out:  os.Stdout,
		inFd: int(os.Stdin.Fd()),
	}
}

func (t *termTransport) Init() error {
	if !term.IsTerminal(t.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}
	old, err := term.MakeRaw(t.inFd)
	if err != nil {
		return err
	}
	t.oldState = old
	return nil
}

func (t *termTransport) Fini() {
	if t.oldState != nil {
		term.Restore(t.inFd, t.oldState)
		t.oldState = nil
	}
}

// ReadByte pops one buffered input byte, refilling from the terminal when
// the buffer is empty and data is ready.
func (t *termTransport) ReadByte() (byte, bool) {
	if len(t.pending) == 0 && !t.fill() {
		return 0, false
	}
	b := t.pending[0]
	t.pending = t.pending[1:]

	// Host-level quit keys, never forwarded to the shell
	if b == 0x03 || b == 0x04 {
		t.quit = true
		return 0, false
	}
	return b, true
}

// fill polls stdin with zero timeout and reads whatever is available.
func (t *termTransport) fill() bool {
	fds := []unix.PollFd{
		{Fd: int32(t.inFd), Events: unix.POLLIN},
	}

	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 {
		return false
	}

	rn, err := unix.Read(t.inFd, t.rbuf[:])
	if err != nil || rn <= 0 {
		if err == nil {
			// EOF
			t.quit = true
		}
		return false
	}
	t.pending = t.rbuf[:rn]
	return true
}

func (t *termTransport) WriteByte(b byte) {
	if b == 0x07 && t.onBell != nil {
		t.onBell()
	}
	t.out.Write([]byte{b})
}

// WriteBatch lets the output batcher flush with a single syscall.
func (t *termTransport) WriteBatch(p []byte) {
	for _, b := range p {
		if b == 0x07 && t.onBell != nil {
			t.onBell()
		}
	}
	t.out.Write(p)
}
