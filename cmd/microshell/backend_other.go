//go:build !unix

package main

import "errors"

// termTransport stub for platforms without raw-terminal support.
type termTransport struct {
	quit   bool
	onBell func()
}

func newTermTransport() *termTransport { return &termTransport{} }

func (t *termTransport) Init() error {
	return errors.New("interactive host requires a Unix terminal")
}

func (t *termTransport) Fini() {}

func (t *termTransport) ReadByte() (byte, bool) { return 0, false }

func (t *termTransport) WriteByte(b byte) {}
