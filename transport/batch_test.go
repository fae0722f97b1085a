package transport

import (
	"testing"
	"time"
)

func TestPipeRoundTrip(t *testing.T) {
	p := NewPipe()

	if _, ok := p.ReadByte(); ok {
		t.Error("empty pipe should have no input")
	}

	p.Feed("ab")
	if p.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", p.Pending())
	}
	b, ok := p.ReadByte()
	if !ok || b != 'a' {
		t.Errorf("ReadByte = %q, %v; want 'a', true", b, ok)
	}

	p.WriteByte('x')
	p.WriteByte('y')
	if got := p.TakeOutput(); got != "xy" {
		t.Errorf("TakeOutput = %q, want %q", got, "xy")
	}
	if got := p.Output(); got != "" {
		t.Errorf("output not cleared, got %q", got)
	}
}

func TestFuncsAdapter(t *testing.T) {
	var written []byte
	f := Funcs{
		Read:  func() (byte, bool) { return 'z', true },
		Write: func(b byte) { written = append(written, b) },
	}

	if b, ok := f.ReadByte(); !ok || b != 'z' {
		t.Errorf("ReadByte = %q, %v; want 'z', true", b, ok)
	}
	f.WriteByte('w')
	if string(written) != "w" {
		t.Errorf("written %q, want %q", written, "w")
	}

	// Nil callbacks degrade to no input / discarded output
	var empty Funcs
	if _, ok := empty.ReadByte(); ok {
		t.Error("nil Read should report no byte")
	}
	empty.WriteByte('q')
}

func TestBatcherFlushesOnSize(t *testing.T) {
	p := NewPipe()
	b := NewBatcher(p, 4, time.Second)

	b.WriteByte('a')
	b.WriteByte('b')
	b.WriteByte('c')
	if got := p.Output(); got != "" {
		t.Errorf("flushed early: %q", got)
	}
	if b.Buffered() != 3 {
		t.Errorf("Buffered = %d, want 3", b.Buffered())
	}

	b.WriteByte('d')
	if got := p.Output(); got != "abcd" {
		t.Errorf("after size flush: %q, want %q", got, "abcd")
	}
	if b.Buffered() != 0 {
		t.Errorf("Buffered = %d after flush, want 0", b.Buffered())
	}
}

func TestBatcherFlushesOnQuiescence(t *testing.T) {
	p := NewPipe()
	b := NewBatcher(p, 64, 10*time.Millisecond)

	now := time.Unix(0, 0)
	b.now = func() time.Time { return now }

	b.WriteByte('x')
	b.Tick()
	if got := p.Output(); got != "" {
		t.Errorf("flushed before interval: %q", got)
	}

	now = now.Add(11 * time.Millisecond)
	b.Tick()
	if got := p.Output(); got != "x" {
		t.Errorf("after quiescence flush: %q, want %q", got, "x")
	}

	// Tick with nothing buffered is a no-op
	now = now.Add(time.Hour)
	b.Tick()
	if got := p.Output(); got != "x" {
		t.Errorf("idle Tick wrote output: %q", got)
	}
}

func TestBatcherExplicitFlush(t *testing.T) {
	p := NewPipe()
	b := NewBatcher(p, 64, time.Second)

	b.Flush() // empty flush is a no-op
	b.WriteByte('a')
	b.Flush()
	if got := p.Output(); got != "a" {
		t.Errorf("after explicit flush: %q, want %q", got, "a")
	}
}

// batchSink records whether the single-call path was used.
type batchSink struct {
	Pipe
	batches int
}

func (s *batchSink) WriteBatch(p []byte) {
	s.batches++
	for _, b := range p {
		s.Pipe.WriteByte(b)
	}
}

func TestBatcherUsesBatchWriter(t *testing.T) {
	s := &batchSink{}
	b := NewBatcher(s, 2, time.Second)

	b.WriteByte('a')
	b.WriteByte('b')

	if s.batches != 1 {
		t.Errorf("WriteBatch called %d times, want 1", s.batches)
	}
	if got := s.Output(); got != "ab" {
		t.Errorf("batched output %q, want %q", got, "ab")
	}
}
