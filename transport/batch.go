package transport

import "time"

// Batcher wraps the write side of a Transport, accumulating output and
// flushing it in batches: when the buffer reaches the configured size, when
// Tick observes the quiescence interval has elapsed since the last write,
// or on an explicit Flush. Reads pass straight through.
//
// Batching is an optional host concern; the shell core works against the
// underlying Transport just as well.
type Batcher struct {
	t        Transport
	buf      []byte
	size     int
	interval time.Duration
	last     time.Time

	// now is an injectable clock for tests.
	now func() time.Time
}

// NewBatcher creates a batcher over t with the given batch size and flush
// interval. Non-positive values fall back to 64 bytes and 50ms.
func NewBatcher(t Transport, size int, interval time.Duration) *Batcher {
	if size <= 0 {
		size = 64
	}
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	return &Batcher{
		t:        t,
		buf:      make([]byte, 0, size),
		size:     size,
		interval: interval,
		now:      time.Now,
	}
}

func (b *Batcher) ReadByte() (byte, bool) {
	return b.t.ReadByte()
}

func (b *Batcher) WriteByte(c byte) {
	b.buf = append(b.buf, c)
	b.last = b.now()
	if len(b.buf) >= b.size {
		b.Flush()
	}
}

// Tick flushes pending output if the quiescence interval has elapsed. The
// host calls it from the same loop that drives the shell.
func (b *Batcher) Tick() {
	if len(b.buf) > 0 && b.now().Sub(b.last) >= b.interval {
		b.Flush()
	}
}

// BatchWriter is optionally implemented by transports that can emit a full
// batch in one operation (e.g. a single write syscall).
type BatchWriter interface {
	WriteBatch(p []byte)
}

// Flush writes all buffered bytes to the underlying transport.
func (b *Batcher) Flush() {
	if len(b.buf) == 0 {
		return
	}
	if bw, ok := b.t.(BatchWriter); ok {
		bw.WriteBatch(b.buf)
	} else {
		for _, c := range b.buf {
			b.t.WriteByte(c)
		}
	}
	b.buf = b.buf[:0]
}

// Buffered reports how many bytes await flushing.
func (b *Batcher) Buffered() int {
	return len(b.buf)
}
