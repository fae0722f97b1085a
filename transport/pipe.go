package transport

// Pipe is an in-memory Transport for tests and scripted hosts. The host
// feeds input bytes with Feed and collects everything the shell wrote with
// Output or TakeOutput. Like the rest of the core it is single-threaded.
type Pipe struct {
	in  []byte
	out []byte
}

// NewPipe creates an empty pipe.
func NewPipe() *Pipe {
	return &Pipe{}
}

// Feed queues input bytes for the shell to consume.
func (p *Pipe) Feed(data string) {
	p.in = append(p.in, data...)
}

// ReadByte pops the next queued input byte.
func (p *Pipe) ReadByte() (byte, bool) {
	if len(p.in) == 0 {
		return 0, false
	}
	b := p.in[0]
	p.in = p.in[1:]
	return b, true
}

// WriteByte appends one byte to the captured output.
func (p *Pipe) WriteByte(b byte) {
	p.out = append(p.out, b)
}

// Output returns everything written so far.
func (p *Pipe) Output() string {
	return string(p.out)
}

// TakeOutput returns the captured output and clears it.
func (p *Pipe) TakeOutput() string {
	s := string(p.out)
	p.out = p.out[:0]
	return s
}

// Pending reports how many input bytes remain unconsumed.
func (p *Pipe) Pending() int {
	return len(p.in)
}
