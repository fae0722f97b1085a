package shell

import (
	"fmt"

	"github.com/geekfactory/microshell/transport"
)

// Defaults used when a Config field is zero.
const (
	DefaultMaxCommands  = 10
	DefaultMaxArgs      = 10
	DefaultLineLen      = 70
	DefaultHistoryDepth = 8
	DefaultPrompt       = "device>"
	DefaultMOTD         = "microshell 1.0"
)

// notFoundMsg is printed for non-empty input that matches no command.
const notFoundMsg = "Command NOT found."

// Handler is the entry point of a registered command. argv[0] is the command
// name; the slices alias the shell's scratch buffer and are only valid for
// the duration of the call. The returned status is recorded but not
// interpreted by the shell.
type Handler func(argv [][]byte) int

// Config carries the capacity bounds of a shell instance. All sizing is
// explicit so wraparound, truncation and table-full behavior are
// reproducible without recompilation.
type Config struct {
	MaxCommands  int    // command table capacity
	MaxArgs      int    // maximum arguments per line, including the name
	LineLen      int    // line slot capacity; input longer than LineLen-1 is dropped
	HistoryDepth int    // history ring slots, including the slot being edited
	Prompt       string // printed after every completed line
	MOTD         string // printed once at construction
}

func (c Config) withDefaults() Config {
	if c.MaxCommands <= 0 {
		c.MaxCommands = DefaultMaxCommands
	}
	if c.MaxArgs <= 0 {
		c.MaxArgs = DefaultMaxArgs
	}
	if c.LineLen <= 0 {
		c.LineLen = DefaultLineLen
	}
	if c.HistoryDepth <= 0 {
		c.HistoryDepth = DefaultHistoryDepth
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if c.MOTD == "" {
		c.MOTD = DefaultMOTD
	}
	return c
}

// command is one slot of the dispatch table. A slot is empty when both
// fields are unset; duplicate names are permitted and the first match in
// table order wins.
type command struct {
	name    string
	handler Handler
}

// Shell is the session state of one interactive command line. It is not
// safe for concurrent use; the host drives it from a single loop.
type Shell struct {
	cfg Config
	t   transport.Transport

	table []command

	ring  *ring
	argv  [][]byte
	state parseState
	count int // characters in the line being edited

	lastStatus int // status returned by the most recent handler
}

// New creates a shell over the given transport, prints the MOTD and the
// first prompt. Zero Config fields fall back to defaults.
func New(t transport.Transport, cfg Config) (*Shell, error) {
	if t == nil {
		return nil, fmt.Errorf("shell: nil transport")
	}
	cfg = cfg.withDefaults()
	if cfg.LineLen < 2 {
		return nil, fmt.Errorf("shell: line length %d too small", cfg.LineLen)
	}
	if cfg.HistoryDepth < 2 {
		return nil, fmt.Errorf("shell: history depth %d too small", cfg.HistoryDepth)
	}

	s := &Shell{
		cfg:   cfg,
		t:     t,
		table: make([]command, cfg.MaxCommands),
		ring:  newRing(cfg.HistoryDepth, cfg.LineLen),
		argv:  make([][]byte, 0, cfg.MaxArgs),
		state: stateNormal,
	}

	s.Println(cfg.MOTD)
	s.prompt()
	return s, nil
}

// Register binds a handler to a command name. It returns false when the
// table is full; previously registered entries are untouched. Registering
// a name twice is allowed, but only the first entry is ever dispatched.
func (s *Shell) Register(name string, handler Handler) bool {
	if name == "" || handler == nil {
		return false
	}
	for i := range s.table {
		if s.table[i].name != "" || s.table[i].handler != nil {
			continue
		}
		s.table[i] = command{name: name, handler: handler}
		return true
	}
	return false
}

// UnregisterAll clears every command table slot.
func (s *Shell) UnregisterAll() {
	for i := range s.table {
		s.table[i] = command{}
	}
}

// PrintCommands writes the registered command names, one per line.
func (s *Shell) PrintCommands() {
	for i := range s.table {
		if s.table[i].name != "" || s.table[i].handler != nil {
			s.Println(s.table[i].name)
		}
	}
}

// LastStatus returns the status code of the most recently dispatched
// handler.
func (s *Shell) LastStatus() int {
	return s.lastStatus
}

// Poll consumes at most one input byte and returns whether one was
// available. It never blocks; the host calls it repeatedly from its loop.
func (s *Shell) Poll() bool {
	b, ok := s.t.ReadByte()
	if !ok {
		return false
	}
	s.processByte(b)
	return true
}

// completeLine runs the tokenize -> dispatch -> history-commit -> prompt
// sequence for the line accumulated in the current ring slot.
func (s *Shell) completeLine() {
	s.Print("\r\n")

	// Tokenization mutates the line, so it runs on a scratch copy and the
	// ring slot stays intact for the history commit.
	line := s.ring.scratchCopy(s.count)
	argv := tokenizeInto(line, s.argv[:0], s.cfg.MaxArgs)
	for i := range argv {
		argv[i] = resolveEscapes(argv[i])
	}

	if s.count > 0 && !s.dispatch(argv) {
		s.Println(notFoundMsg)
	}

	s.ring.commit(s.count)
	s.ring.resetNavigation()
	s.count = 0

	s.Print("\r\n")
	s.prompt()
}

// dispatch scans the table for argv[0] with exact, case-sensitive equality
// and invokes the first match. It reports whether a handler ran.
func (s *Shell) dispatch(argv [][]byte) bool {
	name := string(argv[0])
	for i := range s.table {
		if s.table[i].handler == nil {
			continue
		}
		if s.table[i].name == name {
			s.lastStatus = s.table[i].handler(argv)
			return true
		}
	}
	return false
}

func (s *Shell) prompt() {
	s.Print(s.cfg.Prompt)
}

func (s *Shell) writeByte(b byte) {
	s.t.WriteByte(b)
}

// alert emits the audible no-op signal for invalid edit actions.
func (s *Shell) alert() {
	s.writeByte(asciiBEL)
}

// Print writes a string to the transport one byte at a time.
func (s *Shell) Print(str string) {
	for i := 0; i < len(str); i++ {
		s.writeByte(str[i])
	}
}

// Println writes a string followed by CRLF.
func (s *Shell) Println(str string) {
	s.Print(str)
	s.Print("\r\n")
}
