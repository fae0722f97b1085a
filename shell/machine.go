package shell

// Recognized control bytes.
const (
	asciiBEL = 0x07
	asciiBS  = 0x08
	asciiHT  = 0x09
	asciiCR  = 0x0D
	asciiESC = 0x1B
	asciiSP  = 0x20
	asciiDEL = 0x7F
)

// parseState tracks escape-sequence decoding across polls.
type parseState uint8

const (
	stateNormal parseState = iota // default, editing the line
	stateEscape                   // ESC seen, awaiting sequence introducer
	stateCSI                      // ESC [ seen, awaiting final byte
)

// processByte advances the input state machine by exactly one character.
func (s *Shell) processByte(b byte) {
	switch s.state {
	case stateEscape:
		s.processEscape(b)
	case stateCSI:
		s.processCSI(b)
	default:
		s.processNormal(b)
	}
}

func (s *Shell) processNormal(b byte) {
	switch b {
	case asciiCR:
		s.completeLine()

	case asciiBS:
		if s.count > 0 {
			s.count--
			s.eraseChar()
		} else {
			s.alert()
		}

	case asciiESC:
		s.state = stateEscape

	case asciiHT, asciiDEL:
		s.alert()

	default:
		// Printable characters are appended and echoed while capacity
		// remains; everything else is ignored.
		if b >= asciiSP && b < asciiDEL {
			if s.count < s.cfg.LineLen-1 {
				s.ring.buf()[s.count] = b
				s.count++
				s.writeByte(b)
			}
		}
	}
}

// processEscape handles the byte after ESC. Only the CSI introducer is
// recognized; anything else drops back to normal editing unhandled.
func (s *Shell) processEscape(b byte) {
	if b == '[' {
		s.state = stateCSI
	} else {
		s.state = stateNormal
	}
}

// processCSI consumes parameter (0x30-0x3F) and intermediate (0x20-0x2F)
// bytes until the final byte (0x40-0x7E) selects the action. The machine
// returns to normal whether or not the final byte is recognized.
func (s *Shell) processCSI(b byte) {
	switch {
	case b >= 0x30 && b <= 0x3F:
		// Parameter byte, no multi-parameter sequences supported.
	case b >= 0x20 && b <= 0x2F:
		// Intermediate byte, ignored.
	case b >= 0x40 && b <= 0x7E:
		s.state = stateNormal
		switch b {
		case 'A':
			s.historyOlder()
		case 'B':
			s.historyNewer()
		}
	default:
		s.state = stateNormal
	}
}

// historyOlder steps the navigation cursor one entry back and replaces the
// visible line with it. At the oldest stored entry it only alerts.
func (s *Shell) historyOlder() {
	if !s.ring.hasOlder() {
		s.alert()
		return
	}
	s.eraseLine()
	s.count = s.ring.older(s.count)
	s.echoLine()
}

// historyNewer steps the navigation cursor one entry forward; reaching the
// uncommitted position restores the saved in-progress edit.
func (s *Shell) historyNewer() {
	if !s.ring.hasNewer() {
		s.alert()
		return
	}
	s.eraseLine()
	s.count = s.ring.newer()
	s.echoLine()
}

// eraseChar echoes the visible erase sequence for one character.
func (s *Shell) eraseChar() {
	s.writeByte(asciiBS)
	s.writeByte(asciiSP)
	s.writeByte(asciiBS)
}

// eraseLine clears the visible line without touching buffer contents.
func (s *Shell) eraseLine() {
	for i := 0; i < s.count; i++ {
		s.eraseChar()
	}
}

// echoLine redisplays the current slot contents.
func (s *Shell) echoLine() {
	buf := s.ring.buf()
	for i := 0; i < s.count; i++ {
		s.writeByte(buf[i])
	}
}
