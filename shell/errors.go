package shell

// ErrorKind categorizes the diagnostics a command handler can report.
// The shell core never raises these itself; handlers call PrintError
// explicitly.
type ErrorKind uint8

const (
	ErrArgCount   ErrorKind = iota // wrong argument count
	ErrOutOfRange                  // value out of range
	ErrValue                       // invalid value
	ErrAction                      // invalid action
	ErrParse                       // parse failure
	ErrStorage                     // storage failure
	ErrIO                          // I/O failure
	ErrUnknown
)

// tag returns the wire label of the error kind. Unrecognized kinds fall
// back to Unknown.
func (k ErrorKind) tag() string {
	switch k {
	case ErrArgCount:
		return "ArgCount"
	case ErrOutOfRange:
		return "OutOfRange"
	case ErrValue:
		return "InvalidVal"
	case ErrAction:
		return "InvalidAct"
	case ErrParse:
		return "Parse"
	case ErrStorage:
		return "Storage"
	case ErrIO:
		return "IO"
	}
	return "Unknown"
}

// PrintError writes a structured one-line diagnostic tagged with the error
// kind and, when non-empty, the name of the offending field.
func (s *Shell) PrintError(kind ErrorKind, field string) {
	if field != "" {
		s.Print("#ERROR-FIELD:")
		s.Print(field)
		s.Print("\r\n")
	}
	s.Print("#ERROR-TYPE:")
	s.Print(kind.tag())
	s.Print("\r\n")
}
