package shell

// argKind tags the variants of a formatter argument.
type argKind uint8

const (
	argNone argKind = iota
	argUint
	argInt
	argChar
	argStr
)

// Arg is one typed formatter argument, consumed positionally by Printf.
// Construct values with Uint, Int, Char or Str.
type Arg struct {
	kind argKind
	u    uint64
	i    int64
	c    byte
	s    string
}

// Uint wraps an unsigned integer for %u, %x and %X.
func Uint(v uint64) Arg { return Arg{kind: argUint, u: v} }

// Int wraps a signed integer for %d.
func Int(v int64) Arg { return Arg{kind: argInt, i: v} }

// Char wraps a single byte for %c.
func Char(c byte) Arg { return Arg{kind: argChar, c: c} }

// Str wraps a string for %s.
func Str(s string) Arg { return Arg{kind: argStr, s: s} }

// Printf renders a template to the transport. Literal characters are copied
// verbatim; a '%' introduces a verb with an optional leading '0' pad flag
// and decimal minimum width:
//
//	%u  unsigned decimal     %x  lowercase hex
//	%d  signed decimal       %X  uppercase hex
//	%c  single character     %s  string
//	%%  literal percent
//
// An unterminated or unrecognized verb, an exhausted argument list, or an
// argument of the wrong kind aborts formatting at that point; the remaining
// template is not processed.
func (s *Shell) Printf(format string, args ...Arg) {
	next := 0
	i := 0
	for i < len(format) {
		ch := format[i]
		i++
		if ch != '%' {
			s.writeByte(ch)
			continue
		}
		if i >= len(format) {
			return
		}

		zero := false
		width := 0
		ch = format[i]
		i++
		if ch == '0' {
			zero = true
			if i >= len(format) {
				return
			}
			ch = format[i]
			i++
		}
		for ch >= '0' && ch <= '9' {
			width = width*10 + int(ch-'0')
			if i >= len(format) {
				return
			}
			ch = format[i]
			i++
		}

		var bf [21]byte // 64-bit magnitude plus sign
		switch ch {
		case 'u':
			v, ok := uintArg(args, next)
			if !ok {
				return
			}
			next++
			n := utoa(v, 10, false, bf[:])
			s.padWrite(width, zero, bf[:n])

		case 'd':
			v, ok := intArg(args, next)
			if !ok {
				return
			}
			next++
			n := itoa(v, bf[:])
			s.padWrite(width, zero, bf[:n])

		case 'x', 'X':
			v, ok := uintArg(args, next)
			if !ok {
				return
			}
			next++
			n := utoa(v, 16, ch == 'X', bf[:])
			s.padWrite(width, zero, bf[:n])

		case 'c':
			if next >= len(args) || args[next].kind != argChar {
				return
			}
			s.writeByte(args[next].c)
			next++

		case 's':
			if next >= len(args) || args[next].kind != argStr {
				return
			}
			s.padWrite(width, false, []byte(args[next].s))
			next++

		case '%':
			s.writeByte('%')

		default:
			return
		}
	}
}

func uintArg(args []Arg, i int) (uint64, bool) {
	if i >= len(args) {
		return 0, false
	}
	switch args[i].kind {
	case argUint:
		return args[i].u, true
	case argInt:
		return uint64(args[i].i), true
	}
	return 0, false
}

func intArg(args []Arg, i int) (int64, bool) {
	if i >= len(args) {
		return 0, false
	}
	switch args[i].kind {
	case argInt:
		return args[i].i, true
	case argUint:
		return int64(args[i].u), true
	}
	return 0, false
}

// utoa converts v most-significant-digit first by repeated division,
// writing into bf and returning the digit count. No leading zero digits are
// emitted beyond what the value requires.
func utoa(v, base uint64, upper bool, bf []byte) int {
	d := uint64(1)
	for v/d >= base {
		d *= base
	}
	n := 0
	for d != 0 {
		dgt := v / d
		v %= d
		d /= base
		c := byte(dgt) + '0'
		if dgt >= 10 {
			if upper {
				c = byte(dgt) - 10 + 'A'
			} else {
				c = byte(dgt) - 10 + 'a'
			}
		}
		bf[n] = c
		n++
	}
	return n
}

// itoa converts a signed value; the minus sign consumes one column ahead of
// the magnitude digits.
func itoa(v int64, bf []byte) int {
	u := uint64(v)
	n := 0
	if v < 0 {
		bf[0] = '-'
		n = 1
		u = -u
	}
	return n + utoa(u, 10, false, bf[n:])
}

// padWrite emits fill characters up to the requested minimum width, then
// the converted text. The pad precedes the sign.
func (s *Shell) padWrite(width int, zero bool, bf []byte) {
	fill := byte(asciiSP)
	if zero {
		fill = '0'
	}
	for width > len(bf) {
		s.writeByte(fill)
		width--
	}
	for _, c := range bf {
		s.writeByte(c)
	}
}
