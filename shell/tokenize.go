package shell

// tokenizeInto splits a completed line into argument views, appending them
// to argv. The buffer is mutated in place: token boundaries and quote
// characters are replaced by NUL terminators, and the returned slices alias
// the buffer between them.
//
// A space outside a quoted span ends the current token. An unescaped
// double quote toggles quote mode and is removed from the text; the next
// token content starts immediately after it. A backslash suppresses quote
// interpretation for the following character but stays in the text
// (resolveEscapes collapses the pair later). Text between a closing quote
// and the next separator is dropped, as is everything beyond maxArgs
// arguments. An empty line yields exactly one empty token.
func tokenizeInto(buf []byte, argv [][]byte, maxArgs int) [][]byte {
	start := 0
	term := -1 // closing-quote terminator position, -1 when none
	quoted := false
	escaped := false

	for i := 0; i <= len(buf); i++ {
		if len(argv) >= maxArgs {
			return argv
		}
		if i == len(buf) {
			argv = append(argv, token(buf, start, term, i))
			break
		}

		b := buf[i]
		if escaped {
			escaped = false
			if b == '"' {
				continue // literal quote, stays in the token
			}
		}

		switch b {
		case '\\':
			escaped = true

		case '"':
			buf[i] = 0
			if !quoted {
				quoted = true
				start = i + 1
				term = -1
			} else {
				quoted = false
				term = i
			}

		case ' ':
			if !quoted {
				argv = append(argv, token(buf, start, term, i))
				buf[i] = 0
				start = i + 1
				term = -1
			}
		}
	}
	return argv
}

// token finalizes one argument view. A recorded closing-quote terminator
// truncates the token there.
func token(buf []byte, start, term, end int) []byte {
	if term >= 0 {
		end = term
	}
	if start > end {
		start = end
	}
	return buf[start:end]
}

// resolveEscapes collapses each backslash-quote pair in tok to a literal
// double quote, shifting the remainder left in place. Any other byte after
// a backslash is left untouched; no other escapes are defined.
func resolveEscapes(tok []byte) []byte {
	w := 0
	for r := 0; r < len(tok); r++ {
		if tok[r] == '\\' && r+1 < len(tok) && tok[r+1] == '"' {
			r++
		}
		tok[w] = tok[r]
		w++
	}
	return tok[:w]
}
