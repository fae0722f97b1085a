package shell

// ring is the fixed-capacity circular store of submitted lines. The slot at
// current is always the line being actively edited; committed entries live
// in the slots behind it. oldest is meaningful only once wrapped is set.
//
// The scratch slot serves two temporally disjoint purposes: it preserves an
// uncommitted edit while the user browses history, and it receives the
// mutable copy handed to the tokenizer on line completion.
type ring struct {
	slots [][]byte
	lens  []int
	depth int

	current int // slot being edited
	nav     int // history navigation cursor
	oldest  int // oldest stored entry, valid once wrapped
	wrapped bool

	scratch    []byte
	scratchLen int
}

func newRing(depth, lineCap int) *ring {
	slots := make([][]byte, depth)
	for i := range slots {
		slots[i] = make([]byte, lineCap)
	}
	return &ring{
		slots:   slots,
		lens:    make([]int, depth),
		depth:   depth,
		scratch: make([]byte, lineCap),
	}
}

// buf returns the backing storage of the slot being edited.
func (r *ring) buf() []byte {
	return r.slots[r.current]
}

// scratchCopy copies the first n bytes of the current slot into the scratch
// buffer and returns the copy. The returned slice is overwritten by the
// next navigation or completion.
func (r *ring) scratchCopy(n int) []byte {
	copy(r.scratch, r.slots[r.current][:n])
	return r.scratch[:n]
}

func (r *ring) inc(i int) int {
	return (i + 1) % r.depth
}

func (r *ring) dec(i int) int {
	return (i + r.depth - 1) % r.depth
}

// hasEntries reports whether at least one line has been committed.
func (r *ring) hasEntries() bool {
	return r.current != 0 || r.wrapped
}

// commit stores the first n bytes of the current slot as a history entry
// unless the line is empty or identical to the immediately previous entry.
// Advancing past the last slot sets wrapped and evicts the oldest entry in
// lockstep from then on.
func (r *ring) commit(n int) {
	if n == 0 {
		return
	}
	if r.hasEntries() {
		prev := r.dec(r.current)
		if r.lens[prev] == n && string(r.slots[prev][:n]) == string(r.slots[r.current][:n]) {
			return
		}
	}
	r.lens[r.current] = n
	r.current = r.inc(r.current)
	if r.current == 0 {
		r.wrapped = true
	}
	if r.wrapped {
		r.oldest = r.inc(r.current)
	}
}

// resetNavigation puts the cursor back on the slot being edited so the next
// arrow-up starts from the newest entry.
func (r *ring) resetNavigation() {
	r.nav = r.current
}

// hasOlder reports whether the cursor can step toward older entries.
func (r *ring) hasOlder() bool {
	if !r.hasEntries() {
		return false
	}
	bound := 0
	if r.wrapped {
		bound = r.oldest
	}
	return r.nav != bound
}

// hasNewer reports whether the cursor is behind the uncommitted position.
func (r *ring) hasNewer() bool {
	return r.nav != r.current
}

// older steps the cursor one entry back and copies that entry into the
// current slot, returning its length. The first step away from the
// uncommitted position saves the in-progress edit (editLen bytes) to
// scratch. Callers must check hasOlder first.
func (r *ring) older(editLen int) int {
	if r.nav == r.current {
		copy(r.scratch, r.slots[r.current][:editLen])
		r.scratchLen = editLen
	}
	r.nav = r.dec(r.nav)
	n := r.lens[r.nav]
	copy(r.slots[r.current], r.slots[r.nav][:n])
	return n
}

// newer steps the cursor one entry forward and copies it into the current
// slot, returning its length. Reaching the uncommitted position restores
// the scratch edit instead of a ring entry. Callers must check hasNewer
// first.
func (r *ring) newer() int {
	r.nav = r.inc(r.nav)
	if r.nav == r.current {
		copy(r.slots[r.current], r.scratch[:r.scratchLen])
		return r.scratchLen
	}
	n := r.lens[r.nav]
	copy(r.slots[r.current], r.slots[r.nav][:n])
	return n
}
