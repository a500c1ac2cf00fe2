package vt

import "log/slog"

// pState names which part of a sequence the parser is in.
type pState uint8

const (
	STATE_GROUND   pState = iota // printing
	STATE_ESC                    // ESC
	STATE_CSI                    // ESC [
	STATE_CSI_PRIV               // ESC [ ?
	STATE_CSI_GT                 // ESC [ >
	STATE_CSI_EQ                 // ESC [ =
	STATE_CSI_SP                 // ESC [ Ps SP
	STATE_SCS_G0                 // ESC (
	STATE_SCS_G1                 // ESC )
	STATE_HASH                   // ESC #
)

var STATE_NAMES = map[pState]string{
	STATE_GROUND:   "GROUND",
	STATE_ESC:      "ESC",
	STATE_CSI:      "CSI",
	STATE_CSI_PRIV: "CSI_PRIV",
	STATE_CSI_GT:   "CSI_GT",
	STATE_CSI_EQ:   "CSI_EQ",
	STATE_CSI_SP:   "CSI_SP",
	STATE_SCS_G0:   "SCS_G0",
	STATE_SCS_G1:   "SCS_G1",
	STATE_HASH:     "HASH",
}

func (s pState) String() string {
	return STATE_NAMES[s]
}

// collectsParams reports whether numeric parameters are accumulated
// in this state.
func (s pState) collectsParams() bool {
	switch s {
	case STATE_CSI, STATE_CSI_PRIV, STATE_CSI_GT, STATE_CSI_EQ:
		return true
	}
	return false
}

// params is the fixed size numeric argument buffer for one sequence.
type params struct {
	nums       [MAX_PARAMS]uint32
	cur        int  // slot being filled; the count once finished
	firstDigit bool // the next digit starts a new value
}

func (p *params) reset() {
	p.cur = 0
	p.firstDigit = true
}

// collect feeds r to the accumulator and reports whether it was
// consumed. A false return means r terminates the argument list; the
// count has been finalised and r is left for the caller. aborted is
// set when a separator would overflow the buffer.
func (p *params) collect(r rune) (consumed, aborted bool) {
	switch {
	case r >= '0' && r <= '9':
		d := uint32(r - '0')
		if p.firstDigit {
			p.firstDigit = false
			p.nums[p.cur] = d
		} else if p.nums[p.cur] < PARAM_CAP {
			p.nums[p.cur] = p.nums[p.cur]*10 + d
		}
		return true, false
	case r == CSI_SEP:
		if p.firstDigit {
			p.nums[p.cur] = 0
		}
		p.cur++
		if p.cur == MAX_PARAMS {
			return true, true
		}
		p.firstDigit = true
		return true, false
	}

	switch {
	case p.firstDigit && p.cur > 0:
		// Finish off the last, empty, argument.
		p.nums[p.cur] = 0
		p.cur++
	case !p.firstDigit:
		p.cur++
	}
	// Anything arriving after this belongs to a new value.
	p.firstDigit = true
	return false, false
}

func (p *params) count() int {
	return p.cur
}

// get returns parameter i, or 0 if it wasn't supplied.
func (p *params) get(i int) uint32 {
	if i < 0 || i >= p.cur {
		return 0
	}
	return p.nums[i]
}

// arg returns parameter i interpreted according to k.
func (p *params) arg(i int, k argKind) uint32 {
	v := p.get(i)
	if k == ARGS_N && v == 0 {
		return 1
	}
	return v
}

func (p *params) items() []uint32 {
	return p.nums[:p.cur]
}

// parser is the escape sequence state machine. It knows nothing of
// the terminal: advance only reports which sequence, if any, a unit
// completes.
type parser struct {
	state  pState
	params params
}

func newParser() *parser {
	p := &parser{}
	p.enter(STATE_GROUND)
	return p
}

// enter switches to s and starts a fresh parameter list.
func (p *parser) enter(s pState) {
	p.state = s
	p.params.reset()
}

// advance consumes one unit. It returns the zero sequence while a
// sequence is in progress or was abandoned, seqPrint for printable
// input in the ground state, or the completed sequence. Completed
// and abandoned sequences leave the parser in STATE_GROUND.
func (p *parser) advance(m Mode, r rune) sequence {
	if p.state == STATE_GROUND {
		if r == ESC {
			p.enter(STATE_ESC)
			return sequence{}
		}
		return seqPrint
	}

	if r == ESC {
		slog.Debug("sequence interrupted by ESC", "state", p.state)
		p.enter(STATE_ESC)
		return sequence{}
	}

	if p.state.collectsParams() {
		consumed, aborted := p.params.collect(r)
		if aborted {
			slog.Debug("too many parameters, abandoning sequence", "state", p.state)
			p.enter(STATE_GROUND)
			return sequence{}
		}
		if consumed {
			return sequence{}
		}
	}

	if next, ok := p.nextState(r); ok {
		if next == STATE_CSI_SP {
			// Parameters were given before the intermediate.
			p.state = next
		} else {
			p.enter(next)
		}
		return sequence{}
	}

	seq, ok := lookupSequence(m, p.state, r)
	if !ok {
		slog.Debug("unsupported sequence", "state", p.state, "r", string(r), "params", p.params.items())
	}
	p.state = STATE_GROUND
	return seq
}

// nextState reports whether r moves the parser into another
// intermediate state instead of finishing the sequence.
func (p *parser) nextState(r rune) (pState, bool) {
	switch p.state {
	case STATE_ESC:
		switch r {
		case ESC_CSI:
			return STATE_CSI, true
		case ESC_G0:
			return STATE_SCS_G0, true
		case ESC_G1:
			return STATE_SCS_G1, true
		case ESC_HASH:
			return STATE_HASH, true
		}
	case STATE_CSI:
		switch r {
		case CSI_PRIV:
			return STATE_CSI_PRIV, true
		case CSI_GT:
			return STATE_CSI_GT, true
		case CSI_EQ:
			return STATE_CSI_EQ, true
		case CSI_SP:
			return STATE_CSI_SP, true
		}
	}
	return STATE_GROUND, false
}

// finish clears the parameters of a sequence that has been executed.
func (p *parser) finish() {
	p.enter(STATE_GROUND)
}
