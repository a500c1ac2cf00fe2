package vt

// op is a terminal operation selected by a completed sequence.
type op uint8

const (
	OP_NONE op = iota
	OP_PRINT

	// Cursor movement
	OP_CBT   // cursor backward tabulation
	OP_CHT   // cursor forward tabulation
	OP_CNL   // cursor next line
	OP_CPL   // cursor previous line
	OP_CUB   // cursor backward
	OP_CUD   // cursor down
	OP_CUF   // cursor forward
	OP_CUP   // cursor position
	OP_CUU   // cursor up
	OP_HPA   // horizontal position absolute
	OP_VPA   // vertical position absolute
	OP_IND   // index
	OP_NEL   // next line
	OP_RI    // reverse index
	OP_DECSC // save cursor
	OP_DECRC // restore cursor

	// Editing
	OP_DCH // delete character
	OP_ICH // insert character
	OP_DL  // delete line
	OP_IL  // insert line
	OP_ECH // erase character
	OP_ED  // erase display
	OP_EL  // erase line
	OP_SU  // scroll up
	OP_SD  // scroll down
	OP_REP // repeat last graphic character

	// Tabs
	OP_HTS // horizontal tab set
	OP_TBC // tab clear

	// Modes and state
	OP_SGR      // set graphic rendition
	OP_SM       // set mode
	OP_RM       // reset mode
	OP_DECSM    // set DEC mode
	OP_DECRM    // reset DEC mode
	OP_DECSTBM  // set top and bottom margins
	OP_DECKPAM  // keypad application mode
	OP_DECKPNM  // keypad numeric mode
	OP_DECSCUSR // set cursor style
	OP_RIS      // reset to initial state
	OP_DECALN   // alignment test

	// Line size; accepted and ignored
	OP_DECDHL_TOP
	OP_DECDHL_BOTTOM
	OP_DECSWL
	OP_DECDWL

	// Character sets
	OP_G0SCS_ASCII
	OP_G0SCS_UK
	OP_G0SCS_GRAPHICS
	OP_G1SCS_ASCII
	OP_G1SCS_UK
	OP_G1SCS_GRAPHICS

	// Reports
	OP_DA1 // primary device attributes
	OP_DA2 // secondary device attributes
	OP_CPR // cursor position report / status
	OP_DSR // DEC device status report

	// Strings
	OP_OSC // operating system command
	OP_DCS // device control string
	OP_ST  // string terminator

	// cons25 legacy
	OP_C25BLPD // set bell pitch and duration
	OP_C25BORD // set border colour
	OP_C25DBG  // set default background
	OP_C25DFG  // set default foreground
	OP_C25GCS  // set global cursor shape
	OP_C25LCT  // set local cursor type
	OP_C25MODE // set terminal mode
	OP_C25SGR  // set graphic rendition
	OP_C25VTSW // switch virtual terminal
)

// argKind says how missing or zero parameters are read: ARGS_N is a
// non-zero number where missing or 0 means 1, ARGS_R is a regular number
// where missing means 0 and ARGS_V is any number of regular numbers.
type argKind uint8

const (
	ARGS_NONE argKind = iota
	ARGS_N
	ARGS_R
	ARGS_V
)

// sequence is the result of a completed escape sequence: which
// operation to run and how to read its arguments.
type sequence struct {
	op     op
	args   argKind
	legacy bool // only recognised with MODE_CONS25
}

var seqPrint = sequence{op: OP_PRINT}

type seqKey struct {
	state pState
	final rune
}

// sequences maps a parser state and final unit to the operation it
// completes.
var sequences = map[seqKey]sequence{
	// ESC
	{STATE_ESC, '7'}:  {op: OP_DECSC},
	{STATE_ESC, '8'}:  {op: OP_DECRC},
	{STATE_ESC, '='}:  {op: OP_DECKPAM},
	{STATE_ESC, '>'}:  {op: OP_DECKPNM},
	{STATE_ESC, 'D'}:  {op: OP_IND},
	{STATE_ESC, 'E'}:  {op: OP_NEL},
	{STATE_ESC, 'H'}:  {op: OP_HTS},
	{STATE_ESC, 'M'}:  {op: OP_RI},
	{STATE_ESC, 'P'}:  {op: OP_DCS},
	{STATE_ESC, ']'}:  {op: OP_OSC},
	{STATE_ESC, '\\'}: {op: OP_ST},
	{STATE_ESC, 'c'}:  {op: OP_RIS},

	// ESC #
	{STATE_HASH, '3'}: {op: OP_DECDHL_TOP},
	{STATE_HASH, '4'}: {op: OP_DECDHL_BOTTOM},
	{STATE_HASH, '5'}: {op: OP_DECSWL},
	{STATE_HASH, '6'}: {op: OP_DECDWL},
	{STATE_HASH, '8'}: {op: OP_DECALN},

	// ESC ( and ESC )
	{STATE_SCS_G0, '0'}: {op: OP_G0SCS_GRAPHICS},
	{STATE_SCS_G0, '1'}: {op: OP_G0SCS_ASCII},
	{STATE_SCS_G0, '2'}: {op: OP_G0SCS_GRAPHICS},
	{STATE_SCS_G0, 'A'}: {op: OP_G0SCS_UK},
	{STATE_SCS_G0, 'B'}: {op: OP_G0SCS_ASCII},
	{STATE_SCS_G1, '0'}: {op: OP_G1SCS_GRAPHICS},
	{STATE_SCS_G1, '1'}: {op: OP_G1SCS_ASCII},
	{STATE_SCS_G1, '2'}: {op: OP_G1SCS_GRAPHICS},
	{STATE_SCS_G1, 'A'}: {op: OP_G1SCS_UK},
	{STATE_SCS_G1, 'B'}: {op: OP_G1SCS_ASCII},

	// CSI
	{STATE_CSI, CSI_ICH}:     {op: OP_ICH, args: ARGS_N},
	{STATE_CSI, CSI_CUU}:     {op: OP_CUU, args: ARGS_N},
	{STATE_CSI, CSI_CUD}:     {op: OP_CUD, args: ARGS_N},
	{STATE_CSI, CSI_CUF}:     {op: OP_CUF, args: ARGS_N},
	{STATE_CSI, CSI_CUB}:     {op: OP_CUB, args: ARGS_N},
	{STATE_CSI, CSI_CNL}:     {op: OP_CNL, args: ARGS_N},
	{STATE_CSI, CSI_CPL}:     {op: OP_CPL, args: ARGS_N},
	{STATE_CSI, CSI_CHA}:     {op: OP_HPA, args: ARGS_N},
	{STATE_CSI, CSI_CUP}:     {op: OP_CUP, args: ARGS_N},
	{STATE_CSI, CSI_CHT}:     {op: OP_CHT, args: ARGS_N},
	{STATE_CSI, CSI_ED}:      {op: OP_ED, args: ARGS_R},
	{STATE_CSI, CSI_EL}:      {op: OP_EL, args: ARGS_R},
	{STATE_CSI, CSI_IL}:      {op: OP_IL, args: ARGS_N},
	{STATE_CSI, CSI_DL}:      {op: OP_DL, args: ARGS_N},
	{STATE_CSI, CSI_DCH}:     {op: OP_DCH, args: ARGS_N},
	{STATE_CSI, CSI_SU}:      {op: OP_SU, args: ARGS_N},
	{STATE_CSI, CSI_SD}:      {op: OP_SD, args: ARGS_N},
	{STATE_CSI, CSI_ECH}:     {op: OP_ECH, args: ARGS_N},
	{STATE_CSI, CSI_CBT}:     {op: OP_CBT, args: ARGS_N},
	{STATE_CSI, CSI_HPA}:     {op: OP_HPA, args: ARGS_N},
	{STATE_CSI, CSI_HPR}:     {op: OP_CUF, args: ARGS_N},
	{STATE_CSI, CSI_REP}:     {op: OP_REP, args: ARGS_N},
	{STATE_CSI, CSI_DA}:      {op: OP_DA1, args: ARGS_R},
	{STATE_CSI, CSI_VPA}:     {op: OP_VPA, args: ARGS_N},
	{STATE_CSI, CSI_VPR}:     {op: OP_CUD, args: ARGS_N},
	{STATE_CSI, CSI_HVP}:     {op: OP_CUP, args: ARGS_N},
	{STATE_CSI, CSI_TBC}:     {op: OP_TBC, args: ARGS_R},
	{STATE_CSI, CSI_SM}:      {op: OP_SM, args: ARGS_V},
	{STATE_CSI, CSI_RM}:      {op: OP_RM, args: ARGS_V},
	{STATE_CSI, CSI_SGR}:     {op: OP_SGR, args: ARGS_V},
	{STATE_CSI, CSI_DSR}:     {op: OP_CPR, args: ARGS_R},
	{STATE_CSI, CSI_DECSTBM}: {op: OP_DECSTBM, args: ARGS_R},
	{STATE_CSI, CSI_SCOSC}:   {op: OP_DECSC},
	{STATE_CSI, CSI_SCORC}:   {op: OP_DECRC},

	// CSI ?
	{STATE_CSI_PRIV, CSI_SM}:  {op: OP_DECSM, args: ARGS_V},
	{STATE_CSI_PRIV, CSI_RM}:  {op: OP_DECRM, args: ARGS_V},
	{STATE_CSI_PRIV, CSI_DSR}: {op: OP_DSR, args: ARGS_R},

	// CSI >
	{STATE_CSI_GT, CSI_DA}: {op: OP_DA2, args: ARGS_R},

	// CSI Ps SP
	{STATE_CSI_SP, CSI_DECSCUSR}: {op: OP_DECSCUSR, args: ARGS_R},

	// cons25 legacy
	{STATE_CSI, CSI_C25SGR}:  {op: OP_C25SGR, args: ARGS_R, legacy: true},
	{STATE_CSI, CSI_C25VTSW}: {op: OP_C25VTSW, args: ARGS_R, legacy: true},
	{STATE_CSI_EQ, 'A'}:      {op: OP_C25BORD, args: ARGS_R, legacy: true},
	{STATE_CSI_EQ, 'B'}:      {op: OP_C25BLPD, args: ARGS_R, legacy: true},
	{STATE_CSI_EQ, 'C'}:      {op: OP_C25GCS, args: ARGS_V, legacy: true},
	{STATE_CSI_EQ, 'F'}:      {op: OP_C25DFG, args: ARGS_R, legacy: true},
	{STATE_CSI_EQ, 'G'}:      {op: OP_C25DBG, args: ARGS_R, legacy: true},
	{STATE_CSI_EQ, 'S'}:      {op: OP_C25LCT, args: ARGS_R, legacy: true},
	{STATE_CSI_EQ, 'T'}:      {op: OP_C25MODE, args: ARGS_R, legacy: true},
}

// lookupSequence finds the sequence completed by final in state s.
func lookupSequence(m Mode, s pState, final rune) (sequence, bool) {
	seq, ok := sequences[seqKey{s, final}]
	if !ok || (seq.legacy && !m.has(MODE_CONS25)) {
		return sequence{}, false
	}
	return seq, true
}
