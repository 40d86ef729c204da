package mml

// Command is the closed set of typed, source-located part commands
// Pass 2 emits. Every concrete command embeds Base for its location
// and implements Name for diagnostics; there is no catch-all variant
// — an input the dispatcher can't resolve to one of these is a
// ParseError, never a generic fallback.
type Command interface {
	Location() SourceLocation
	Name() string
}

// Base carries the one invariant every command shares: where in the
// source it came from.
type Base struct {
	Loc SourceLocation
}

func (b Base) Location() SourceLocation { return b.Loc }

// Note is a lettered note (c/d/e/f/g/a/b), optionally sharped/flatted
// with '+'/'-' or naturalized with '=', with an optional explicit
// length and trailing tie dots.
type Note struct {
	Base
	Letter     byte
	Accidental *NegativePositive
	Natural    bool
	Length     *uint8
	Dots       uint8
}

func (Note) Name() string { return "Note" }

// NoteX is the PCM-drum note ('x'), carrying only a length and dots —
// same shape as NoteR, per original_source's part_command.rs/
// commands/04_mml_note.rs NoteX{length, dots} (no pitch field).
type NoteX struct {
	Base
	Length *uint8
	Dots   uint8
}

func (NoteX) Name() string { return "NoteX" }

// NoteR is a rest ('r').
type NoteR struct {
	Base
	Length *uint8
	Dots   uint8
}

func (NoteR) Name() string { return "NoteR" }

// Octave is an absolute octave set ('o'), or a signed nudge when
// Command is "o+"/"o-" (surfaced instead as PartOctaveChange*).
type Octave struct {
	Base
	Value uint8
}

func (Octave) Name() string { return "Octave" }

type OctaveUp struct{ Base }

func (OctaveUp) Name() string { return "OctaveUp" }

type OctaveDown struct{ Base }

func (OctaveDown) Name() string { return "OctaveDown" }

type OctaveReverse struct{ Base }

func (OctaveReverse) Name() string { return "OctaveReverse" }

type PartOctaveChangePositive struct {
	Base
	Value uint8
}

func (PartOctaveChangePositive) Name() string { return "PartOctaveChangePositive" }

type PartOctaveChangeNegative struct {
	Base
	Value uint8
}

func (PartOctaveChangeNegative) Name() string { return "PartOctaveChangeNegative" }

// DefaultLength sets the implicit length ('l') later bare-length
// operands resolve against.
type DefaultLength struct {
	Base
	ValueType *DivisorClock
	Value     uint8
	Dots      uint8
}

func (DefaultLength) Name() string { return "DefaultLength" }

type ProcessLastLengthUpdate struct {
	Base
	ValueType *DivisorClock
	Value     *uint8
	Dots      uint8
}

func (ProcessLastLengthUpdate) Name() string { return "ProcessLastLengthUpdate" }

type ProcessLastLengthAdd struct {
	Base
	ValueType *DivisorClock
	Value     uint8
	Dots      uint8
}

func (ProcessLastLengthAdd) Name() string { return "ProcessLastLengthAdd" }

type ProcessLastLengthSubtract struct {
	Base
	ValueType *DivisorClock
	Value     uint8
	Dots      uint8
}

func (ProcessLastLengthSubtract) Name() string { return "ProcessLastLengthSubtract" }

type ProcessLastLengthMultiply struct {
	Base
	Value uint8
}

func (ProcessLastLengthMultiply) Name() string { return "ProcessLastLengthMultiply" }

// Tie extends the previous note's duration without retriggering it.
type Tie struct {
	Base
	Length *uint8
	Dots   uint8
}

func (Tie) Name() string { return "Tie" }

// Slur extends the previous note's duration and legatos into it.
type Slur struct {
	Base
	Length *uint8
	Dots   uint8
}

func (Slur) Name() string { return "Slur" }

// Portamento is the "{ pitch1 pitch2 }length1.length2" block: the
// pitch list holds the Note/NoteX and octave ('o', '<', '>') commands
// between the braces, and any other command there is a ParseError
// (this front end's canonical shape per SPEC_FULL.md §4 — the
// surviving original_source draft models it as a fixed pitch1/pitch2
// pair, which doesn't match the variable-length block grammar here).
type Portamento struct {
	Base
	Pitches []Command
	Length1 *uint8
	Dots    uint8
	Length2 *uint8
}

func (Portamento) Name() string { return "Portamento" }

// Arpeggio is the "{{ pitch-list }}length1.length2,tie,gate,±mag"
// block. Slots 7-10 (tie/gate/sign/magnitude) are independent of
// Portamento's length grammar, per SPEC_FULL.md §4.
type Arpeggio struct {
	Base
	Pitches     []Command
	Length1     *uint8
	Dots        uint8
	Length2     *uint8
	Tie         bool
	GateClocks  *uint8
	Sign        *NegativePositive
	Magnitude   *uint8
}

func (Arpeggio) Name() string { return "Arpeggio" }

// AbsoluteTranspose is "_±n": a one-shot pitch shift applied to the
// single following note only.
type AbsoluteTranspose struct {
	Base
	Sign  *NegativePositive
	Value uint8
}

func (AbsoluteTranspose) Name() string { return "AbsoluteTranspose" }

// RelativeTranspose is "__±n": like AbsoluteTranspose but stacking
// onto the part's current transpose instead of overriding it.
type RelativeTranspose struct {
	Base
	Sign  *NegativePositive
	Value uint8
}

func (RelativeTranspose) Name() string { return "RelativeTranspose" }

// PartTranspose is the "_{ ±notes }" block: every Note command inside
// it is transposed by Sign before being appended to the part as
// written; any other command inside it is a ParseError. Unified single-struct shape — see
// SPEC_FULL.md §4 for why the flat Begin/End draft is not canonical.
type PartTranspose struct {
	Base
	Sign  *NegativePositiveEqual
	Notes []Command
}

func (PartTranspose) Name() string { return "PartTranspose" }

// MasterTranspose is "_M±n": shifts the whole part's base octave.
type MasterTranspose struct {
	Base
	Sign  *NegativePositive
	Value uint8
}

func (MasterTranspose) Name() string { return "MasterTranspose" }

// LocalLoop is the "[ body-pre : body-post ]count" block. BodyPost is
// nil when the line had no ':' separator. Unified single-struct shape
// — see SPEC_FULL.md §4.
type LocalLoop struct {
	Base
	BodyPre  []Command
	BodyPost []Command
	Count    *uint8
}

func (LocalLoop) Name() string { return "LocalLoop" }

// Quantize1 is "Q divisor value": gate duration as a fraction of the
// note length.
type Quantize1 struct {
	Base
	Divisor *DivisorClock
	Value   uint8
}

func (Quantize1) Name() string { return "Quantize1" }

// Quantize2 is "q..." in either of two surface forms: a numeric range
// ("q8-12") or a length-reference form using 'l' markers
// ("ql8.-l16"). Both populate the same fields; Value1Dots/Value3Dots
// are zero when the corresponding slot wasn't in length-reference
// form.
type Quantize2 struct {
	Base
	Value1     *uint8
	Value1Dots uint8
	Value2     *uint8
	Value3     *uint8
	Value3Dots uint8
}

func (Quantize2) Name() string { return "Quantize2" }

type Volume1 struct {
	Base
	Value uint8
}

func (Volume1) Name() string { return "Volume1" }

type Volume2 struct {
	Base
	Value uint8
}

func (Volume2) Name() string { return "Volume2" }

type GlobalVolume1Positive struct {
	Base
	Value uint8
}

func (GlobalVolume1Positive) Name() string { return "GlobalVolume1Positive" }

type GlobalVolume1Negative struct {
	Base
	Value uint8
}

func (GlobalVolume1Negative) Name() string { return "GlobalVolume1Negative" }

type GlobalVolume2Positive struct {
	Base
	Value uint8
}

func (GlobalVolume2Positive) Name() string { return "GlobalVolume2Positive" }

type GlobalVolume2Negative struct {
	Base
	Value uint8
}

func (GlobalVolume2Negative) Name() string { return "GlobalVolume2Negative" }

// SsgPcmSoftwareEnvelope is the "E" command configuring the SSG/PCM
// software envelope generator: attack/decay-ish numeric slots plus a
// signed slot (Value2) built from separate sign+magnitude tokens, the
// way original_source's to_some_i8 helper combines them.
type SsgPcmSoftwareEnvelope struct {
	Base
	Value1 uint8
	Value2 int8
	Value3 uint8
	Value4 uint8
	Value5 *uint8
	Value6 *uint8
}

func (SsgPcmSoftwareEnvelope) Name() string { return "SsgPcmSoftwareEnvelope" }
