package mml

import "strconv"

// PartSymbol identifies an MML part/track letter. R is the rhythm part.
type PartSymbol byte

const (
	PartA PartSymbol = 'A'
	PartB PartSymbol = 'B'
	PartC PartSymbol = 'C'
	PartD PartSymbol = 'D'
	PartE PartSymbol = 'E'
	PartF PartSymbol = 'F'
	PartG PartSymbol = 'G'
	PartH PartSymbol = 'H'
	PartI PartSymbol = 'I'
	PartJ PartSymbol = 'J'
	PartK PartSymbol = 'K'
	PartR PartSymbol = 'R'
)

// isPartHead reports whether r opens a new part line in Pass 2. The
// set is the closed PartSymbol/ExtendPartSymbol union from
// original_source's models.rs, minus 'R' from the extended range (it
// is reserved for the rhythm part at the base level).
func isPartHead(r rune) bool {
	switch {
	case r >= 'A' && r <= 'K':
		return true
	case r == 'R':
		return true
	case r >= 'L' && r <= 'Z' && r != 'R':
		return true
	case r >= 'a' && r <= 'z':
		return true
	}
	return false
}

// InstrumentsCategorySymbol tags which sound source a tone-define or
// envelope directive targets: FM, SSG, PCM or Rhythm.
type InstrumentsCategorySymbol byte

const (
	CategoryFM      InstrumentsCategorySymbol = 'F'
	CategorySSG     InstrumentsCategorySymbol = 'S'
	CategoryPCM     InstrumentsCategorySymbol = 'P'
	CategoryRhythm  InstrumentsCategorySymbol = 'R'
)

// NegativePositive is the sign of a relative operand ('+'/'-').
type NegativePositive int

const (
	Positive NegativePositive = iota
	Negative
)

// NegativePositiveEqual extends NegativePositive with an explicit '='
// (no shift) option, used by PartTranspose's sign slot.
type NegativePositiveEqual int

const (
	NPEPositive NegativePositiveEqual = iota
	NPENegative
	NPEEqual
)

// OnOffOption is a directive-level boolean spelled "on"/"off".
type OnOffOption int

const (
	On OnOffOption = iota
	Off
)

func ParseOnOff(s string) (OnOffOption, bool) {
	switch s {
	case "on":
		return On, true
	case "off":
		return Off, true
	default:
		return 0, false
	}
}

// ReverseNormalOption toggles the starting-octave direction ("#Octave
// Reverse"/"#Octave Normal") and the SSG software envelope's direction.
type ReverseNormalOption int

const (
	Normal ReverseNormalOption = iota
	Reverse
)

func ParseReverseNormal(s string) (ReverseNormalOption, bool) {
	switch s {
	case "Reverse":
		return Reverse, true
	case "Normal":
		return Normal, true
	default:
		return 0, false
	}
}

// ExtendNormalOption toggles whether a directive operates in its
// extended or normal mode ("#Detune Extend"/"#Detune Normal", and
// likewise for LFOSpeed/EnvelopeSpeed/PCMVolume).
type ExtendNormalOption int

const (
	ExtendOptionNormal ExtendNormalOption = iota
	ExtendOptionExtend
)

func ParseExtendNormal(s string) (ExtendNormalOption, bool) {
	switch s {
	case "Extend":
		return ExtendOptionExtend, true
	case "Normal":
		return ExtendOptionNormal, true
	default:
		return 0, false
	}
}

// DivisorClockKind distinguishes a note-length expressed as a divisor
// of a whole note ("4" = quarter note) from one expressed as a raw
// tick count ("%48").
type DivisorClockKind int

const (
	DivisorClockDivisor DivisorClockKind = iota
	DivisorClockClock
)

// DivisorClock is the tagged union original_source calls a length
// operand that may be written either as "n" (1/n of a whole note) or
// "%n" (n raw clocks).
type DivisorClock struct {
	Kind DivisorClockKind
	N    uint8
}

func (d DivisorClock) String() string {
	if d.Kind == DivisorClockClock {
		return "%" + strconv.Itoa(int(d.N))
	}
	return strconv.Itoa(int(d.N))
}

// RelativeAbsolute8 is an operand that may be a signed relative shift
// ("+16"/"-16") or an unsigned absolute value ("16"), distinguished by
// a leading sign character the way original_source's
// RelativeAbsolute8::From<&str> does.
type RelativeAbsolute8 struct {
	IsRelative bool
	Relative   int16
	Absolute   uint8
}

func ParseRelativeAbsolute8(s string) (RelativeAbsolute8, error) {
	if s == "" {
		return RelativeAbsolute8{}, &ParseError{Message: "empty operand"}
	}
	if s[0] == '+' || s[0] == '-' {
		v, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return RelativeAbsolute8{}, &ParseError{Message: "bad relative operand " + s}
		}
		return RelativeAbsolute8{IsRelative: true, Relative: int16(v)}, nil
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return RelativeAbsolute8{}, &ParseError{Message: "bad absolute operand " + s}
	}
	return RelativeAbsolute8{Absolute: uint8(v)}, nil
}
