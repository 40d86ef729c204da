package mml

import (
	"strconv"
	"strings"
)

// Directive is any '#'-led line Pass 1 recognizes. Most directives
// just carry their raw comma-separated argument text (PMD's directive
// grammars vary too much to justify a bespoke struct for each one —
// the ones that have a concrete range, enum, or list shape in
// spec.md §6 get typed accessors below because later passes or tests
// need their values, not just their text).
type Directive interface {
	Location() SourceLocation
	DirectiveName() string
}

type baseDirective struct {
	Loc  SourceLocation
	Name string
	Args string
}

func (d baseDirective) Location() SourceLocation { return d.Loc }
func (d baseDirective) DirectiveName() string    { return d.Name }

// directiveNames is the closed set of directive names this front end
// recognizes, matching the table in PMD reference documentation
// reproduced (without the original manual's prose) as doc comments in
// original_source's meta_models.rs. Lookup is case-insensitive per
// spec.md §6's "Key (case-insensitive)" column.
var directiveNames = []string{
	"Filename", "PPSFile", "PPCFile", "PCMFile", "FFFile", "PPZFile",
	"Include", "Title", "Composer", "Arranger", "Memo", "Option",
	"Tempo", "Timer", "Zenlen", "Bendrange", "LoopDefault", "Jump",
	"Transpose", "Octave", "DT2Flag", "ADPCM", "Detune", "LFOSpeed",
	"EnvelopeSpeed", "PCMVolume", "FM3Extend", "PPZExtend", "Volumedown",
}

// canonicalDirectiveName resolves a directive name case-insensitively
// to its canonical spelling, reporting false when it isn't in the
// catalog at all.
func canonicalDirectiveName(name string) (string, bool) {
	for _, n := range directiveNames {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}

// Include is the directive recorded for "#Include path" lines. Per
// the open question in spec.md §9/§4 above, the path is recorded
// as-is; recursive file loading is a job for the (out-of-scope)
// loader, run before Pass 1 sees the included text at all, not for
// this directive itself.
type Include struct {
	Loc  SourceLocation
	Path string
}

func (d Include) Location() SourceLocation { return d.Loc }
func (d Include) DirectiveName() string    { return "Include" }

// Tempo is "#Tempo n" — a whole-song starting BPM, valid 18..255.
type Tempo struct {
	Loc SourceLocation
	BPM int
}

func (d Tempo) Location() SourceLocation { return d.Loc }
func (d Tempo) DirectiveName() string    { return "Tempo" }

// Timer is "#Timer n" — the hardware timer divisor, valid 0..250.
type Timer struct {
	Loc   SourceLocation
	Value int
}

func (d Timer) Location() SourceLocation { return d.Loc }
func (d Timer) DirectiveName() string    { return "Timer" }

// Zenlen is "#Zenlen n" — the implicit divisor a bare length operand
// with no digits resolves to, valid 1..255.
type Zenlen struct {
	Loc   SourceLocation
	Value int
}

func (d Zenlen) Location() SourceLocation { return d.Loc }
func (d Zenlen) DirectiveName() string    { return "Zenlen" }

// Bendrange is "#Bendrange n" — pitch-bend range in semitones, valid
// 0..255.
type Bendrange struct {
	Loc   SourceLocation
	Value int
}

func (d Bendrange) Location() SourceLocation { return d.Loc }
func (d Bendrange) DirectiveName() string    { return "Bendrange" }

// Jump is "#Jump n" — an unsigned 16-bit clock offset.
type Jump struct {
	Loc   SourceLocation
	Value int
}

func (d Jump) Location() SourceLocation { return d.Loc }
func (d Jump) DirectiveName() string    { return "Jump" }

// Transpose is "#Transpose n" — a whole-song signed 8-bit semitone
// shift.
type Transpose struct {
	Loc   SourceLocation
	Value int
}

func (d Transpose) Location() SourceLocation { return d.Loc }
func (d Transpose) DirectiveName() string    { return "Transpose" }

// OctaveDirective is "#Octave Reverse|Normal" — whether the starting
// octave numbering runs high-to-low or low-to-high. Named with a
// Directive suffix to avoid colliding with the Pass 2 Octave command
// ("o" within a part line) — same directive name, distinct concept,
// per SPEC_FULL.md's directive table.
type OctaveDirective struct {
	Loc   SourceLocation
	Value ReverseNormalOption
}

func (d OctaveDirective) Location() SourceLocation { return d.Loc }
func (d OctaveDirective) DirectiveName() string    { return "Octave" }

// LoopDefault is "#LoopDefault n" — default repeat count for a
// LocalLoop with no explicit count, valid 0..255.
type LoopDefault struct {
	Loc   SourceLocation
	Count int
}

func (d LoopDefault) Location() SourceLocation { return d.Loc }
func (d LoopDefault) DirectiveName() string    { return "LoopDefault" }

// DT2Flag is "#DT2Flag on|off" — whether the YM2608 DT2 detune bit is
// applied.
type DT2Flag struct {
	Loc   SourceLocation
	Value OnOffOption
}

func (d DT2Flag) Location() SourceLocation { return d.Loc }
func (d DT2Flag) DirectiveName() string    { return "DT2Flag" }

// ADPCM is "#ADPCM on|off" — whether the ADPCM PCM data block is used.
type ADPCM struct {
	Loc   SourceLocation
	Value OnOffOption
}

func (d ADPCM) Location() SourceLocation { return d.Loc }
func (d ADPCM) DirectiveName() string    { return "ADPCM" }

// Detune is "#Detune Extend|Normal" — whether per-operator detune
// values use the extended range.
type Detune struct {
	Loc   SourceLocation
	Value ExtendNormalOption
}

func (d Detune) Location() SourceLocation { return d.Loc }
func (d Detune) DirectiveName() string    { return "Detune" }

// LFOSpeed is "#LFOSpeed Extend|Normal" — whether the hardware LFO
// speed field uses the extended range.
type LFOSpeed struct {
	Loc   SourceLocation
	Value ExtendNormalOption
}

func (d LFOSpeed) Location() SourceLocation { return d.Loc }
func (d LFOSpeed) DirectiveName() string    { return "LFOSpeed" }

// EnvelopeSpeed is "#EnvelopeSpeed Extend|Normal" — whether the SSG
// software envelope's speed field uses the extended range.
type EnvelopeSpeed struct {
	Loc   SourceLocation
	Value ExtendNormalOption
}

func (d EnvelopeSpeed) Location() SourceLocation { return d.Loc }
func (d EnvelopeSpeed) DirectiveName() string    { return "EnvelopeSpeed" }

// PCMVolume is "#PCMVolume Extend|Normal" — whether PCM channel
// volume uses the extended range.
type PCMVolume struct {
	Loc   SourceLocation
	Value ExtendNormalOption
}

func (d PCMVolume) Location() SourceLocation { return d.Loc }
func (d PCMVolume) DirectiveName() string    { return "PCMVolume" }

// PPZFile is "#PPZFile path[,path]" — 1..2 comma-separated PPZ8
// sample bank paths, no spaces permitted around the comma.
type PPZFile struct {
	Loc   SourceLocation
	Paths []string
}

func (d PPZFile) Location() SourceLocation { return d.Loc }
func (d PPZFile) DirectiveName() string    { return "PPZFile" }

func parsePPZFile(loc SourceLocation, raw string) (PPZFile, error) {
	if strings.Contains(raw, ", ") || strings.Contains(raw, " ,") {
		return PPZFile{}, &MalformedListError{Loc: loc, Text: raw}
	}
	paths := strings.Split(raw, ",")
	if len(paths) < 1 || len(paths) > 2 {
		return PPZFile{}, &MalformedListError{Loc: loc, Text: raw}
	}
	for _, p := range paths {
		if p == "" {
			return PPZFile{}, &MalformedListError{Loc: loc, Text: raw}
		}
	}
	return PPZFile{Loc: loc, Paths: paths}, nil
}

// FM3Extend is "#FM3Extend xyz" — 1..3 extension-part letters that
// widen the FM3 channel into extra addressable parts.
type FM3Extend struct {
	Loc     SourceLocation
	Symbols []PartSymbol
}

func (d FM3Extend) Location() SourceLocation { return d.Loc }
func (d FM3Extend) DirectiveName() string    { return "FM3Extend" }

// PPZExtend is "#PPZExtend xyz..." — 1..8 extension-part letters for
// the PPZ8 PCM channels.
type PPZExtend struct {
	Loc     SourceLocation
	Symbols []PartSymbol
}

func (d PPZExtend) Location() SourceLocation { return d.Loc }
func (d PPZExtend) DirectiveName() string    { return "PPZExtend" }

// isExtensionPartLetter reports whether r is a legal extension part
// letter: L-Z or a-z, with 'R' already excluded from the upper range
// (it is reserved for the rhythm part at the base level).
func isExtensionPartLetter(r byte) bool {
	switch {
	case r >= 'L' && r <= 'Z' && r != 'R':
		return true
	case r >= 'a' && r <= 'z':
		return true
	}
	return false
}

// parseExtendSymbols reads raw as a run of extension-part letters,
// enforcing the [min,max] count spec.md §6 assigns to FM3Extend (1..3)
// and PPZExtend (1..8).
func parseExtendSymbols(loc SourceLocation, raw string, min, max int) ([]PartSymbol, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < min || len(trimmed) > max {
		return nil, &MalformedListError{Loc: loc, Text: raw}
	}
	out := make([]PartSymbol, 0, len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if !isExtensionPartLetter(c) {
			return nil, &MalformedListError{Loc: loc, Text: raw}
		}
		out = append(out, PartSymbol(c))
	}
	return out, nil
}

// Volumedown is "#Volumedown FR+16,P+128,S+32" — a per-category
// volume trim. A tuple's leading letters may name more than one
// category at once (e.g. "FR" sets both FM and Rhythm to the same
// value, per spec.md §8 scenario 5's worked example), each a
// RelativeAbsolute8 the way models.rs's worked comment describes
// (absolute values up to 128 allowed even though the category max is
// nominally 127).
type Volumedown struct {
	Loc    SourceLocation
	FM     *RelativeAbsolute8
	SSG    *RelativeAbsolute8
	PCM    *RelativeAbsolute8
	Rhythm *RelativeAbsolute8
}

func (d Volumedown) Location() SourceLocation { return d.Loc }
func (d Volumedown) DirectiveName() string    { return "Volumedown" }

func parseVolumedown(loc SourceLocation, raw string) (Volumedown, error) {
	if strings.TrimSpace(raw) == "" {
		return Volumedown{}, &MalformedListError{Loc: loc, Text: raw}
	}
	out := Volumedown{Loc: loc}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i := 0
		var cats []byte
		for i < len(part) {
			c := part[i]
			if c == 'F' || c == 'S' || c == 'P' || c == 'R' {
				cats = append(cats, c)
				i++
				continue
			}
			break
		}
		if len(cats) == 0 {
			return Volumedown{}, &MalformedListError{Loc: loc, Text: raw}
		}
		val, err := ParseRelativeAbsolute8(part[i:])
		if err != nil {
			return Volumedown{}, &MalformedListError{Loc: loc, Text: raw}
		}
		for _, cat := range cats {
			v := val
			switch cat {
			case 'F':
				out.FM = &v
			case 'S':
				out.SSG = &v
			case 'P':
				out.PCM = &v
			case 'R':
				out.Rhythm = &v
			}
		}
	}
	return out, nil
}

// rangeCheck builds an OperandRangeError when v falls outside
// [min,max], the shared guard every ranged directive in spec.md §6
// goes through ("#Tempo 256" fails, "#Zenlen 0" fails, ...).
func rangeCheck(loc SourceLocation, field string, v, min, max int) error {
	if v < min || v > max {
		return &OperandRangeError{Loc: loc, Field: field, Value: v, Min: min, Max: max}
	}
	return nil
}

// buildDirective dispatches a recognized "#name value" line to its
// typed struct, or to baseDirective for names this front end tracks
// only as raw text.
func buildDirective(loc SourceLocation, name, value string) (Directive, error) {
	canonical, ok := canonicalDirectiveName(name)
	if !ok {
		return nil, &UnknownDirectiveError{Loc: loc, Name: name}
	}
	trimmed := strings.TrimSpace(value)
	switch canonical {
	case "Include":
		return Include{Loc: loc, Path: trimmed}, nil
	case "Tempo":
		n, err := parseIntOperand(loc, "Tempo", trimmed)
		if err != nil {
			return nil, err
		}
		if err := rangeCheck(loc, "Tempo", n, 18, 255); err != nil {
			return nil, err
		}
		return Tempo{Loc: loc, BPM: n}, nil
	case "Timer":
		n, err := parseIntOperand(loc, "Timer", trimmed)
		if err != nil {
			return nil, err
		}
		if err := rangeCheck(loc, "Timer", n, 0, 250); err != nil {
			return nil, err
		}
		return Timer{Loc: loc, Value: n}, nil
	case "Zenlen":
		n, err := parseIntOperand(loc, "Zenlen", trimmed)
		if err != nil {
			return nil, err
		}
		if err := rangeCheck(loc, "Zenlen", n, 1, 255); err != nil {
			return nil, err
		}
		return Zenlen{Loc: loc, Value: n}, nil
	case "Bendrange":
		n, err := parseIntOperand(loc, "Bendrange", trimmed)
		if err != nil {
			return nil, err
		}
		if err := rangeCheck(loc, "Bendrange", n, 0, 255); err != nil {
			return nil, err
		}
		return Bendrange{Loc: loc, Value: n}, nil
	case "LoopDefault":
		n, err := parseIntOperand(loc, "LoopDefault", trimmed)
		if err != nil {
			return nil, err
		}
		if err := rangeCheck(loc, "LoopDefault", n, 0, 255); err != nil {
			return nil, err
		}
		return LoopDefault{Loc: loc, Count: n}, nil
	case "Jump":
		n, err := parseIntOperand(loc, "Jump", trimmed)
		if err != nil {
			return nil, err
		}
		if err := rangeCheck(loc, "Jump", n, 0, 65535); err != nil {
			return nil, err
		}
		return Jump{Loc: loc, Value: n}, nil
	case "Transpose":
		n, err := parseIntOperand(loc, "Transpose", trimmed)
		if err != nil {
			return nil, err
		}
		if err := rangeCheck(loc, "Transpose", n, -128, 127); err != nil {
			return nil, err
		}
		return Transpose{Loc: loc, Value: n}, nil
	case "Octave":
		v, ok := ParseReverseNormal(trimmed)
		if !ok {
			return nil, &ParseError{Loc: loc, Message: "bad Octave value " + strconv.Quote(trimmed)}
		}
		return OctaveDirective{Loc: loc, Value: v}, nil
	case "DT2Flag":
		v, ok := ParseOnOff(trimmed)
		if !ok {
			return nil, &ParseError{Loc: loc, Message: "bad DT2Flag value " + strconv.Quote(trimmed)}
		}
		return DT2Flag{Loc: loc, Value: v}, nil
	case "ADPCM":
		v, ok := ParseOnOff(trimmed)
		if !ok {
			return nil, &ParseError{Loc: loc, Message: "bad ADPCM value " + strconv.Quote(trimmed)}
		}
		return ADPCM{Loc: loc, Value: v}, nil
	case "Detune":
		v, ok := ParseExtendNormal(trimmed)
		if !ok {
			return nil, &ParseError{Loc: loc, Message: "bad Detune value " + strconv.Quote(trimmed)}
		}
		return Detune{Loc: loc, Value: v}, nil
	case "LFOSpeed":
		v, ok := ParseExtendNormal(trimmed)
		if !ok {
			return nil, &ParseError{Loc: loc, Message: "bad LFOSpeed value " + strconv.Quote(trimmed)}
		}
		return LFOSpeed{Loc: loc, Value: v}, nil
	case "EnvelopeSpeed":
		v, ok := ParseExtendNormal(trimmed)
		if !ok {
			return nil, &ParseError{Loc: loc, Message: "bad EnvelopeSpeed value " + strconv.Quote(trimmed)}
		}
		return EnvelopeSpeed{Loc: loc, Value: v}, nil
	case "PCMVolume":
		v, ok := ParseExtendNormal(trimmed)
		if !ok {
			return nil, &ParseError{Loc: loc, Message: "bad PCMVolume value " + strconv.Quote(trimmed)}
		}
		return PCMVolume{Loc: loc, Value: v}, nil
	case "PPZFile":
		return parsePPZFile(loc, trimmed)
	case "FM3Extend":
		symbols, err := parseExtendSymbols(loc, trimmed, 1, 3)
		if err != nil {
			return nil, err
		}
		return FM3Extend{Loc: loc, Symbols: symbols}, nil
	case "PPZExtend":
		symbols, err := parseExtendSymbols(loc, trimmed, 1, 8)
		if err != nil {
			return nil, err
		}
		return PPZExtend{Loc: loc, Symbols: symbols}, nil
	case "Volumedown":
		return parseVolumedown(loc, trimmed)
	default:
		return baseDirective{Loc: loc, Name: canonical, Args: trimmed}, nil
	}
}

func parseIntOperand(loc SourceLocation, field, s string) (int, error) {
	n, err := atoiSigned(s)
	if err != nil {
		return 0, &ParseError{Loc: loc, Message: "bad " + field + " value " + strconv.Quote(s)}
	}
	return n, nil
}

// atoiSigned parses an optionally '+'-prefixed or '-'-prefixed decimal
// integer; strconv.Atoi already accepts a leading '-' but rejects a
// leading '+', which PMD directives (e.g. "#Transpose +2") allow.
func atoiSigned(s string) (int, error) {
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	return strconv.Atoi(s)
}
