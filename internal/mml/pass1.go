package mml

import (
	"strconv"
	"strings"
)

// pass1State is the per-character scanner state, grounded on
// original_source's pass1.rs Command enum (Nop/Comment1/Comment2/
// FmToneDefine/Macro/Variable — "Macro" there is what this front end
// calls a Directive).
type pass1State int

const (
	p1Nop pass1State = iota
	p1Comment1
	p1Comment2
	p1FmTone
	p1Directive
	p1Variable
)

// isSep matches original_source's utils::is_sep: space, tab, CR, LF.
func isSep(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// classifyPass1 decides which scanner state a non-separator character
// opens while the scanner is idle. Comment heads (';', '`') open at any
// column; directive/FM-tone/variable heads only fire at the start of a
// line, mirroring pass1.rs's "code.chars == 0" guards.
func classifyPass1(r rune, col int) pass1State {
	if isSep(r) {
		return p1Nop
	}
	switch r {
	case ';':
		return p1Comment1
	case '`':
		return p1Comment2
	case '@':
		if col == 0 {
			return p1FmTone
		}
	case '#':
		if col == 0 {
			return p1Directive
		}
	case '!':
		if col == 0 {
			return p1Variable
		}
	}
	return p1Nop
}

// RunPass1 scans src for directives, comments, variables and FM tone
// definitions. It does not parse part commands — those are Pass 2's
// job — though a ';' or '`' comment inside a part-command line is
// recorded here. It never opens a file itself; src is already
// decoded text handed in by the caller (see internal/loader).
func RunPass1(file, src string) (*Pass1Result, error) {
	// A trailing newline guarantees the last line's state machine
	// flushes, the same trick pass2.rs plays by appending "\n" before
	// scanning.
	cur := newCursor(file, src+"\n")
	result := &Pass1Result{}

	state := p1Nop
	var startLoc SourceLocation
	var buf strings.Builder
	var key string
	haveKey := false
	var fmTokens []string

	for !cur.done() {
		loc := cur.loc()
		c, _ := cur.advance()

		switch state {
		case p1Nop:
			next := classifyPass1(c, loc.Column)
			if next != p1Nop {
				state = next
				startLoc = loc
				buf.Reset()
				key = ""
				haveKey = false
				fmTokens = nil
			}

		case p1Comment1:
			if c == '\n' {
				result.Comment1s = append(result.Comment1s, Comment1{Loc: startLoc, Text: buf.String()})
				buf.Reset()
				state = p1Nop
			} else {
				buf.WriteRune(c)
			}

		case p1Comment2:
			if c == '`' {
				result.Comment2s = append(result.Comment2s, Comment2{Loc: startLoc, Text: buf.String()})
				buf.Reset()
				state = p1Nop
			} else {
				buf.WriteRune(c)
			}

		case p1FmTone:
			switch {
			case c == '\n':
				if buf.Len() > 0 {
					fmTokens = append(fmTokens, buf.String())
					buf.Reset()
				}
				tone, err := parseFmTone(startLoc, fmTokens)
				if err != nil {
					return nil, err
				}
				result.FmTones = append(result.FmTones, tone)
				state = p1Nop
			case c == '=':
				if buf.Len() > 0 {
					fmTokens = append(fmTokens, buf.String())
					buf.Reset()
				}
				fmTokens = append(fmTokens, "") // marker token for '='
			case isSep(c):
				if buf.Len() > 0 {
					fmTokens = append(fmTokens, buf.String())
					buf.Reset()
				}
			default:
				buf.WriteRune(c)
			}

		case p1Directive:
			if !haveKey {
				switch {
				case c == '\n':
					key = buf.String()
					buf.Reset()
					dir, err := buildDirective(startLoc, key, "")
					if err != nil {
						return nil, err
					}
					result.Directives = append(result.Directives, dir)
					state = p1Nop
				case isSep(c):
					key = buf.String()
					buf.Reset()
					haveKey = true
				default:
					buf.WriteRune(c)
				}
			} else if c == '\n' {
				dir, err := buildDirective(startLoc, key, buf.String())
				if err != nil {
					return nil, err
				}
				result.Directives = append(result.Directives, dir)
				buf.Reset()
				state = p1Nop
			} else {
				buf.WriteRune(c)
			}

		case p1Variable:
			if !haveKey {
				switch {
				case c == '\n':
					key = buf.String()
					buf.Reset()
					result.Variables = append(result.Variables, Variable{Loc: startLoc, Name: key, Value: ""})
					state = p1Nop
				case isSep(c):
					key = buf.String()
					buf.Reset()
					haveKey = true
				default:
					buf.WriteRune(c)
				}
			} else if c == '\n' {
				result.Variables = append(result.Variables, Variable{Loc: startLoc, Name: key, Value: buf.String()})
				buf.Reset()
				state = p1Nop
			} else {
				buf.WriteRune(c)
			}
		}
	}

	return result, nil
}

// parseFmTone builds an FmToneDefine from the flushed token list: five
// tokens (tone, algorism, feedback, "=", name) when the line named the
// tone, three (tone, algorism, feedback) otherwise — the exact two
// shapes original_source's pass1.rs::parse_fm_tone accepts.
func parseFmTone(loc SourceLocation, tokens []string) (FmToneDefine, error) {
	if len(tokens) != 5 && len(tokens) != 3 {
		return FmToneDefine{}, &ParseError{Loc: loc, Message: "malformed FM tone definition"}
	}
	if len(tokens) == 5 && tokens[3] != "" {
		return FmToneDefine{}, &ParseError{Loc: loc, Message: "malformed FM tone definition"}
	}
	tone, err := strconv.ParseUint(tokens[0], 10, 8)
	if err != nil {
		return FmToneDefine{}, &ParseError{Loc: loc, Message: "bad tone number"}
	}
	algorism, err := strconv.ParseUint(tokens[1], 10, 8)
	if err != nil {
		return FmToneDefine{}, &ParseError{Loc: loc, Message: "bad algorism"}
	}
	feedback, err := strconv.ParseUint(tokens[2], 10, 8)
	if err != nil {
		return FmToneDefine{}, &ParseError{Loc: loc, Message: "bad feedback"}
	}
	tone64 := FmToneDefine{Loc: loc, ToneNumber: uint8(tone), Algorism: uint8(algorism), Feedback: uint8(feedback)}
	if len(tokens) == 5 {
		tone64.Name = tokens[4]
	}
	return tone64, nil
}
