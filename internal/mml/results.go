package mml

// Comment1 is a ';'-led line comment (consumed to end of line).
type Comment1 struct {
	Loc  SourceLocation
	Text string
}

// Comment2 is a '`'-delimited comment (consumed to the next '`').
type Comment2 struct {
	Loc  SourceLocation
	Text string
}

// Variable is a "!name value" MML-string variable definition, e.g.
// "!h E1,-2,1,0v12P3w0q4" — the value is kept verbatim, expansion is
// out of scope (spec.md Non-goals).
type Variable struct {
	Loc   SourceLocation
	Name  string
	Value string
}

// FmToneDefine is an "@tone# algorism feedback[=name]" FM instrument
// definition line, grounded on original_source's pass1.rs parse_fm_tone
// (5 tokens with a name, 3 without).
type FmToneDefine struct {
	Loc        SourceLocation
	ToneNumber uint8
	Algorism   uint8
	Feedback   uint8
	Name       string // empty if the line had no "=name" suffix
}

// Pass1Result is the full output of the directive scanner: every
// recognized directive plus every comment/macro/variable/FM-tone
// definition line, in source order. It mirrors original_source's
// meta_models::Pass1Result.
type Pass1Result struct {
	Directives []Directive
	Comment1s  []Comment1
	Comment2s  []Comment2
	Variables  []Variable
	FmTones    []FmToneDefine
}

// Pass2Result extends Pass1Result with the per-part command lists
// Pass 2 produced. Multiple source lines for the same part symbol
// each contribute their own entry — GetParts collects the entries for
// one symbol, one command list per line, the way original_source's
// Pass2Result::get_parts does.
type Pass2Result struct {
	Pass1Result
	Parts []PartCommands
}

// PartCommands is one source line's worth of parsed commands for a
// single part symbol.
type PartCommands struct {
	Symbol   PartSymbol
	Commands []Command
}

// GetParts returns every command list recorded for the given part
// symbol, across however many source lines opened with it.
func (r *Pass2Result) GetParts(symbol PartSymbol) [][]Command {
	var out [][]Command
	for _, p := range r.Parts {
		if p.Symbol == symbol {
			out = append(out, p.Commands)
		}
	}
	return out
}
