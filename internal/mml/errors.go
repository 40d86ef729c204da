package mml

import "fmt"

// ParseError reports a malformed token at a specific source position.
// It is the Go counterpart of original_source's Pass1Error::ParseError
// / Pass2Error::ParseError, except it carries a message: the Rust
// drafts leave the message empty and rely on the variant name alone,
// which doesn't translate to a useful Go error string.
type ParseError struct {
	Loc     SourceLocation
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse error: %s", e.Loc, e.Message)
}

// UnbalancedBlockError reports a block command ('[', '{', '{{', '_{')
// that was opened but not closed before the end of its source line
// (Pass 2 parses each line on its own).
type UnbalancedBlockError struct {
	Loc   SourceLocation
	Block string
}

func (e *UnbalancedBlockError) Error() string {
	return fmt.Sprintf("%s: unbalanced block %q", e.Loc, e.Block)
}

// EmptyBlockError reports a block command whose body contained no
// commands, which every block grammar in this front end rejects.
type EmptyBlockError struct {
	Loc   SourceLocation
	Block string
}

func (e *EmptyBlockError) Error() string {
	return fmt.Sprintf("%s: empty %s body", e.Loc, e.Block)
}

// OperandRangeError reports a numeric directive operand outside the
// range its directive allows (#Tempo, #Zenlen, #Transpose, ...).
// Part-command operands are not range-checked.
type OperandRangeError struct {
	Loc     SourceLocation
	Field   string
	Value   int
	Min     int
	Max     int
}

func (e *OperandRangeError) Error() string {
	return fmt.Sprintf("%s: %s=%d out of range [%d,%d]", e.Loc, e.Field, e.Value, e.Min, e.Max)
}

// UnknownDirectiveError reports a '#' line whose directive name isn't
// in the catalog this front end recognizes.
type UnknownDirectiveError struct {
	Loc  SourceLocation
	Name string
}

func (e *UnknownDirectiveError) Error() string {
	return fmt.Sprintf("%s: unknown directive %q", e.Loc, e.Name)
}

// MalformedListError reports a comma/dash separated operand list (e.g.
// #Volumedown FR+16,P+128,S+32) that didn't parse as such.
type MalformedListError struct {
	Loc  SourceLocation
	Text string
}

func (e *MalformedListError) Error() string {
	return fmt.Sprintf("%s: malformed list %q", e.Loc, e.Text)
}
