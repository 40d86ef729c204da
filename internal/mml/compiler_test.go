package mml

import "testing"

// TestCompiler_Compile runs both passes end to end, stdlib-testing
// style (no assertion library), matching the terser tests elsewhere
// in this package.
func TestCompiler_Compile(t *testing.T) {
	c := NewCompiler(DefaultCompilerOptions())
	src := "#Tempo 120\nA c4d4e4\n"
	result, err := c.Compile("song.mml", src)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if len(result.Directives) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(result.Directives))
	}
	parts := result.GetParts(PartA)
	if len(parts) != 1 {
		t.Fatalf("expected 1 A-part entry, got %d", len(parts))
	}
	if len(parts[0]) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(parts[0]))
	}
}

func TestCompiler_Compile_PropagatesUnknownDirective(t *testing.T) {
	c := NewCompiler(DefaultCompilerOptions())
	_, err := c.Compile("song.mml", "#Bogus x\n")
	if err == nil {
		t.Fatal("expected an error for an unrecognized directive")
	}
}
