package mml

// CompilerOptions carries baseline settings (quantize maximum, default
// loop count) for a Compiler. It plays the role the teacher's
// ParserConfig plays in internal/mml/types.go. Compile does not read
// these values, and directives found by Pass 1 do not change them.
type CompilerOptions struct {
	QuantizeMax      int
	DefaultLoopCount int
}

// DefaultCompilerOptions returns the baseline options a file with no
// overriding directives compiles under.
func DefaultCompilerOptions() CompilerOptions {
	return CompilerOptions{
		QuantizeMax:      8,
		DefaultLoopCount: 2,
	}
}

// Compiler runs both passes over one MML source file. It holds no
// state between calls: every Compile call is independent, matching
// the single-threaded, no-shared-state model this front end commits
// to.
type Compiler struct {
	Options CompilerOptions
}

func NewCompiler(opts CompilerOptions) *Compiler {
	return &Compiler{Options: opts}
}

// Compile runs Pass 1 then Pass 2 over src (already-decoded text; see
// internal/loader for turning bytes into this). file is used only for
// SourceLocation.File on emitted commands/directives/errors.
func (c *Compiler) Compile(file, src string) (*Pass2Result, error) {
	p1, err := RunPass1(file, src)
	if err != nil {
		return nil, err
	}
	return RunPass2(file, src, p1)
}
