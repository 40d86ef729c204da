package main

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cbegin/pmdmmlc-go/internal/loader"
	"github.com/cbegin/pmdmmlc-go/internal/mml"
)

func newParseCmd(logger *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Run both passes over an MML file and print the resulting IR as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			text, usedFallback, err := loader.Load(*logger, path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			if usedFallback {
				logger.Warn().Str("file", path).Msg("shift_jis decode failed, used utf-8 fallback")
			}

			compiler := mml.NewCompiler(mml.DefaultCompilerOptions())
			result, err := compiler.Compile(path, text)
			if err != nil {
				return fmt.Errorf("compiling %s: %w", path, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dumpResult(result))
		},
	}
}

// dumpResult flattens a Pass2Result into plain maps/slices so
// encoding/json can render the Command interface values without each
// concrete command type needing a custom MarshalJSON.
func dumpResult(r *mml.Pass2Result) map[string]any {
	out := map[string]any{
		"directives": dumpDirectives(r.Directives),
		"variables":  r.Variables,
		"fmTones":    r.FmTones,
		"comment1s":  r.Comment1s,
		"comment2s":  r.Comment2s,
	}
	var parts []map[string]any
	for _, p := range r.Parts {
		parts = append(parts, map[string]any{
			"symbol":   string(rune(p.Symbol)),
			"commands": dumpCommands(p.Commands),
		})
	}
	out["parts"] = parts
	return out
}

func dumpDirectives(ds []mml.Directive) []map[string]any {
	var out []map[string]any
	for _, d := range ds {
		out = append(out, map[string]any{
			"name":     d.DirectiveName(),
			"location": d.Location().String(),
			"value":    fmt.Sprintf("%+v", d),
		})
	}
	return out
}

func dumpCommands(cmds []mml.Command) []map[string]any {
	var out []map[string]any
	for _, c := range cmds {
		out = append(out, map[string]any{
			"name":     c.Name(),
			"location": c.Location().String(),
			"value":    fmt.Sprintf("%+v", c),
		})
	}
	return out
}
