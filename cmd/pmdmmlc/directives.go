package main

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cbegin/pmdmmlc-go/internal/loader"
	"github.com/cbegin/pmdmmlc-go/internal/mml"
)

func newDirectivesCmd(logger *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "directives <file>",
		Short: "Run only Pass 1 over an MML file and print directives/comments/variables/FM tones",
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

			result, err := mml.RunPass1(path, text)
			if err != nil {
				return fmt.Errorf("pass 1 on %s: %w", path, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"directives": dumpDirectives(result.Directives),
				"variables":  result.Variables,
				"fmTones":    result.FmTones,
				"comment1s":  result.Comment1s,
				"comment2s":  result.Comment2s,
			})
		},
	}
}
