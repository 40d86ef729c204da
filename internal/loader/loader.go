// Package loader turns MML source bytes into the decoded text the
// internal/mml compiler passes operate on. It is deliberately outside
// internal/mml: character-set decoding and file I/O are external
// collaborators per that package's scope, not part of the two-pass
// front end itself.
package loader

import (
	"bytes"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/japanese"
)

// Load reads path and decodes it, preferring SHIFT_JIS (the encoding
// historically used for PMD MML files) and falling back to UTF-8 when
// the bytes don't decode cleanly as SHIFT_JIS — the same two-step
// original_source's lib.rs::load_from_file performs with encoding_rs.
func Load(log zerolog.Logger, path string) (text string, usedUTF8Fallback bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	return Decode(log, data)
}

// Decode applies the SHIFT_JIS-first, UTF-8-fallback policy to an
// in-memory byte slice, for callers that already have the bytes. A
// U+FFFD in the SHIFT_JIS decoder's output (its stand-in for an
// invalid sequence) triggers the fallback as well as a decoder error.
func Decode(log zerolog.Logger, data []byte) (text string, usedUTF8Fallback bool, err error) {
	decoded, decErr := japanese.ShiftJIS.NewDecoder().Bytes(data)
	if decErr == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
		return string(decoded), false, nil
	}
	log.Debug().Err(decErr).Msg("shift_jis decode failed, falling back to utf-8")
	return string(data), true, nil
}
