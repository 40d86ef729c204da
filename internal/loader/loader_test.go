package loader

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDecode_PlainASCIIRoundTrips(t *testing.T) {
	logger := zerolog.New(io.Discard)
	text, usedFallback, err := Decode(logger, []byte("A c4d4e4\n"))
	require.NoError(t, err)
	require.False(t, usedFallback)
	require.Equal(t, "A c4d4e4\n", text)
}

func TestDecode_ShiftJISBytesDecodeWithoutFallback(t *testing.T) {
	logger := zerolog.New(io.Discard)
	// 0x82 0xA0 is SHIFT_JIS for the hiragana character "あ", a single
	// valid SHIFT_JIS sequence that is not valid UTF-8 on its own.
	text, usedFallback, err := Decode(logger, []byte{0x82, 0xA0})
	require.NoError(t, err)
	require.False(t, usedFallback)
	require.Equal(t, "あ", text)
}
