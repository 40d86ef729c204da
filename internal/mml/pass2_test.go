package mml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func u8p(v uint8) *uint8 { return &v }

func npp(v NegativePositive) *NegativePositive { return &v }

func npep(v NegativePositiveEqual) *NegativePositiveEqual { return &v }

// TestRunPass2_SinglePartLine is a direct port of original_source's
// pass2.rs test_1: a single G-part line exercising notes, accidentals,
// ties-by-dots, the one-shot and stacking transpose forms, a local
// loop with a transpose inside its body, a part-transpose block and a
// master transpose, all on one line.
func TestRunPass2_SinglePartLine(t *testing.T) {
	src := "G\tc+4d-12e8f.g=a..b4...._-2[e__+1]8_0_{-eab}_M+120\n"

	result, err := RunPass2("sample.mml", src, &Pass1Result{})
	require.NoError(t, err)

	parts := result.GetParts(PartG)
	require.Len(t, parts, 1)
	cmds := parts[0]
	require.Len(t, cmds, 12)

	note := cmds[0].(Note)
	require.Equal(t, byte('c'), note.Letter)
	require.Equal(t, npp(Positive), note.Accidental)
	require.Equal(t, u8p(4), note.Length)
	require.EqualValues(t, 0, note.Dots)

	note = cmds[1].(Note)
	require.Equal(t, byte('d'), note.Letter)
	require.Equal(t, npp(Negative), note.Accidental)
	require.Equal(t, u8p(12), note.Length)

	note = cmds[2].(Note)
	require.Equal(t, byte('e'), note.Letter)
	require.Nil(t, note.Accidental)
	require.Equal(t, u8p(8), note.Length)

	note = cmds[3].(Note)
	require.Equal(t, byte('f'), note.Letter)
	require.Nil(t, note.Length)
	require.EqualValues(t, 1, note.Dots)

	note = cmds[4].(Note)
	require.Equal(t, byte('g'), note.Letter)
	require.True(t, note.Natural)
	require.Nil(t, note.Length)
	require.EqualValues(t, 0, note.Dots)

	note = cmds[5].(Note)
	require.Equal(t, byte('a'), note.Letter)
	require.Nil(t, note.Length)
	require.EqualValues(t, 2, note.Dots)

	note = cmds[6].(Note)
	require.Equal(t, byte('b'), note.Letter)
	require.Equal(t, u8p(4), note.Length)
	require.EqualValues(t, 4, note.Dots)

	abs := cmds[7].(AbsoluteTranspose)
	require.Equal(t, npp(Negative), abs.Sign)
	require.EqualValues(t, 2, abs.Value)

	loop := cmds[8].(LocalLoop)
	require.Len(t, loop.BodyPre, 2)
	require.Nil(t, loop.BodyPost)
	innerNote := loop.BodyPre[0].(Note)
	require.Equal(t, byte('e'), innerNote.Letter)
	innerTranspose := loop.BodyPre[1].(RelativeTranspose)
	require.Equal(t, npp(Positive), innerTranspose.Sign)
	require.EqualValues(t, 1, innerTranspose.Value)
	require.Equal(t, u8p(8), loop.Count)

	abs2 := cmds[9].(AbsoluteTranspose)
	require.Nil(t, abs2.Sign)
	require.EqualValues(t, 0, abs2.Value)

	partTranspose := cmds[10].(PartTranspose)
	require.Equal(t, npep(NPENegative), partTranspose.Sign)
	require.Len(t, partTranspose.Notes, 3)
	require.Equal(t, byte('e'), partTranspose.Notes[0].(Note).Letter)
	require.Equal(t, byte('a'), partTranspose.Notes[1].(Note).Letter)
	require.Equal(t, byte('b'), partTranspose.Notes[2].(Note).Letter)

	master := cmds[11].(MasterTranspose)
	require.Equal(t, npp(Positive), master.Sign)
	require.EqualValues(t, 120, master.Value)
}

// TestRunPass2_MultipleLinesSamePartAggregate confirms that multiple
// source lines opening with the same part letter each contribute
// their own entry to Pass2Result.Parts, queryable via GetParts — the
// behavior original_source's pass2.rs test_2 (get_parts(&G).len()==7)
// exists to pin down.
func TestRunPass2_MultipleLinesSamePartAggregate(t *testing.T) {
	src := "G c4\nG d4\nG e4\n"
	result, err := RunPass2("sample.mml", src, &Pass1Result{})
	require.NoError(t, err)
	require.Len(t, result.GetParts(PartG), 3)
	require.Empty(t, result.GetParts(PartA))
}

func TestRunPass2_SkipsDirectiveAndCommentLines(t *testing.T) {
	src := "#Title test\n; a comment\nA c4\n"
	result, err := RunPass2("sample.mml", src, &Pass1Result{})
	require.NoError(t, err)
	parts := result.GetParts(PartA)
	require.Len(t, parts, 1)
	require.Len(t, parts[0], 1)
}

func TestRunPass2_UnbalancedLoopIsAnError(t *testing.T) {
	_, err := RunPass2("sample.mml", "A [c4\n", &Pass1Result{})
	require.Error(t, err)
	var unbalanced *UnbalancedBlockError
	require.ErrorAs(t, err, &unbalanced)
}

func TestRunPass2_EmptyPortamentoIsAnError(t *testing.T) {
	_, err := RunPass2("sample.mml", "A {}4\n", &Pass1Result{})
	require.Error(t, err)
	var empty *EmptyBlockError
	require.ErrorAs(t, err, &empty)
}
