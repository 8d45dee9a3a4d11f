package xonshlex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewState_SeedsZeroBottomIndent(t *testing.T) {
	st := NewState()
	require.Equal(t, []uint16{0}, st.Indents)
	require.Empty(t, st.Delimiters)
	require.False(t, st.InsideInterpolated)
}

func TestState_IndentStack_PushPop(t *testing.T) {
	st := NewState()
	st.pushIndent(4)
	st.pushIndent(8)
	require.Equal(t, uint16(8), st.currentIndent())

	st.popIndent()
	require.Equal(t, uint16(4), st.currentIndent())

	// Popping the mandatory 0 bottom is a no-op.
	st.popIndent()
	st.popIndent()
	require.Equal(t, uint16(0), st.currentIndent())
	require.Len(t, st.Indents, 1)
}

func TestState_DelimiterStack_TracksInsideInterpolated(t *testing.T) {
	st := NewState()
	plain := newDelimiter().setEndCharacter('\'')
	format := newDelimiter().setEndCharacter('"').setFormat()

	st.pushDelimiter(plain)
	require.False(t, st.InsideInterpolated)

	st.pushDelimiter(format)
	require.True(t, st.InsideInterpolated)

	st.popDelimiter()
	require.False(t, st.InsideInterpolated)

	top, ok := st.topDelimiter()
	require.True(t, ok)
	require.Equal(t, plain, top)
}

func TestState_SerializeDeserialize_RoundTrip(t *testing.T) {
	original := NewState()
	original.pushIndent(4)
	original.pushIndent(8)
	original.pushDelimiter(newDelimiter().setEndCharacter('\'').setTriple())
	original.pushDelimiter(newDelimiter().setEndCharacter('"').setFormat())

	buf := original.Serialize()
	restored := Deserialize(buf)

	if diff := cmp.Diff(original, restored); diff != "" {
		t.Fatalf("state did not round-trip (-want +got):\n%s", diff)
	}
}

func TestState_Deserialize_EmptyBufferYieldsFreshState(t *testing.T) {
	restored := Deserialize(nil)
	fresh := NewState()
	if diff := cmp.Diff(fresh, restored); diff != "" {
		t.Fatalf("empty buffer did not yield a fresh state (-want +got):\n%s", diff)
	}
}

func TestState_Serialize_ClampsIndentWidths(t *testing.T) {
	st := NewState()
	st.pushIndent(9000)

	buf := st.Serialize()
	last := buf[len(buf)-1]
	require.Equal(t, byte(255), last)
}
