package vmcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentMaxIndex(t *testing.T) {
	assert.EqualValues(t, 32767, Constant.MaxIndex(239))
	assert.EqualValues(t, 32767, Local.MaxIndex(239))
	assert.EqualValues(t, 7, Temp.MaxIndex(239))
	assert.EqualValues(t, 1, Pointer.MaxIndex(239))
	assert.EqualValues(t, 239, Static.MaxIndex(239))
}

func TestSegmentMaxIndexHonorsOverriddenStaticBound(t *testing.T) {
	assert.EqualValues(t, 99, Static.MaxIndex(99))
	assert.EqualValues(t, 32767, Constant.MaxIndex(99), "non-static bounds are unaffected by the override")
}

func TestLookupSegment(t *testing.T) {
	for _, token := range []string{"constant", "local", "argument", "this", "that", "temp", "pointer", "static"} {
		seg, ok := LookupSegment(token)
		assert.True(t, ok, token)
		assert.Equal(t, token, seg.String())
	}

	_, ok := LookupSegment("bogus")
	assert.False(t, ok)
}

func TestCommandSurface(t *testing.T) {
	assert.Equal(t, "push local 3", Command{Kind: Push, Segment: Local, Index: 3}.Surface())
	assert.Equal(t, "pop that 0", Command{Kind: Pop, Segment: That, Index: 0}.Surface())
	assert.Equal(t, "label LOOP", Command{Kind: Label, Name: "LOOP"}.Surface())
	assert.Equal(t, "function Foo.bar 2", Command{Kind: Function, FuncName: "Foo.bar", N: 2}.Surface())
	assert.Equal(t, "call Foo.bar 2", Command{Kind: Call, FuncName: "Foo.bar", N: 2}.Surface())
	assert.Equal(t, "return", Command{Kind: Return}.Surface())
	assert.Equal(t, "add", Command{Kind: Add}.Surface())
}
