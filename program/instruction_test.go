package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Decode(t *testing.T) {
	assert := assert.New(t)

	for _, ins := range InstructionSet {
		decoded, ok := Decode(byte(ins))
		assert.True(ok)
		assert.Equal(ins, decoded)
		assert.Equal(string(rune(ins)), ins.String())
	}

	for _, c := range []byte("abc 0\n\t#!") {
		_, ok := Decode(c)
		assert.False(ok, string(c))
	}
}

func TestInstruction_IsJump(t *testing.T) {
	assert := assert.New(t)

	jumps := 0
	for _, ins := range InstructionSet {
		if ins.IsJump() {
			jumps++
		}
	}
	assert.Equal(2, jumps)
	assert.True(SKIP_FORWARD.IsJump())
	assert.True(SKIP_BACKWARD.IsJump())
	assert.False(OUTPUT.IsJump())
}

func TestInstruction_String_Invalid(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Instruction(97)", Instruction('a').String())
}
