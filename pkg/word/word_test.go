package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoWordMovRegisters(t *testing.T) {
	// mov r3, r5: opcode 0, source mode 3 bit at 7+3=10, target mode 3 bit
	// at 3+3=6, ARE=A.
	w := InfoWord(0, true, ModeRegister, true, ModeRegister, AreAbsolute)
	assert.Equal(t, Word(1<<10|1<<6|int(AreAbsolute)), w)
}

func TestInfoWordNoOperands(t *testing.T) {
	// stop: opcode 15, no source or target mode bits at all, ARE=A.
	w := InfoWord(15, false, 0, false, 0, AreAbsolute)
	assert.Equal(t, Word(15<<11|int(AreAbsolute)), w)
}

func TestCombinedRegisterWord(t *testing.T) {
	// source r3 (011), target r5 (101), ARE=A.
	w := CombinedRegisterWord(3, 5)
	assert.Equal(t, Word(0b011<<6|0b101<<3|0b100), w)
}

func TestDataWordMasking(t *testing.T) {
	tests := []struct {
		value int
		want  Word
	}{
		{7, 0x0007},
		{-3, 0x7FFD},
		{5, 0x0005},
	}
	for _, tt := range tests {
		got := DataWord(tt.value)
		assert.Equalf(t, tt.want, got, "DataWord(%d)", tt.value)
	}
}

func TestImmediateWordRange(t *testing.T) {
	_, err := ImmediateWord(2048)
	require.Error(t, err, "#2048 must be rejected")

	_, err = ImmediateWord(-2048)
	require.NoError(t, err)

	w, err := ImmediateWord(0)
	require.NoError(t, err)
	assert.Equal(t, AreAbsolute, AREOf(w))
}

func TestAddressWordExternalIsZeroed(t *testing.T) {
	w := AddressWord(1234, AreExternal)
	assert.Equal(t, AreExternal, AREOf(w))
	assert.Equal(t, 0, AddressOf(w))
}

func TestAddressWordInternal(t *testing.T) {
	w := AddressWord(101, AreRelative)
	assert.Equal(t, AreRelative, AREOf(w))
	assert.Equal(t, 101, AddressOf(w))
}

func TestLookupMnemonics(t *testing.T) {
	def, ok := Lookup("mov")
	require.True(t, ok)
	assert.Equal(t, 0, def.Opcode)
	assert.True(t, def.AllowsTargetMode(ModeDirect))
	assert.False(t, def.AllowsTargetMode(ModeImmediate))

	def, ok = Lookup("lea")
	require.True(t, ok)
	assert.True(t, def.AllowsSourceMode(ModeDirect))
	assert.False(t, def.AllowsSourceMode(ModeImmediate))

	_, ok = Lookup("nope")
	assert.False(t, ok)
}
