package word

// InstructionDef is a table-driven description of one mnemonic: its opcode
// number, operand count, and the addressing modes each operand position
// accepts. This mirrors the table-driven InstructionDef/InstructionPattern
// style a Z80 assembler uses for its much larger opcode space, scaled down
// to sixteen fixed entries.
type InstructionDef struct {
	Opcode       int
	Mnemonic     string
	OperandCount int
	SourceModes  []Mode // nil/empty when OperandCount < 2
	TargetModes  []Mode // nil/empty when OperandCount == 0
}

func modes(ms ...Mode) []Mode { return ms }

// instructionTable lists the sixteen mnemonics in opcode order.
var instructionTable = []InstructionDef{
	{0, "mov", 2, modes(0, 1, 2, 3), modes(1, 2, 3)},
	{1, "cmp", 2, modes(0, 1, 2, 3), modes(0, 1, 2, 3)},
	{2, "add", 2, modes(0, 1, 2, 3), modes(1, 2, 3)},
	{3, "sub", 2, modes(0, 1, 2, 3), modes(1, 2, 3)},
	{4, "lea", 2, modes(1), modes(1, 2, 3)},
	{5, "clr", 1, nil, modes(1, 2, 3)},
	{6, "not", 1, nil, modes(1, 2, 3)},
	{7, "inc", 1, nil, modes(1, 2, 3)},
	{8, "dec", 1, nil, modes(1, 2, 3)},
	{9, "jmp", 1, nil, modes(1, 2)},
	{10, "bne", 1, nil, modes(1, 2)},
	{11, "red", 1, nil, modes(1, 2, 3)},
	{12, "prn", 1, nil, modes(0, 1, 2, 3)},
	{13, "jsr", 1, nil, modes(1, 2)},
	{14, "rts", 0, nil, nil},
	{15, "stop", 0, nil, nil},
}

var byMnemonic map[string]*InstructionDef

func init() {
	byMnemonic = make(map[string]*InstructionDef, len(instructionTable))
	for i := range instructionTable {
		byMnemonic[instructionTable[i].Mnemonic] = &instructionTable[i]
	}
}

// Lookup returns the InstructionDef for a mnemonic, or false if it names no
// instruction.
func Lookup(mnemonic string) (*InstructionDef, bool) {
	def, ok := byMnemonic[mnemonic]
	return def, ok
}

// AllowsSourceMode reports whether m is a legal source addressing mode for
// this instruction.
func (d *InstructionDef) AllowsSourceMode(m Mode) bool {
	for _, am := range d.SourceModes {
		if am == m {
			return true
		}
	}
	return false
}

// AllowsTargetMode reports whether m is a legal target addressing mode for
// this instruction.
func (d *InstructionDef) AllowsTargetMode(m Mode) bool {
	for _, am := range d.TargetModes {
		if am == m {
			return true
		}
	}
	return false
}
