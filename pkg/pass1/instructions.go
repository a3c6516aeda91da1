package pass1

import (
	"strconv"
	"strings"

	"github.com/OctaPokta/AssemblerProject/pkg/image"
	"github.com/OctaPokta/AssemblerProject/pkg/lexer"
	"github.com/OctaPokta/AssemblerProject/pkg/symtab"
	"github.com/OctaPokta/AssemblerProject/pkg/word"
)

// operand is one parsed instruction operand: exactly one of its fields is
// meaningful, selected by Mode.
type operand struct {
	Mode  word.Mode
	Imm   int    // ModeImmediate
	Label string // ModeDirect
	Reg   int    // ModeIndirect or ModeRegister
}

// isRegisterForm reports whether the operand occupies a register nibble
// rather than a full operand word (ModeIndirect or ModeRegister).
func (o operand) isRegisterForm() bool {
	return o.Mode == word.ModeIndirect || o.Mode == word.ModeRegister
}

// parseOperand classifies a single operand token by its leading syntax:
// "#N" immediate, "*rN" register-indirect, "rN" register-direct, else a
// bare label.
func parseOperand(text string) (operand, error) {
	switch {
	case strings.HasPrefix(text, "#"):
		v, err := strconv.Atoi(text[1:])
		if err != nil {
			return operand{}, err
		}
		return operand{Mode: word.ModeImmediate, Imm: v}, nil
	case strings.HasPrefix(text, "*"):
		reg, ok := lexer.IsRegisterName(text[1:])
		if !ok {
			return operand{}, errBadRegister(text)
		}
		return operand{Mode: word.ModeIndirect, Reg: reg}, nil
	default:
		if reg, ok := lexer.IsRegisterName(text); ok {
			return operand{Mode: word.ModeRegister, Reg: reg}, nil
		}
		return operand{Mode: word.ModeDirect, Label: text}, nil
	}
}

type errBadRegister string

func (e errBadRegister) Error() string {
	return "invalid register operand " + string(e)
}

// processInstruction encodes one mnemonic line: parses and validates its
// operands against the instruction table, emits the information word, then
// the operand word(s) — combining two register-form operands into a single
// word where the encoding allows it.
func (c *Context) processInstruction(lineNum int, mnemonic string, rest []lexer.Token, label string, hasLabel bool) {
	def, ok := word.Lookup(mnemonic)
	if !ok {
		c.errf(lineNum, "unknown mnemonic %q", mnemonic)
		return
	}

	if hasLabel {
		c.defineLabel(lineNum, label, c.InstrImage.Len(), symtab.CodeLabel)
	}

	operandTexts, ok := splitOperands(lineNum, c, rest)
	if !ok {
		return
	}
	if len(operandTexts) != def.OperandCount {
		c.errf(lineNum, "%s requires %d operand(s), got %d", mnemonic, def.OperandCount, len(operandTexts))
		return
	}

	var operands []operand
	for _, text := range operandTexts {
		op, err := parseOperand(text)
		if err != nil {
			c.errf(lineNum, "invalid operand %q: %s", text, err)
			return
		}
		operands = append(operands, op)
	}

	var src, tgt operand
	hasSource := def.OperandCount == 2
	if hasSource {
		src, tgt = operands[0], operands[1]
		if !def.AllowsSourceMode(src.Mode) {
			c.errf(lineNum, "%s does not allow source addressing mode %d", mnemonic, src.Mode)
			return
		}
		if !def.AllowsTargetMode(tgt.Mode) {
			c.errf(lineNum, "%s does not allow target addressing mode %d", mnemonic, tgt.Mode)
			return
		}
	} else if def.OperandCount == 1 {
		tgt = operands[0]
		if !def.AllowsTargetMode(tgt.Mode) {
			c.errf(lineNum, "%s does not allow target addressing mode %d", mnemonic, tgt.Mode)
			return
		}
	}

	infoOffset := c.InstrImage.Append(word.Placeholder())

	hasTarget := def.OperandCount >= 1
	srcMode := word.Mode(0)
	if hasSource {
		srcMode = src.Mode
	}
	tgtMode := word.Mode(0)
	if hasTarget {
		tgtMode = tgt.Mode
	}
	c.InstrImage.Set(infoOffset, word.InfoWord(def.Opcode, hasSource, srcMode, hasTarget, tgtMode, word.AreAbsolute))

	switch {
	case hasSource && src.isRegisterForm() && tgt.isRegisterForm():
		c.InstrImage.Append(word.CombinedRegisterWord(src.Reg, tgt.Reg))
	case hasSource:
		c.emitOperandWord(lineNum, word.RoleSource, src)
		c.emitOperandWord(lineNum, word.RoleTarget, tgt)
	case def.OperandCount == 1:
		c.emitOperandWord(lineNum, word.RoleTarget, tgt)
	}

	if c.sizeExceeded() {
		c.errf(lineNum, "program size exceeds %d words", c.SizeLimit)
	}
}

// emitOperandWord appends the word for a single operand, planting a
// placeholder plus a deferred reference for ModeDirect (a label address is
// never known until rebasing in pass 2, even when the label was already
// defined earlier in the same file).
func (c *Context) emitOperandWord(lineNum int, role word.Role, op operand) {
	switch op.Mode {
	case word.ModeImmediate:
		w, err := word.ImmediateWord(op.Imm)
		if err != nil {
			c.errf(lineNum, "%s", err.Error())
			c.InstrImage.Append(word.Placeholder())
			return
		}
		c.InstrImage.Append(w)
	case word.ModeDirect:
		offset := c.InstrImage.Append(word.Placeholder())
		c.Deferred.Add(image.DeferredRef{Offset: offset, Name: op.Label, Role: role, Line: lineNum})
	case word.ModeIndirect, word.ModeRegister:
		c.InstrImage.Append(word.RegisterOperandWord(role, op.Reg))
	}
}
