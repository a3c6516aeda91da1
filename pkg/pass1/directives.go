package pass1

import (
	"strconv"
	"strings"

	"github.com/OctaPokta/AssemblerProject/pkg/lexer"
	"github.com/OctaPokta/AssemblerProject/pkg/symtab"
	"github.com/OctaPokta/AssemblerProject/pkg/word"
)

// processDirective dispatches one of the four directive keywords.
// label/hasLabel carry the optional leading label definition already
// stripped by processLine.
func (c *Context) processDirective(lineNum int, directive string, rest []lexer.Token, label string, hasLabel bool) {
	name := strings.TrimPrefix(directive, ".")
	if !lexer.IsDirectiveName(name) {
		c.errf(lineNum, "unknown directive %q", directive)
		return
	}

	switch name {
	case "data":
		if hasLabel {
			c.defineLabel(lineNum, label, c.DataImage.Len(), symtab.DataLabel)
		}
		c.processData(lineNum, rest)
	case "string":
		if hasLabel {
			c.defineLabel(lineNum, label, c.DataImage.Len(), symtab.StringLabel)
		}
		c.processString(lineNum, rest)
	case "entry":
		// A label on the same line as .entry/.extern is meaningless and is
		// dropped with a warning rather than inserted.
		if hasLabel {
			c.warnf(lineNum, "label %q on a .entry line is ignored", label)
		}
		c.processEntry(lineNum, rest)
	case "extern":
		if hasLabel {
			c.warnf(lineNum, "label %q on a .extern line is ignored", label)
		}
		c.processExtern(lineNum, rest)
	}
}

// processData implements the ".data" directive: a non-empty comma-separated
// list of signed decimal integers in [-32767, 32767], one data word each.
func (c *Context) processData(lineNum int, rest []lexer.Token) {
	operands, ok := splitOperands(lineNum, c, rest)
	if !ok {
		return
	}
	if len(operands) == 0 {
		c.errf(lineNum, ".data requires at least one operand")
		return
	}

	values := make([]int, 0, len(operands))
	for _, operand := range operands {
		v, err := parseSignedInt(operand)
		if err != nil {
			c.errf(lineNum, "invalid .data operand %q: %s", operand, err)
			return
		}
		if v < word.DataMin || v > word.DataMax {
			c.errf(lineNum, ".data value %d out of range [%d, %d]", v, word.DataMin, word.DataMax)
			return
		}
		values = append(values, v)
	}

	for _, v := range values {
		c.DataImage.Append(word.DataWord(v))
	}

	if c.sizeExceeded() {
		c.errf(lineNum, "program size exceeds %d words", c.SizeLimit)
	}
}

// processString implements the ".string" directive: a single double-quoted
// literal, one data word per character plus a trailing NUL word.
func (c *Context) processString(lineNum int, rest []lexer.Token) {
	if len(rest) != 1 || rest[0].Kind != lexer.KindString {
		c.errf(lineNum, ".string requires exactly one quoted literal")
		return
	}
	literal := rest[0].Text
	if len(literal) < 2 || literal[0] != '"' || literal[len(literal)-1] != '"' {
		c.errf(lineNum, "malformed string literal %q", literal)
		return
	}
	content := literal[1 : len(literal)-1]
	if content == "" {
		c.errf(lineNum, "empty .string literal is not allowed")
		return
	}
	for i := 0; i < len(content); i++ {
		c.DataImage.Append(word.CharWord(content[i]))
	}
	c.DataImage.Append(word.CharWord(0))

	if c.sizeExceeded() {
		c.errf(lineNum, "program size exceeds %d words", c.SizeLimit)
	}
}

// processEntry records a ".entry NAME" declaration; promotion to Entry kind
// happens in pass 2, after rebasing.
func (c *Context) processEntry(lineNum int, rest []lexer.Token) {
	if len(rest) != 1 || rest[0].Kind != lexer.KindWord {
		c.errf(lineNum, ".entry requires exactly one symbol name")
		return
	}
	c.EntryDecls = append(c.EntryDecls, EntryDecl{Name: rest[0].Text, Line: lineNum})
}

// processExtern inserts an External symbol immediately, with value 0.
func (c *Context) processExtern(lineNum int, rest []lexer.Token) {
	if len(rest) != 1 || rest[0].Kind != lexer.KindWord {
		c.errf(lineNum, ".extern requires exactly one symbol name")
		return
	}
	name := rest[0].Text
	if !lexer.IsValidIdentifier(name) {
		c.errf(lineNum, "invalid external symbol name %q", name)
		return
	}
	if lexer.IsReservedWord(name) || (c.macros != nil && c.macros.Has(name)) {
		c.errf(lineNum, "external symbol name %q collides with a reserved identifier or macro", name)
		return
	}
	if err := c.Symbols.Insert(name, 0, symtab.External); err != nil {
		c.errf(lineNum, "%s", err.Error())
	}
}

// parseSignedInt parses an optionally-signed decimal integer with
// strconv.Atoi: one leading "+" or "-" is accepted, anything else that is
// not a decimal digit is rejected.
func parseSignedInt(s string) (int, error) {
	return strconv.Atoi(s)
}
