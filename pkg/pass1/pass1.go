// Package pass1 implements the first assembly pass: lexing and parsing
// expanded text, label and directive recognition, symbol-table population,
// data/string encoding, and instruction encoding with deferred references
// for forward labels.
package pass1

import (
	"github.com/OctaPokta/AssemblerProject/pkg/diag"
	"github.com/OctaPokta/AssemblerProject/pkg/image"
	"github.com/OctaPokta/AssemblerProject/pkg/lexer"
	"github.com/OctaPokta/AssemblerProject/pkg/macro"
	"github.com/OctaPokta/AssemblerProject/pkg/symtab"
)

// EntryDecl records one ".entry NAME" declaration for pass 2 to apply,
// since promotion to Entry kind happens only after rebasing.
type EntryDecl struct {
	Name string
	Line int
}

// Context owns every mutable table a single file's pass 1 run produces:
// the symbol table, the data and instruction images, and the
// deferred-reference list. It is created at pipeline start and dropped at
// pipeline end, with no state shared across files.
type Context struct {
	File string

	Symbols      *symtab.Table
	DataImage    image.Image
	InstrImage   image.Image
	Deferred     image.DeferredList
	EntryDecls   []EntryDecl
	macros       *macro.Table
	Diags        diag.Bag
	Warnings     []diag.Diagnostic
	MaxLineWords int
	SizeLimit    int
}

// DefaultSizeLimit is the maximum combined IC+DC before assembly must fail,
// used when the caller has no configured override.
const DefaultSizeLimit = 4096

// New creates a pass-1 context for one file, given the macro table produced
// by the macro-expansion pass (consulted so macro names are rejected as
// labels) and the configured size limit (pass DefaultSizeLimit absent an
// overriding hasm.toml).
func New(file string, macros *macro.Table, sizeLimit int) *Context {
	return &Context{
		File:      file,
		Symbols:   symtab.New(),
		macros:    macros,
		SizeLimit: sizeLimit,
	}
}

// Run executes pass 1 over the expanded source lines. It always processes
// every line — errors are recoverable and advance to the next line —
// leaving callers to check diag.Bag.OK() to see whether the file is still
// eligible to proceed to pass 2.
func (c *Context) Run(lines []string) {
	for i, raw := range lines {
		lineNum := i + 1
		c.processLine(lineNum, raw)
	}
}

func (c *Context) errf(line int, format string, args ...interface{}) {
	c.Diags.Add(diag.Errorf(c.File, line, diag.PhasePass1, format, args...))
}

func (c *Context) warnf(line int, format string, args ...interface{}) {
	c.Warnings = append(c.Warnings, diag.Errorf(c.File, line, diag.PhasePass1, format, args...))
}

func (c *Context) processLine(lineNum int, raw string) {
	tokens, err := lexer.Tokenize(raw)
	if err != nil {
		c.errf(lineNum, "%s", err.Error())
		return
	}
	if len(tokens) == 0 || tokens[0].Kind == lexer.KindComment {
		return
	}

	label := ""
	hasLabel := false
	if tokens[0].Kind == lexer.KindLabel {
		label = tokens[0].Text
		hasLabel = true
		tokens = tokens[1:]
		if len(tokens) == 0 {
			c.errf(lineNum, "label %q with no content on its line", label)
			return
		}
	}

	head := tokens[0]

	switch {
	case head.Kind == lexer.KindDirective:
		c.processDirective(lineNum, head.Text, tokens[1:], label, hasLabel)
	case head.Kind == lexer.KindWord && lexer.IsMnemonic(head.Text):
		c.processInstruction(lineNum, head.Text, tokens[1:], label, hasLabel)
	default:
		c.errf(lineNum, "unknown mnemonic %q", head.Text)
	}
}

// defineLabel validates and inserts a label definition at the given value
// and kind, rejecting names that collide with reserved identifiers or an
// already-registered macro.
func (c *Context) defineLabel(lineNum int, name string, value int, kind symtab.Kind) bool {
	if !lexer.IsValidIdentifier(name) {
		c.errf(lineNum, "invalid label name %q", name)
		return false
	}
	if lexer.IsReservedWord(name) || (c.macros != nil && c.macros.Has(name)) {
		c.errf(lineNum, "label name %q collides with a reserved identifier or macro", name)
		return false
	}
	if err := c.Symbols.Insert(name, value, kind); err != nil {
		c.errf(lineNum, "%s", err.Error())
		return false
	}
	return true
}

// splitOperands separates a comma-joined operand token stream, enforcing
// exactly one comma between operands with no leading, trailing, or
// consecutive commas.
func splitOperands(lineNum int, c *Context, tokens []lexer.Token) ([]string, bool) {
	if len(tokens) == 0 {
		return nil, true
	}
	if tokens[0].Kind == lexer.KindComma {
		c.errf(lineNum, "unexpected leading comma")
		return nil, false
	}
	if tokens[len(tokens)-1].Kind == lexer.KindComma {
		c.errf(lineNum, "unexpected trailing comma")
		return nil, false
	}

	var operands []string
	expectOperand := true
	for _, tok := range tokens {
		if tok.Kind == lexer.KindComma {
			if expectOperand {
				c.errf(lineNum, "unexpected comma")
				return nil, false
			}
			expectOperand = true
			continue
		}
		if !expectOperand {
			c.errf(lineNum, "missing comma before %q", tok.Text)
			return nil, false
		}
		operands = append(operands, tok.Text)
		expectOperand = false
	}
	if expectOperand {
		c.errf(lineNum, "unexpected trailing comma")
		return nil, false
	}
	return operands, true
}

// sizeExceeded reports whether IC+DC has grown past the configured limit.
func (c *Context) sizeExceeded() bool {
	return c.InstrImage.Len()+c.DataImage.Len() > c.SizeLimit
}
